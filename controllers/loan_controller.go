package controllers

import (
	"net/http"
	"time"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/db"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

func (lc *LoanController) CreateLoan(c *gin.Context) {
	var in struct {
		UserID  uint      `json:"user_id" binding:"required"`
		BookID  uint      `json:"book_id" binding:"required"`
		DueDate time.Time `json:"due_date" binding:"required"`
		Notes   *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	loan, err := lc.Repo.CreateLoan(c.Request.Context(), db.CreateLoanInput{
		UserID:  in.UserID,
		BookID:  in.BookID,
		DueDate: in.DueDate,
		Notes:   in.Notes,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	// availability changed
	lc.Cache.InvalidateBook(c.Request.Context(), loan.BookID)
	c.JSON(http.StatusCreated, loan)
}

func (lc *LoanController) ListLoans(c *gin.Context) {
	page, limit := pagingParams(c)
	res, err := lc.Repo.ListLoans(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (lc *LoanController) CountLoans(c *gin.Context) {
	n, err := lc.Repo.CountLoans(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": n, "entity": "loans"})
}

// GET /api/loans/search?user_id=&book_id=&status=&date_from=&date_to=
// dates come in as YYYY-MM-DD and cover the whole day
func (lc *LoanController) SearchLoans(c *gin.Context) {
	q := db.LoanSearchQuery{
		UserID: uintQuery(c, "user_id"),
		BookID: uintQuery(c, "book_id"),
		Status: strQuery(c, "status"),
	}
	for name, dst := range map[string]**time.Time{"date_from": &q.DateFrom, "date_to": &q.DateTo} {
		if v := c.Query(name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name + ", want YYYY-MM-DD"})
				return
			}
			*dst = &t
		}
	}
	loans, err := lc.Repo.SearchLoans(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (lc *LoanController) GetLoan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	loan, err := lc.Repo.FindLoanByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (lc *LoanController) UpdateLoan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch db.LoanUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	loan, err := lc.Repo.UpdateLoan(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	lc.Cache.InvalidateBook(c.Request.Context(), loan.BookID)
	c.JSON(http.StatusOK, loan)
}

func (lc *LoanController) DeleteLoan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	loan, err := lc.Repo.DeleteLoan(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	lc.Cache.InvalidateBook(c.Request.Context(), loan.BookID)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
