package controllers

import (
	"net/http"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/models"

	"github.com/gin-gonic/gin"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

func (bc *BookController) CreateBook(c *gin.Context) {
	var in struct {
		Title           string  `json:"title" binding:"required"`
		ISBN            string  `json:"isbn" binding:"required"`
		PublicationYear int     `json:"publication_year" binding:"required"`
		Publisher       string  `json:"publisher" binding:"required"`
		PageCount       int     `json:"page_count" binding:"required"`
		TotalCopies     int     `json:"total_copies"`
		AuthorIDs       []uint  `json:"author_ids"`
		CategoryIDs     []uint  `json:"category_ids"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.TotalCopies <= 0 {
		in.TotalCopies = 1
	}
	b := &models.Book{
		Title:           in.Title,
		ISBN:            in.ISBN,
		PublicationYear: in.PublicationYear,
		Publisher:       in.Publisher,
		PageCount:       in.PageCount,
		TotalCopies:     in.TotalCopies,
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), b, in.AuthorIDs, in.CategoryIDs); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (bc *BookController) ListBooks(c *gin.Context) {
	page, limit := pagingParams(c)
	res, err := bc.Repo.ListBooks(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (bc *BookController) CountBooks(c *gin.Context) {
	n, err := bc.Repo.CountBooks(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": n, "entity": "books"})
}

// GET /api/books/search?title=&author=&category=&year_min=&year_max=
func (bc *BookController) SearchBooks(c *gin.Context) {
	q := db.BookSearchQuery{
		Title:    c.Query("title"),
		Author:   c.Query("author"),
		Category: c.Query("category"),
		YearMin:  intQuery(c, "year_min"),
		YearMax:  intQuery(c, "year_max"),
	}
	books, err := bc.Repo.SearchBooks(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (bc *BookController) GetBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if b, hit := bc.Cache.GetBook(ctx, id); hit {
		c.JSON(http.StatusOK, b)
		return
	}
	b, err := bc.Repo.FindBookByID(ctx, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	bc.Cache.SaveBook(ctx, b)
	c.JSON(http.StatusOK, b)
}

func (bc *BookController) UpdateBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch db.BookUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	b, err := bc.Repo.UpdateBook(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	bc.Cache.InvalidateBook(c.Request.Context(), id)
	c.JSON(http.StatusOK, b)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := bc.Repo.DeleteBook(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	bc.Cache.InvalidateBook(c.Request.Context(), id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
