package controllers

import (
	"net/http"
	"time"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/models"

	"github.com/gin-gonic/gin"
)

type AuthorController struct{ *Srv }

func NewAuthorController(s *Srv) *AuthorController { return &AuthorController{Srv: s} }

func (ac *AuthorController) CreateAuthor(c *gin.Context) {
	var in struct {
		FirstName   string    `json:"first_name" binding:"required"`
		LastName    string    `json:"last_name" binding:"required"`
		BirthDate   time.Time `json:"birth_date" binding:"required"`
		Nationality string    `json:"nationality" binding:"required"`
		Biography   *string   `json:"biography"`
		CPF         *string   `json:"cpf"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	a := &models.Author{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		BirthDate:   in.BirthDate,
		Nationality: in.Nationality,
		Biography:   in.Biography,
		CPF:         in.CPF,
	}
	if err := ac.Repo.CreateAuthor(c.Request.Context(), a); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /api/authors?page=&limit=
func (ac *AuthorController) ListAuthors(c *gin.Context) {
	page, limit := pagingParams(c)
	res, err := ac.Repo.ListAuthors(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ac *AuthorController) CountAuthors(c *gin.Context) {
	n, err := ac.Repo.CountAuthors(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": n, "entity": "authors"})
}

// GET /api/authors/search?name=&nationality=
func (ac *AuthorController) SearchAuthors(c *gin.Context) {
	authors, err := ac.Repo.SearchAuthors(c.Request.Context(), c.Query("name"), c.Query("nationality"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (ac *AuthorController) GetAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := ac.Repo.FindAuthorByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AuthorController) UpdateAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch db.AuthorUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	a, err := ac.Repo.UpdateAuthor(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AuthorController) DeleteAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.Repo.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
