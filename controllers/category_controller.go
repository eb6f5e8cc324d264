package controllers

import (
	"net/http"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ *Srv }

func NewCategoryController(s *Srv) *CategoryController { return &CategoryController{Srv: s} }

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var in struct {
		Name        string  `json:"name" binding:"required"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	cat := &models.Category{Name: in.Name, Description: in.Description, Active: true}
	if err := cc.Repo.CreateCategory(c.Request.Context(), cat); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	page, limit := pagingParams(c)
	res, err := cc.Repo.ListCategories(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (cc *CategoryController) CountCategories(c *gin.Context) {
	n, err := cc.Repo.CountCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": n, "entity": "categories"})
}

// GET /api/categories/search?name=&active=
func (cc *CategoryController) SearchCategories(c *gin.Context) {
	cats, err := cc.Repo.SearchCategories(c.Request.Context(), c.Query("name"), boolQuery(c, "active"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := cc.Repo.FindCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch db.CategoryUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	cat, err := cc.Repo.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := cc.Repo.DeleteCategory(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
