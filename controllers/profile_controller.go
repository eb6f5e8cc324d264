package controllers

import (
	"net/http"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/models"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ *Srv }

func NewProfileController(s *Srv) *ProfileController { return &ProfileController{Srv: s} }

func (pc *ProfileController) CreateProfile(c *gin.Context) {
	var in struct {
		UserID            uint    `json:"user_id" binding:"required"`
		PhotoURL          *string `json:"photo_url"`
		Profession        *string `json:"profession"`
		LiteraryInterests *string `json:"literary_interests"`
		FavoriteBooks     *string `json:"favorite_books"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	p := &models.UserProfile{
		UserID:            in.UserID,
		PhotoURL:          in.PhotoURL,
		Profession:        in.Profession,
		LiteraryInterests: in.LiteraryInterests,
		FavoriteBooks:     in.FavoriteBooks,
	}
	if err := pc.Repo.CreateProfile(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (pc *ProfileController) ListProfiles(c *gin.Context) {
	page, limit := pagingParams(c)
	res, err := pc.Repo.ListProfiles(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (pc *ProfileController) CountProfiles(c *gin.Context) {
	n, err := pc.Repo.CountProfiles(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"total": n, "entity": "profiles"})
}

// GET /api/profiles/search?profession=&interests=
func (pc *ProfileController) SearchProfiles(c *gin.Context) {
	profiles, err := pc.Repo.SearchProfiles(c.Request.Context(), c.Query("profession"), c.Query("interests"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := pc.Repo.FindProfileByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/profiles/user/:userId — the 1:1 lookup from the owning side
func (pc *ProfileController) GetProfileByUser(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	p, err := pc.Repo.FindProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch db.ProfileUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	p, err := pc.Repo.UpdateProfile(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := pc.Repo.DeleteProfile(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
