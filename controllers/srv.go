// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/cache"
	"Gin_postgres_redis_library_api/db"

	"github.com/gin-gonic/gin"
)

// Srv holds the dependencies shared by every controller.
type Srv struct {
	Repo  *db.Repo
	Cache *cache.Store
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Cache: cache.NewStore(a.RDB, a.Config.CacheTTL),
		Cfg:   a.Config,
	}
}

// --- helpers ---

// respondErr maps the domain taxonomy onto the HTTP contract: missing
// entities are 404, everything the caller can fix is 400, the rest is 500.
func respondErr(c *gin.Context, err error) {
	var nf *db.NotFoundError
	var cf *db.ConflictError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, app.H{"error": nf.Error()})
	case errors.As(err, &cf):
		c.JSON(http.StatusBadRequest, app.H{"error": cf.Error()})
	case errors.Is(err, db.ErrUserInactive), errors.Is(err, db.ErrBookUnavailable):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

func pagingParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func idParam(c *gin.Context) (uint, bool) {
	return uintParam(c, "id")
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// optional query parsers for the search endpoints

func uintQuery(c *gin.Context, name string) *uint {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}

func intQuery(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func boolQuery(c *gin.Context, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func strQuery(c *gin.Context, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}
