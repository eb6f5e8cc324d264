package routes

import (
	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authorCtl := controllers.NewAuthorController(s)
	bookCtl := controllers.NewBookController(s)
	catCtl := controllers.NewCategoryController(s)
	userCtl := controllers.NewUserController(s)
	loanCtl := controllers.NewLoanController(s)
	profCtl := controllers.NewProfileController(s)

	authors := r.Group("/api/authors")
	{
		authors.POST("", authorCtl.CreateAuthor)
		authors.GET("", authorCtl.ListAuthors)
		authors.GET("/count", authorCtl.CountAuthors)
		authors.GET("/search", authorCtl.SearchAuthors)
		authors.GET("/:id", authorCtl.GetAuthor)
		authors.PUT("/:id", authorCtl.UpdateAuthor)
		authors.DELETE("/:id", authorCtl.DeleteAuthor)
	}

	books := r.Group("/api/books")
	{
		books.POST("", bookCtl.CreateBook)
		books.GET("", bookCtl.ListBooks)
		books.GET("/count", bookCtl.CountBooks)
		books.GET("/search", bookCtl.SearchBooks)
		books.GET("/:id", bookCtl.GetBook)
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	categories := r.Group("/api/categories")
	{
		categories.POST("", catCtl.CreateCategory)
		categories.GET("", catCtl.ListCategories)
		categories.GET("/count", catCtl.CountCategories)
		categories.GET("/search", catCtl.SearchCategories)
		categories.GET("/:id", catCtl.GetCategory)
		categories.PUT("/:id", catCtl.UpdateCategory)
		categories.DELETE("/:id", catCtl.DeleteCategory)
	}

	users := r.Group("/api/users")
	{
		users.POST("", userCtl.CreateUser)
		users.GET("", userCtl.ListUsers)
		users.GET("/count", userCtl.CountUsers)
		users.GET("/search", userCtl.SearchUsers)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.DELETE("/:id", userCtl.DeleteUser)
	}

	loans := r.Group("/api/loans")
	{
		loans.POST("", loanCtl.CreateLoan)
		loans.GET("", loanCtl.ListLoans)
		loans.GET("/count", loanCtl.CountLoans)
		loans.GET("/search", loanCtl.SearchLoans)
		loans.GET("/:id", loanCtl.GetLoan)
		loans.PUT("/:id", loanCtl.UpdateLoan)
		loans.DELETE("/:id", loanCtl.DeleteLoan)
	}

	profiles := r.Group("/api/profiles")
	{
		profiles.POST("", profCtl.CreateProfile)
		profiles.GET("", profCtl.ListProfiles)
		profiles.GET("/count", profCtl.CountProfiles)
		profiles.GET("/search", profCtl.SearchProfiles)
		profiles.GET("/user/:userId", profCtl.GetProfileByUser)
		profiles.GET("/:id", profCtl.GetProfile)
		profiles.PUT("/:id", profCtl.UpdateProfile)
		profiles.DELETE("/:id", profCtl.DeleteProfile)
	}
}
