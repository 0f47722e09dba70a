package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/staffdir/staffdir-backend/internal/api/handlers"
	"github.com/staffdir/staffdir-backend/internal/api/middleware"
	"github.com/staffdir/staffdir-backend/internal/service"
)

// NewRouter assembles the HTTP surface: public auth/admin/health routes and
// the authenticated member routes.
func NewRouter(services *service.Services) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.NewHandlers(services)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.String(http.StatusOK, "It's working!")
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/tag", h.Admin.CreateTag)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(services.Auth))
		{
			contractors := protected.Group("/contractor")
			{
				contractors.GET("", h.Contractor.GetAll)
				contractors.GET("/:id", h.Contractor.GetByID)
				contractors.POST("", h.Contractor.Create)
				contractors.PUT("/:id", h.Contractor.Update)
				contractors.DELETE("/:id", h.Contractor.Delete)
			}

			employees := protected.Group("/employee")
			{
				employees.GET("", h.Employee.GetAll)
				employees.GET("/:id", h.Employee.GetByID)
				employees.POST("", h.Employee.Create)
				employees.PUT("/:id", h.Employee.Update)
				employees.DELETE("/:id", h.Employee.Delete)
			}

			common := protected.Group("/commonmember")
			{
				common.GET("", h.CommonMember.GetAll)
				common.GET("/search", h.CommonMember.Search)
			}
		}
	}

	return r
}
