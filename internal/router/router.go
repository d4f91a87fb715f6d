package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateClass(c *ginext.Context)
	ListClasses(c *ginext.Context)
	BookClass(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)

		// Classes
		api.GET("/classes", h.ListClasses)
		api.POST("/classes",
			middleware.Auth(jwtSecret),
			middleware.RequireRoles(string(domain.RoleInstructor), string(domain.RoleAdmin)),
			h.CreateClass,
		)

		// Bookings
		api.POST("/bookings", h.BookClass)
		api.GET("/bookings", h.ListBookings)
		api.DELETE("/bookings/:id", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
