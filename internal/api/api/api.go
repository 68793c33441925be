package api

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"aadhrita/cmd/middleware"
	"aadhrita/internal/auth"
	"aadhrita/internal/service"
)

type Routers struct {
	Service service.Service
	Auth    *auth.Manager
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.Default())

	apiGroup := app.Group("/v1")

	apiGroup.GET("/branding", r.Service.GetBranding)
	apiGroup.GET("/about", r.Service.GetAbout)
	apiGroup.GET("/events", r.Service.GetEvents)
	apiGroup.GET("/gallery", r.Service.GetGallery)
	apiGroup.GET("/sponsors", r.Service.GetSponsors)
	apiGroup.GET("/team", r.Service.GetTeam)
	apiGroup.GET("/announcements", r.Service.GetAnnouncements)

	apiGroup.POST("/admin/login", r.Service.Login)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.AdminAuth(r.Auth))

	adminGroup.POST("/logout", r.Service.Logout)
	adminGroup.GET("/me", r.Service.Me)

	adminGroup.POST("/events", r.Service.CreateEvent)
	adminGroup.POST("/faqs", r.Service.CreateFAQ)
	adminGroup.POST("/announcements", r.Service.CreateAnnouncement)
	adminGroup.POST("/gallery", r.Service.CreateGalleryImage)
	adminGroup.POST("/sponsors", r.Service.CreateSponsor)
	adminGroup.POST("/team", r.Service.CreateTeamMember)

	adminGroup.PATCH("/:kind/:id", r.Service.UpdateItem)
	adminGroup.DELETE("/:kind/:id", r.Service.DeleteItem)

	adminGroup.PUT("/branding", r.Service.SaveBranding)
	adminGroup.PUT("/about", r.Service.SaveAbout)

	app.GET("/", func(c *ginext.Context) {
		c.File("./frontend/index.html")
	})
	app.GET("/adm", func(c *ginext.Context) {
		c.File("./frontend/adm.html")
	})
	app.Static("/frontend", "./frontend")

	return app
}
