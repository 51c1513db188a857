package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/middleware"
	"github.com/mrigtrishna/core/internal/modules/auth"
	"github.com/mrigtrishna/core/internal/modules/contact"
	"github.com/mrigtrishna/core/internal/modules/content/journal"
	"github.com/mrigtrishna/core/internal/modules/content/portfolio"
	"github.com/mrigtrishna/core/internal/modules/content/product"
	"github.com/mrigtrishna/core/internal/modules/content/settings"
	"github.com/mrigtrishna/core/internal/modules/content/skill"
	"github.com/mrigtrishna/core/internal/modules/storage/upload"
	"github.com/mrigtrishna/core/internal/modules/web"
	"github.com/mrigtrishna/core/internal/pkg/mail"
	"github.com/mrigtrishna/core/internal/pkg/response"
)

func (a *App) registerRoutes() error {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "method not allowed"})
	})

	// Shared services
	mailer := mail.New(a.cfg.Mail)
	uploader, err := upload.NewS3Gateway(a.cfg.S3)
	if err != nil {
		return err
	}

	portfolioStore := portfolio.NewStore(db)
	productStore := product.NewStore(db)
	journalStore := journal.NewStore(db)
	skillStore := skill.NewStore(db)
	settingsStore := settings.NewStore(db)

	// JSON API
	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	portfolio.NewHandler(portfolioStore).RegisterRoutes(api, authMW)
	product.NewHandler(productStore).RegisterRoutes(api, authMW) // /products and /shop
	journal.NewHandler(journalStore).RegisterRoutes(api, authMW)
	skill.NewHandler(skillStore).RegisterRoutes(api, authMW)
	settings.NewHandler(settingsStore).RegisterRoutes(api, authMW)

	authSvc := auth.NewService(auth.NewCodeStore(db), mailer, a.cfg.AdminEmail)
	auth.NewHandler(authSvc, a.logger, !a.cfg.IsDev()).RegisterRoutes(api)

	contact.NewHandler(mailer, a.logger, a.cfg.AdminEmail).RegisterRoutes(api)
	upload.NewHandler(uploader, a.logger).RegisterRoutes(api, authMW)

	// Server-rendered pages
	web.NewHandler(portfolioStore, productStore, journalStore, skillStore, settingsStore, a.logger).
		RegisterRoutes(r, middleware.RequireLogin("/login"))

	return nil
}
