package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixeldrop/pixeldrop/internal/server/handlers/upload"
	"github.com/pixeldrop/pixeldrop/internal/server/middlewares"
	"github.com/pixeldrop/pixeldrop/internal/version"
)

func SetupRoutes(svc *Services, config *Config) http.Handler {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20 // 8 MiB

	uploadH := upload.New(svc.Uploads, svc.Pages, svc.Policy)

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.GZIP())
	r.Use(middlewares.CORS())
	r.Use(middlewares.SecurityHeaders())

	r.GET("/", svc.Pages.Index)
	r.GET("/healthz", HealthHandler)
	r.GET("/version", VersionHandler)
	r.Static(config.Uploads.PublicPath, config.Uploads.Dir)

	r.POST("/upload", uploadH.Single)
	r.POST("/upload-multiple", uploadH.Multi)
	r.POST("/upload-with-data", uploadH.Mixed)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method not allowed",
		})
	})

	return r.Handler()
}

func HealthHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func VersionHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, version.DetailedWithApp())
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
