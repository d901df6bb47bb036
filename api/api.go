package api

import (
	"database/sql"
	"fmt"
	"time"

	"fundsignal/internal/logger"
	"fundsignal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                    *sql.DB
	SignalAnalysisService service.SignalAnalysisService
	ModelCatalogService   service.ModelCatalogService
	ProgressService       service.ProgressService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(attachLoggerMiddleware)
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundsignal"})
	})
	router.GET("/language-models/", m.listLanguageModels)
	router.GET("/language-models/providers", m.listLanguageModelProviders)
	router.POST("/analyze", m.analyze)
	router.GET("/progress", m.progress)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func attachLoggerMiddleware(ctx *gin.Context) {
	ctx.Set(logger.ContextKey, logger.New())
	ctx.Next()
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()

	logger.FromContext(ctx).Infow("request handled",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
