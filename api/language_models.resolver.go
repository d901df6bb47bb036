package api

import (
	"context"
	"fmt"

	"fundsignal/internal/logger"

	"github.com/gin-gonic/gin"
)

func returnModelRetrievalError(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"detail": fmt.Sprintf("Failed to retrieve models: %s", err.Error()),
	})
}

func (m ApiHandler) listLanguageModels(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, logger.FromContext(c))

	models, err := m.ModelCatalogService.AvailableModels(ctx)
	if err != nil {
		returnModelRetrievalError(err, c)
		return
	}

	c.JSON(200, gin.H{
		"models": models,
	})
}

func (m ApiHandler) listLanguageModelProviders(c *gin.Context) {
	c.JSON(200, gin.H{
		"providers": m.ModelCatalogService.ModelsByProvider(),
	})
}
