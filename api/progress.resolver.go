package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) progress(c *gin.Context) {
	c.JSON(200, gin.H{
		"progress": m.ProgressService.Snapshot(),
	})
}
