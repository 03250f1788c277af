package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthCheck はヘルスチェックエンドポイントを処理します
func HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
