package handlers

import (
	"io"
	"net/http"

	"github.com/Mesorian1996/contact-backend/logger"
	"github.com/Mesorian1996/contact-backend/models"
	"github.com/Mesorian1996/contact-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler は問い合わせフォームの受付を処理します
type ContactHandler struct {
	registry *models.Registry
	mailer   services.Mailer
}

// NewContactHandler はContactHandlerを作成します
func NewContactHandler(registry *models.Registry, mailer services.Mailer) *ContactHandler {
	return &ContactHandler{
		registry: registry,
		mailer:   mailer,
	}
}

// HandleContact はPOST /v1/contactを処理します。
// 検証 → 描画 → 送信の順で処理し、結果をHTTPステータスに対応させます。
func (h *ContactHandler) HandleContact(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	sub, err := models.ParseSubmission(body)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	site, verr := services.ValidateSubmission(sub, c.GetHeader("Origin"), h.registry)
	if verr != nil {
		logger.Logger.Info("送信を拒否しました",
			zap.String("site_id", sub.SiteID),
			zap.String("reason", verr.Message),
			zap.String("client_ip", c.ClientIP()),
		)
		RespondWithError(c, verr.Status, verr.Message)
		return
	}

	rendered := services.RenderMessage(sub, site)

	mail := services.OutboundMail{
		From:     site.From,
		FromName: site.FromName,
		To:       site.To,
		ReplyTo:  sub.Field(models.EmailField),
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTMLBody,
		TextBody: rendered.TextBody,
	}

	if err := h.mailer.Send(c.Request.Context(), mail); err != nil {
		// プロバイダーのエラー詳細はログのみに残し、レスポンスには含めない
		logger.Logger.Error("メール送信に失敗しました",
			zap.String("site_id", sub.SiteID),
			zap.Error(err),
		)
		RespondWithError(c, http.StatusInternalServerError, "Internal error")
		return
	}

	logger.Logger.Info("問い合わせメールを送信しました",
		zap.String("site_id", sub.SiteID),
		zap.Int("recipients", len(site.To)),
	)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RespondWithError はエラーレスポンスを返す補助関数です
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
