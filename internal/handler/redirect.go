package handler

import (
	"net/http"

	"tinylink/internal/mq"
	"tinylink/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	shortener service.ShortenerInterface
	clicks    service.ClickRecorderInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(shortener service.ShortenerInterface, clicks service.ClickRecorderInterface) *RedirectHandler {
	return &RedirectHandler{
		shortener: shortener,
		clicks:    clicks,
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to the original URL
// @Description Resolves a short code and issues a 302 redirect
// @Tags links
// @Param shortCode path string true "Short code"
// @Success 302
// @Router /{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	link, err := h.shortener.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		writeError(c, err)
		return
	}

	// Exactly one click per resolved request, handed off without waiting
	if h.clicks != nil {
		h.clicks.Record(&mq.ClickMessage{
			ShortCode: link.ShortCode,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Referer:   c.Request.Header.Get("Referer"),
		})
	}

	c.Header("Referrer-Policy", "no-referrer")
	c.Redirect(http.StatusFound, link.LongURL)
}
