package handler

import (
	"errors"
	"net/http"

	"tinylink/internal/model"
	"tinylink/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles short link creation and management
type LinkHandler struct {
	service service.ShortenerInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.ShortenerInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Shortens a URL, returning the existing code when the URL was already shortened
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateRequest true "Create request"
// @Success 200 {object} Response{data=model.CreateResponse}
// @Success 201 {object} Response{data=model.CreateResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Stats handles GET /api/v1/links/:shortCode/stats
// @Summary Get click statistics for a short link
// @Tags links
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.StatsResponse}
// @Router /api/v1/links/{shortCode}/stats [get]
func (h *LinkHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Deactivate handles DELETE /api/v1/links/:shortCode
// @Summary Deactivate a short link
// @Tags links
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response
// @Router /api/v1/links/{shortCode} [delete]
func (h *LinkHandler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("shortCode")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
	})
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps service sentinels to HTTP statuses. Expired and
// deactivated links deliberately answer like unknown codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrBlockedURL),
		errors.Is(err, service.ErrInvalidAlias):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrAliasTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrExpired):
		status = http.StatusNotFound
		message = "short link not found"
	case errors.Is(err, service.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		message = "service temporarily unavailable"
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		status = http.StatusInternalServerError
		message = "failed to generate a unique short code"
	}

	c.JSON(status, ErrorResponse{Code: status, Message: message})
}
