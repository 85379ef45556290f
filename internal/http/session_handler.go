package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"class-finder/internal/service"
)

// SessionHandler expone las sesiones de narrowing paso a paso.
type SessionHandler struct {
	logger   *zap.Logger
	sessions *service.SessionService
}

func NewSessionHandler(logger *zap.Logger, sessions *service.SessionService) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{logger: logger, sessions: sessions}
}

// CreateSession maneja POST /sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	view, err := h.sessions.Start(c.Request.Context())
	if err != nil {
		h.fail(c, "create session failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

// GetSession maneja GET /sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get session failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// AnswerSession maneja POST /sessions/:id/answer.
func (h *SessionHandler) AnswerSession(c *gin.Context) {
	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	view, err := h.sessions.Answer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		h.fail(c, "answer session failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// DeleteSession maneja DELETE /sessions/:id.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete session failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) fail(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrUnknownAnswer):
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer is not an option of the pending question"})
	case errors.Is(err, service.ErrSessionResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "session already resolved"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
