package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/erikmaday/clauditorium/internal/claude"
	"github.com/erikmaday/clauditorium/internal/config"
	"github.com/erikmaday/clauditorium/internal/models"
)

// CLIRunner executes one claude CLI invocation per call.
type CLIRunner interface {
	Run(ctx context.Context, prompt, model string) (string, error)
}

// Handler wires HTTP routes to the CLI runner.
type Handler struct {
	cfg    *config.Config
	runner CLIRunner
}

// NewHandler constructs a Handler instance.
func NewHandler(cfg *config.Config, runner CLIRunner) *Handler {
	return &Handler{
		cfg:    cfg,
		runner: runner,
	}
}

// RegisterRoutes attaches middleware and all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(RequestIDMiddleware())
	if h.cfg.EnableCORS {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowHeaders = []string{"*"}
		router.Use(cors.New(corsCfg))
	}
	router.POST("/ask", h.ask)
	router.POST("/chat", h.chat)
	router.GET("/health", h.health)
	router.GET("/version", h.version)
}

func (h *Handler) ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "invalid request body")
		return
	}
	if req.Prompt == "" {
		h.validationError(c, "prompt is required")
		return
	}
	response, err := h.runner.Run(c.Request.Context(), req.Prompt, req.Model)
	if err != nil {
		h.runError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
	})
}

func (h *Handler) chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		h.validationError(c, "messages must not be empty")
		return
	}
	for i, msg := range req.Messages {
		if msg.Content == "" {
			h.validationError(c, fmt.Sprintf("message %d is missing content", i))
			return
		}
	}
	prompt := claude.BuildPrompt(req.Messages, req.System)
	response, err := h.runner.Run(c.Request.Context(), prompt, req.Model)
	if err != nil {
		h.runError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": models.Message{Role: models.RoleAssistant, Content: response},
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":      Version,
		"timeout":      h.cfg.TimeoutSeconds,
		"cors_enabled": h.cfg.EnableCORS,
	})
}

// validationError rejects the request before any subprocess work happens.
func (h *Handler) validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorDetail{
		Error:     string(claude.KindValidation),
		Message:   message,
		RequestID: requestIDFrom(c),
	})
}

func (h *Handler) runError(c *gin.Context, err error) {
	var cliErr *claude.Error
	if errors.As(err, &cliErr) {
		c.JSON(cliErr.HTTPStatus(), models.ErrorDetail{
			Error:     string(cliErr.Kind),
			Message:   cliErr.Message,
			RequestID: requestIDFrom(c),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorDetail{
		Error:     string(claude.KindUnknown),
		Message:   err.Error(),
		RequestID: requestIDFrom(c),
	})
}
