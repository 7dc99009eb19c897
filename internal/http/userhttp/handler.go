package userhttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grigory222/llm-chat-backend/internal/domain/models"
)

// UserService - то, что хендлеру нужно от сервисного слоя.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

type handler struct {
	log   *slog.Logger
	users UserService
}

func Register(r gin.IRouter, log *slog.Logger, users UserService) {
	h := &handler{log: log, users: users}
	r.GET("/get-users", h.getUsers)
}

func (h *handler) getUsers(c *gin.Context) {
	const op = "http.users.GetUsers"
	log := h.log.With(slog.String("op", op))

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		log.Error("failed to get users", slog.Any("err", err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
