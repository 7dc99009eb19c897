package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grigory222/llm-chat-backend/internal/domain/models"
)

type Storage interface {
	Users(ctx context.Context) ([]models.User, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{log: log, storage: storage}
}

// List returns every stored user; the result is never nil.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	const op = "services.users.List"
	log := s.log.With(slog.String("op", op))

	users, err := s.storage.Users(ctx)
	if err != nil {
		log.Error("failed to list users", slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if users == nil {
		users = []models.User{}
	}

	log.Debug("users listed", slog.Int("count", len(users)))

	return users, nil
}
