package storage

import (
	"context"

	"github.com/grigory222/llm-chat-backend/internal/domain/models"
)

type Storage interface {
	CreateTables(ctx context.Context) error
	Reset(ctx context.Context) error
	Tables(ctx context.Context) ([]string, error)

	Users(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	SaveModel(ctx context.Context, model *models.Model) error
	SaveChat(ctx context.Context, chat *models.Chat) error

	Close()
}
