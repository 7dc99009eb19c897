package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/grigory222/llm-chat-backend/internal/config"
	"github.com/grigory222/llm-chat-backend/internal/domain/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(ctx context.Context, connStr string, cfg config.Postgres, log *slog.Logger) (*Storage, error) {
	const op = "storage.postgres.New"

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse config: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to postgres: %w", op, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: failed to ping postgres: %w", op, err)
	}

	log.Info("connected to PostgreSQL", slog.String("db_name", poolConfig.ConnConfig.Database))

	return &Storage{pool: pool, log: log}, nil
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateTables создает недостающие таблицы и индексы; существующие не трогает.
func (s *Storage) CreateTables(ctx context.Context) error {
	const op = "storage.postgres.CreateTables"

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, t := range tables {
			for _, stmt := range t.ddl {
				if _, err := tx.Exec(ctx, stmt); err != nil {
					return fmt.Errorf("table %s: %w", t.name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to create tables", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Reset drops every managed table that exists, dependents first.
func (s *Storage) Reset(ctx context.Context) error {
	const op = "storage.postgres.Reset"

	names := TableNames()
	slices.Reverse(names)

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, name := range names {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT to_regclass($1::text) IS NOT NULL`, name).Scan(&exists); err != nil {
				return fmt.Errorf("table %s: %w", name, err)
			}
			if !exists {
				continue
			}

			if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{name}.Sanitize()+" CASCADE"); err != nil {
				return fmt.Errorf("table %s: %w", name, err)
			}
			s.log.Info("table dropped", slog.String("table", name))
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to reset database", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("database reset completed")

	return nil
}

func (s *Storage) Tables(ctx context.Context) ([]string, error) {
	const op = "storage.postgres.Tables"

	query := `SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return names, nil
}

func (s *Storage) Users(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.Users"

	query := `SELECT id, name, username, created_at, updated_at FROM users`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		var (
			user      models.User
			createdAt *time.Time
			updatedAt *time.Time
		)
		err := row.Scan(&user.ID, &user.Name, &user.Username, &createdAt, &updatedAt)
		if createdAt != nil {
			user.CreatedAt = createdAt.UTC()
		}
		if updatedAt != nil {
			user.UpdatedAt = updatedAt.UTC()
		}
		return user, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	if user.CreatedAt.IsZero() {
		user.CreatedAt = models.Now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query := `INSERT INTO users (name, username, created_at, updated_at)
		VALUES (@name, @username, @createdAt, @updatedAt) RETURNING id`
	args := pgx.NamedArgs{
		"name":      user.Name,
		"username":  user.Username,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}

	if err := s.pool.QueryRow(ctx, query, args).Scan(&user.ID); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return fmt.Errorf("%s: %w", op, models.ErrUserExists)
		}
		s.log.Error("failed to save user", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveModel(ctx context.Context, model *models.Model) error {
	const op = "storage.postgres.SaveModel"

	query := `INSERT INTO models (name) VALUES (@name) RETURNING id`
	args := pgx.NamedArgs{"name": model.Name}

	if err := s.pool.QueryRow(ctx, query, args).Scan(&model.ID); err != nil {
		s.log.Error("failed to save model", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveChat(ctx context.Context, chat *models.Chat) error {
	const op = "storage.postgres.SaveChat"

	if chat.Timestamp.IsZero() {
		chat.Timestamp = models.Now()
	}

	query := `INSERT INTO chats (user_id, model_id, file, "timestamp")
		VALUES (@userID, @modelID, @file, @timestamp) RETURNING id`
	args := pgx.NamedArgs{
		"userID":    chat.UserID,
		"modelID":   chat.ModelID,
		"file":      chat.File,
		"timestamp": chat.Timestamp,
	}

	if err := s.pool.QueryRow(ctx, query, args).Scan(&chat.ID); err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, models.ErrInvalidReference)
		}
		s.log.Error("failed to save chat", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
