package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/m3rciful/taskbot/internal/model"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository persists users. Every operation runs in its own
// transaction which is rolled back on any error.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository returns a repository bound to the given database.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByTelegramID returns the user owning the given Telegram id,
// or model.ErrUserNotFound.
func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var user model.User
	err = tx.GetContext(ctx, &user,
		`SELECT id, telegram_id, username, login FROM users WHERE telegram_id = $1`,
		telegramID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by telegram id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &user, nil
}

// FindByLogin returns the user owning the given login, or model.ErrUserNotFound.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var user model.User
	err = tx.GetContext(ctx, &user,
		`SELECT id, telegram_id, username, login FROM users WHERE login = $1`,
		login,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and returns the persisted record.
// A login collision maps to model.ErrLoginTaken.
func (r *UserRepository) Create(ctx context.Context, telegramID int64, username, login string) (*model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var user model.User
	err = tx.GetContext(ctx, &user,
		`INSERT INTO users (telegram_id, username, login)
		 VALUES ($1, $2, $3)
		 RETURNING id, telegram_id, username, login`,
		telegramID, username, login,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, model.ErrLoginTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &user, nil
}

// Count returns the total number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
