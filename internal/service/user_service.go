package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m3rciful/taskbot/core/logger"
	"github.com/m3rciful/taskbot/internal/model"
)

// UserRepo is the persistence surface the user service depends on.
type UserRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	Create(ctx context.Context, telegramID int64, username, login string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserService implements registration and user resolution.
type UserService struct {
	repo UserRepo
	log  *slog.Logger
}

// NewUserService wires a user service over the given repository.
func NewUserService(repo UserRepo) *UserService {
	return &UserService{
		repo: repo,
		log:  logger.Component("service.users"),
	}
}

// GetByTelegramID resolves the acting user for an inbound update.
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.repo.FindByTelegramID(ctx, telegramID)
}

// Register creates a user with a unique login. The login is pre-checked
// and additionally guarded by the DB unique constraint, so a concurrent
// duplicate still surfaces as model.ErrLoginTaken.
func (s *UserService) Register(ctx context.Context, telegramID int64, username, login string) (*model.User, error) {
	_, err := s.repo.FindByLogin(ctx, login)
	switch {
	case err == nil:
		logger.LogEvent(ctx, s.log, slog.LevelInfo, "register.duplicate",
			slog.String("status", "fail"),
			slog.String("login", logger.SanitizeLimit(login, 64)),
		)
		return nil, model.ErrLoginTaken
	case errors.Is(err, model.ErrUserNotFound):
		// login is free
	default:
		return nil, err
	}

	user, err := s.repo.Create(ctx, telegramID, username, login)
	if err != nil {
		logger.LogEvent(ctx, s.log, slog.LevelError, "register.failed",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	logger.LogEvent(ctx, s.log, slog.LevelInfo, "register.ok",
		slog.String("status", "ok"),
		slog.Int64("user_id", user.ID),
		slog.String("login", logger.SanitizeLimit(login, 64)),
	)
	return user, nil
}

// Count reports the total number of registered users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
