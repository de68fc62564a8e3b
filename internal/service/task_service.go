package service

import (
	"context"
	"log/slog"

	"github.com/m3rciful/taskbot/core/logger"
	"github.com/m3rciful/taskbot/internal/model"
)

// TaskRepo is the persistence surface the task service depends on.
type TaskRepo interface {
	Create(ctx context.Context, userID int64, title, description string) (*model.Task, error)
	ListByStatus(ctx context.Context, userID int64, done bool) ([]model.Task, error)
	FindByID(ctx context.Context, userID, taskID int64) (*model.Task, error)
	FindByTitle(ctx context.Context, userID int64, title string) (*model.Task, error)
	MarkDone(ctx context.Context, userID, taskID int64) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID int64) error
	Count(ctx context.Context) (int64, error)
}

// TaskService implements the task lifecycle for registered users.
// Every operation resolves the acting user by Telegram id first, so an
// unregistered caller gets model.ErrUserNotFound before touching tasks.
type TaskService struct {
	users UserRepo
	tasks TaskRepo
	log   *slog.Logger
}

// NewTaskService wires a task service over the given repositories.
func NewTaskService(users UserRepo, tasks TaskRepo) *TaskService {
	return &TaskService{
		users: users,
		tasks: tasks,
		log:   logger.Component("service.tasks"),
	}
}

func (s *TaskService) owner(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.users.FindByTelegramID(ctx, telegramID)
}

// CreateTask stores a new task for the caller.
func (s *TaskService) CreateTask(ctx context.Context, telegramID int64, title, description string) (*model.Task, error) {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.Create(ctx, user.ID, title, description)
	if err != nil {
		logger.LogEvent(ctx, s.log, slog.LevelError, "task.create.failed",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	logger.LogEvent(ctx, s.log, slog.LevelInfo, "task.created",
		slog.String("status", "ok"),
		slog.Int64("task_id", task.ID),
	)
	return task, nil
}

// ListTasks returns the caller's tasks filtered by completion status.
func (s *TaskService) ListTasks(ctx context.Context, telegramID int64, done bool) ([]model.Task, error) {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByStatus(ctx, user.ID, done)
}

// GetTask returns the caller's task by id.
func (s *TaskService) GetTask(ctx context.Context, telegramID, taskID int64) (*model.Task, error) {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByID(ctx, user.ID, taskID)
}

// FindTaskByTitle returns the caller's oldest task with the given title.
func (s *TaskService) FindTaskByTitle(ctx context.Context, telegramID int64, title string) (*model.Task, error) {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByTitle(ctx, user.ID, title)
}

// CompleteTask marks the caller's task as done and returns the updated record.
func (s *TaskService) CompleteTask(ctx context.Context, telegramID, taskID int64) (*model.Task, error) {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.MarkDone(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	logger.LogEvent(ctx, s.log, slog.LevelInfo, "task.completed",
		slog.String("status", "ok"),
		slog.Int64("task_id", task.ID),
	)
	return task, nil
}

// DeleteTask removes the caller's task.
func (s *TaskService) DeleteTask(ctx context.Context, telegramID, taskID int64) error {
	user, err := s.owner(ctx, telegramID)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, user.ID, taskID); err != nil {
		return err
	}
	logger.LogEvent(ctx, s.log, slog.LevelInfo, "task.deleted",
		slog.String("status", "ok"),
		slog.Int64("task_id", taskID),
	)
	return nil
}

// Count reports the total number of tasks across all users.
func (s *TaskService) Count(ctx context.Context) (int64, error) {
	return s.tasks.Count(ctx)
}
