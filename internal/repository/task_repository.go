package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/taskbot/internal/model"
)

const taskColumns = `id, user_id, title, description, is_done`

// TaskRepository persists tasks. Every operation runs in its own
// transaction which is rolled back on any error, so no partial writes
// are ever visible.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository returns a repository bound to the given database.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task for the given owner and returns the persisted
// record with its generated id.
func (r *TaskRepository) Create(ctx context.Context, userID int64, title, description string) (*model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	desc := sql.NullString{String: description, Valid: description != ""}
	var task model.Task
	err = tx.GetContext(ctx, &task,
		`INSERT INTO tasks (user_id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING `+taskColumns,
		userID, title, desc,
	)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &task, nil
}

// ListByStatus returns the owner's tasks filtered by completion status,
// oldest first.
func (r *TaskRepository) ListByStatus(ctx context.Context, userID int64, done bool) ([]model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var tasks []model.Task
	err = tx.SelectContext(ctx, &tasks,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND is_done = $2 ORDER BY id`,
		userID, done,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return tasks, nil
}

// FindByID returns the owner's task with the given id, or model.ErrTaskNotFound.
func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var task model.Task
	err = tx.GetContext(ctx, &task,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND id = $2`,
		userID, taskID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task by id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &task, nil
}

// FindByTitle returns at most one of the owner's tasks with the given
// title. Duplicate titles resolve to the oldest task.
func (r *TaskRepository) FindByTitle(ctx context.Context, userID int64, title string) (*model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var task model.Task
	err = tx.GetContext(ctx, &task,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND title = $2 ORDER BY id LIMIT 1`,
		userID, title,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task by title: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &task, nil
}

// MarkDone flips the task's done flag and returns the updated record.
// A missing row maps to model.ErrTaskNotFound.
func (r *TaskRepository) MarkDone(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var task model.Task
	err = tx.GetContext(ctx, &task,
		`UPDATE tasks SET is_done = TRUE WHERE user_id = $1 AND id = $2
		 RETURNING `+taskColumns,
		userID, taskID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrTaskNotFound
		}
		return nil, fmt.Errorf("mark task done: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &task, nil
}

// Delete removes the owner's task. A missing row maps to model.ErrTaskNotFound.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`DELETE FROM tasks WHERE user_id = $1 AND id = $2`,
		userID, taskID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: rows affected: %w", err)
	}
	if affected == 0 {
		return model.ErrTaskNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Count returns the total number of tasks across all users.
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tasks`); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
