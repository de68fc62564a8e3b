package service

import (
	"context"
	"errors"
	"testing"

	"github.com/m3rciful/taskbot/internal/model"
)

type fakeUserRepo struct {
	nextID int64
	users  []*model.User
}

func (f *fakeUserRepo) FindByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	for _, u := range f.users {
		if u.TelegramID == telegramID {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) FindByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, telegramID int64, username, login string) (*model.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return nil, model.ErrLoginTaken
		}
	}
	f.nextID++
	u := &model.User{ID: f.nextID, TelegramID: telegramID, Username: username, Login: login}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeTaskRepo struct {
	nextID int64
	tasks  []*model.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, userID int64, title, description string) (*model.Task, error) {
	f.nextID++
	t := &model.Task{ID: f.nextID, UserID: userID, Title: title}
	if description != "" {
		t.Description.String = description
		t.Description.Valid = true
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskRepo) ListByStatus(_ context.Context, userID int64, done bool) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == userID && t.IsDone == done {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, userID, taskID int64) (*model.Task, error) {
	for _, t := range f.tasks {
		if t.UserID == userID && t.ID == taskID {
			return t, nil
		}
	}
	return nil, model.ErrTaskNotFound
}

func (f *fakeTaskRepo) FindByTitle(_ context.Context, userID int64, title string) (*model.Task, error) {
	for _, t := range f.tasks {
		if t.UserID == userID && t.Title == title {
			return t, nil
		}
	}
	return nil, model.ErrTaskNotFound
}

func (f *fakeTaskRepo) MarkDone(_ context.Context, userID, taskID int64) (*model.Task, error) {
	t, err := f.FindByID(context.Background(), userID, taskID)
	if err != nil {
		return nil, err
	}
	t.IsDone = true
	return t, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, userID, taskID int64) error {
	for i, t := range f.tasks {
		if t.UserID == userID && t.ID == taskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return model.ErrTaskNotFound
}

func (f *fakeTaskRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.tasks)), nil
}

func newServices() (*UserService, *TaskService, *fakeUserRepo, *fakeTaskRepo) {
	ur := &fakeUserRepo{}
	tr := &fakeTaskRepo{}
	return NewUserService(ur), NewTaskService(ur, tr), ur, tr
}

func TestRegisterAndLookup(t *testing.T) {
	users, _, _, _ := newServices()
	ctx := context.Background()

	u, err := users.Register(ctx, 100, "Alice", "alice1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Username != "Alice" || u.Login != "alice1" {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := users.GetByTelegramID(ctx, 100)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("lookup id = %d, want %d", got.ID, u.ID)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	users, _, ur, _ := newServices()
	ctx := context.Background()

	if _, err := users.Register(ctx, 100, "Alice", "alice1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := users.Register(ctx, 200, "Bob", "alice1")
	if !errors.Is(err, model.ErrLoginTaken) {
		t.Fatalf("err = %v, want ErrLoginTaken", err)
	}
	if n, _ := ur.Count(ctx); n != 1 {
		t.Fatalf("users = %d, want 1", n)
	}
}

func TestTaskLifecycle(t *testing.T) {
	users, tasks, _, _ := newServices()
	ctx := context.Background()

	if _, err := users.Register(ctx, 100, "Alice", "alice1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	task, err := tasks.CreateTask(ctx, 100, "Buy milk", "2%")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.DescriptionText() != "2%" {
		t.Fatalf("description = %q", task.DescriptionText())
	}

	pending, err := tasks.ListTasks(ctx, 100, false)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != task.ID {
		t.Fatalf("pending = %+v", pending)
	}
	done, _ := tasks.ListTasks(ctx, 100, true)
	if len(done) != 0 {
		t.Fatalf("done = %+v, want empty", done)
	}

	if _, err := tasks.CompleteTask(ctx, 100, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	pending, _ = tasks.ListTasks(ctx, 100, false)
	if len(pending) != 0 {
		t.Fatalf("pending after complete = %+v", pending)
	}
	done, _ = tasks.ListTasks(ctx, 100, true)
	if len(done) != 1 {
		t.Fatalf("done after complete = %+v", done)
	}

	if err := tasks.DeleteTask(ctx, 100, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	done, _ = tasks.ListTasks(ctx, 100, true)
	pending, _ = tasks.ListTasks(ctx, 100, false)
	if len(done) != 0 || len(pending) != 0 {
		t.Fatal("deleted task still listed")
	}
}

func TestTaskNotFound(t *testing.T) {
	users, tasks, _, _ := newServices()
	ctx := context.Background()

	if _, err := users.Register(ctx, 100, "Alice", "alice1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := tasks.GetTask(ctx, 100, 999); !errors.Is(err, model.ErrTaskNotFound) {
		t.Fatalf("get: %v, want ErrTaskNotFound", err)
	}
	if _, err := tasks.CompleteTask(ctx, 100, 999); !errors.Is(err, model.ErrTaskNotFound) {
		t.Fatalf("complete: %v, want ErrTaskNotFound", err)
	}
	if err := tasks.DeleteTask(ctx, 100, 999); !errors.Is(err, model.ErrTaskNotFound) {
		t.Fatalf("delete: %v, want ErrTaskNotFound", err)
	}
	if _, err := tasks.FindTaskByTitle(ctx, 100, "missing"); !errors.Is(err, model.ErrTaskNotFound) {
		t.Fatalf("find by title: %v, want ErrTaskNotFound", err)
	}
}

func TestTaskOpsRequireRegistration(t *testing.T) {
	_, tasks, _, _ := newServices()
	ctx := context.Background()

	if _, err := tasks.CreateTask(ctx, 100, "x", ""); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("create: %v, want ErrUserNotFound", err)
	}
	if _, err := tasks.ListTasks(ctx, 100, false); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("list: %v, want ErrUserNotFound", err)
	}
	if err := tasks.DeleteTask(ctx, 100, 1); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("delete: %v, want ErrUserNotFound", err)
	}
}

func TestCompleteTaskTwice(t *testing.T) {
	users, tasks, _, _ := newServices()
	ctx := context.Background()

	if _, err := users.Register(ctx, 100, "Alice", "alice1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	task, err := tasks.CreateTask(ctx, 100, "Buy milk", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := tasks.CompleteTask(ctx, 100, task.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := tasks.CompleteTask(ctx, 100, task.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	done, _ := tasks.ListTasks(ctx, 100, true)
	if len(done) != 1 {
		t.Fatalf("done = %d, want exactly 1", len(done))
	}
}
