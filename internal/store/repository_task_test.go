package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &taskRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func taskColumns() []string {
	return []string{"task_id", "user_id", "title", "description", "completed", "created_at"}
}

func TestCreateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	task := models.Task{UserID: 1, Title: "buy milk", Description: "2 liters"}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(10, task.UserID, task.Title, task.Description, false, now)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.UserID, task.Title, task.Description, task.Completed).
		WillReturnRows(rows)

	created, err := repo.CreateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected ID=10, got %d", created.ID)
	}
	if created.Title != task.Title {
		t.Errorf("expected title %q, got %q", task.Title, created.Title)
	}
	if created.Completed {
		t.Error("new task must not be completed")
	}
}

func TestCreateTask_QueryError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	_, err := repo.CreateTask(context.Background(), models.Task{UserID: 1, Title: "x"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetTasks_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(taskColumns()).
		AddRow(1, 42, "first", "", false, now).
		AddRow(2, 42, "second", "details", true, now)

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	tasks, err := repo.GetTasks(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "first" || tasks[1].Title != "second" {
		t.Errorf("unexpected task order: %q, %q", tasks[0].Title, tasks[1].Title)
	}
	if !tasks[1].Completed {
		t.Error("expected second task to be completed")
	}
}

func TestGetTasks_Empty(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	tasks, err := repo.GetTasks(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty slice, got %d tasks", len(tasks))
	}
	if tasks == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestGetTasks_QueryError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection lost"))

	_, err := repo.GetTasks(context.Background(), 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	completed := true
	update := models.TaskUpdate{Completed: &completed}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(5, 42, "walk the dog", "", true, now)

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(true, int64(5), int64(42)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTask(context.Background(), 42, 5, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected task to be completed after update")
	}
	if updated.ID != 5 {
		t.Errorf("expected ID=5, got %d", updated.ID)
	}
}

func TestUpdateTask_AllFields(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	title := "new title"
	description := "new description"
	completed := true
	update := models.TaskUpdate{Title: &title, Description: &description, Completed: &completed}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(5, 42, title, description, true, now)

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(title, description, true, int64(5), int64(42)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTask(context.Background(), 42, 5, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	completed := true
	update := models.TaskUpdate{Completed: &completed}

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(true, int64(999), int64(42)).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	_, err := repo.UpdateTask(context.Background(), 42, 999, update)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_ForeignTaskLooksMissing(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	completed := true
	update := models.TaskUpdate{Completed: &completed}

	// task 5 exists but belongs to user 1, caller is user 2:
	// the WHERE clause matches nothing
	mock.ExpectQuery("UPDATE tasks").
		WithArgs(true, int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	_, err := repo.UpdateTask(context.Background(), 2, 5, update)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_NoFields(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(taskColumns()).
		AddRow(5, 42, "unchanged", "", false, now)

	// empty update degrades to a scoped SELECT of the current row
	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(5), int64(42)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTask(context.Background(), 42, 5, models.TaskUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "unchanged" {
		t.Errorf("expected current row back, got title %q", updated.Title)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTask(context.Background(), 42, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(999), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(context.Background(), 42, 999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask_QueryError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(5), int64(42)).
		WillReturnError(errors.New("connection lost"))

	err := repo.DeleteTask(context.Background(), 42, 5)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}
