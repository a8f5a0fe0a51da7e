package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations directly against the "tasks" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, task_id, etc.).
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask inserts a new task owned by task.UserID and returns the fully
// populated [models.Task] with server-assigned fields (ID, CreatedAt).
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "taskRepository.CreateTask").
		Int64("user_id", task.UserID).
		Msg("saving new task")

	var saved models.Task
	err := t.DB.QueryRowContext(ctx, createTask,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Title,
		&saved.Description,
		&saved.Completed,
		&saved.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Msg("failed to save task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetTasks retrieves every task owned by the given user, ordered by creation.
//
// Returns an empty slice when the user has no tasks.
func (t *taskRepository) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := t.DB.QueryContext(ctx, getUserTasks, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "taskRepository.GetTasks").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 50)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.GetTasks").
				Int64("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.GetTasks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task owned by userID and returns
// the updated row.
//
// The UPDATE query is built dynamically via [buildUpdateTaskQuery] so that
// only the fields present in the update are touched. The WHERE clause pins
// both the task ID and the owner, which makes a foreign task
// indistinguishable from a missing one: both produce [ErrTaskNotFound].
//
// An update carrying no fields degrades to a plain ownership-scoped fetch of
// the current row.
func (t *taskRepository) UpdateTask(ctx context.Context, userID int64, taskID int64, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args := buildUpdateTaskQuery(taskID, userID, update)

	if len(args) == 2 {
		log.Warn().
			Str("func", "taskRepository.UpdateTask").
			Int64("task_id", taskID).
			Msg("no fields to update, returning current row")
		query = getUserTask
	}

	var updated models.Task
	err := t.DB.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.Description,
		&updated.Completed,
		&updated.CreatedAt,
	)
	if err != nil {
		// no row matched both task_id and user_id
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "taskRepository.UpdateTask").
				Int64("task_id", taskID).
				Int64("user_id", userID).
				Msg("task not found or owned by another user")
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Int64("task_id", taskID).
			Msg("failed to execute update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "taskRepository.UpdateTask").
		Int64("task_id", taskID).
		Msg("successfully updated task")

	return updated, nil
}

// DeleteTask removes a task owned by userID.
//
// The WHERE clause scopes the DELETE by both task ID and owner; zero affected
// rows means the task does not exist or belongs to someone else, and both
// cases surface as [ErrTaskNotFound].
func (t *taskRepository) DeleteTask(ctx context.Context, userID int64, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := t.DB.ExecContext(ctx, deleteTask, taskID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Msg("failed to get affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("task not found or owned by another user")
		return ErrTaskNotFound
	}

	log.Info().
		Str("func", "taskRepository.DeleteTask").
		Int64("task_id", taskID).
		Msg("successfully deleted task")

	return nil
}
