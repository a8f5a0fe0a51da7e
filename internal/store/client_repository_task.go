package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type localTaskRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTaskRepository(db *DB, logger *logger.Logger) LocalTaskRepository {
	return &localTaskRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceTasks swaps the whole cache inside one transaction so a failed
// refresh never leaves a half-written list behind.
func (l *localTaskRepository) ReplaceTasks(ctx context.Context, tasks []models.Task) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localTaskRepository.ReplaceTasks").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllLocalTasks()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localTaskRepository.ReplaceTasks").Msg("failed to clear task cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, task := range tasks {
		query, args, err = buildInsertLocalTask(task)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localTaskRepository.ReplaceTasks").
				Int64("task_id", task.ID).
				Msg("failed to cache task")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localTaskRepository.ReplaceTasks").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localTaskRepository) GetTasks(ctx context.Context) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalTasks()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localTaskRepository.GetTasks").Msg("failed to query cached tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 50)
	for rows.Next() {
		var task models.Task
		if err = rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "localTaskRepository.GetTasks").Msg("failed to scan cached task")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (l *localTaskRepository) SaveTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLocalTask(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.SaveTask").
			Int64("task_id", task.ID).
			Msg("failed to cache task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localTaskRepository) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) error {
	log := logger.FromContext(ctx)

	if update.Title == nil && update.Description == nil && update.Completed == nil {
		return nil
	}

	query, args, err := buildUpdateLocalTask(taskID, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.UpdateTask").
			Int64("task_id", taskID).
			Msg("failed to update cached task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (l *localTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLocalTask(taskID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.DeleteTask").
			Int64("task_id", taskID).
			Msg("failed to delete cached task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReplaceLocalSession(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalSession()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	row := l.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&session.UserID, &session.Username, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}

		log.Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLocalSession()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
