// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	createLocalTasksTable = `
		CREATE TABLE IF NOT EXISTS tasks (
			task_id     INTEGER PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			completed   BOOLEAN NOT NULL DEFAULT 0,
			created_at  TIMESTAMP NOT NULL
		);`

	// a single-row table: the client holds at most one login session
	createLocalSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  INTEGER NOT NULL,
			username TEXT NOT NULL,
			token    TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`
)

// localBuilder produces SQLite-flavoured queries with ? placeholders.
var localBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertLocalTask(task models.Task) (string, []any, error) {
	return localBuilder.
		Insert("tasks").
		Columns("task_id", "title", "description", "completed", "created_at").
		Values(task.ID, task.Title, task.Description, task.Completed, task.CreatedAt).
		Suffix("ON CONFLICT(task_id) DO UPDATE SET title=excluded.title, description=excluded.description, completed=excluded.completed").
		ToSql()
}

func buildSelectLocalTasks() (string, []any, error) {
	return localBuilder.
		Select("task_id", "title", "description", "completed", "created_at").
		From("tasks").
		OrderBy("task_id").
		ToSql()
}

func buildUpdateLocalTask(taskID int64, update models.TaskUpdate) (string, []any, error) {
	b := localBuilder.Update("tasks")
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Completed != nil {
		b = b.Set("completed", *update.Completed)
	}
	return b.Where(sq.Eq{"task_id": taskID}).ToSql()
}

func buildDeleteLocalTask(taskID int64) (string, []any, error) {
	return localBuilder.
		Delete("tasks").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
}

func buildDeleteAllLocalTasks() (string, []any, error) {
	return localBuilder.Delete("tasks").ToSql()
}

func buildReplaceLocalSession(session models.Session) (string, []any, error) {
	return localBuilder.
		Insert("session").
		Columns("id", "user_id", "username", "token", "saved_at").
		Values(1, session.UserID, session.Username, session.Token, session.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, username=excluded.username, token=excluded.token, saved_at=excluded.saved_at").
		ToSql()
}

func buildSelectLocalSession() (string, []any, error) {
	return localBuilder.
		Select("user_id", "username", "token", "saved_at").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildDeleteLocalSession() (string, []any, error) {
	return localBuilder.
		Delete("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}
