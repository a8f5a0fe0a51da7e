package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createTask = `INSERT INTO tasks (user_id, title, description, completed)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, user_id, title, description, completed, created_at;`

	getUserTasks = `SELECT task_id, user_id, title, description, completed, created_at
    FROM tasks
    WHERE user_id = $1
    ORDER BY task_id;`

	getUserTask = `SELECT task_id, user_id, title, description, completed, created_at
    FROM tasks
    WHERE task_id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND user_id = $2;`

	updateTaskBase = `UPDATE tasks
		SET `
	updateTaskWhere = ` WHERE task_id = $%d AND user_id = $%d
		RETURNING task_id, user_id, title, description, completed, created_at;`
)

// buildUpdateTaskQuery dynamically builds an UPDATE query containing only the
// fields present in the update. The WHERE clause always pins both the task ID
// and the owner, so the query cannot touch another user's task.
//
// When the update carries no fields at all, args holds just the two WHERE
// arguments; the caller detects this by len(args) == 2 and skips the UPDATE.
func buildUpdateTaskQuery(taskID int64, userID int64, update models.TaskUpdate) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(updateTaskBase)

	args := make([]any, 0, 5)
	setClauses := make([]string, 0, 3)
	argIndex := 1

	if update.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argIndex))
		args = append(args, *update.Title)
		argIndex++
	}

	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIndex))
		args = append(args, *update.Description)
		argIndex++
	}

	if update.Completed != nil {
		setClauses = append(setClauses, fmt.Sprintf("completed = $%d", argIndex))
		args = append(args, *update.Completed)
		argIndex++
	}

	queryBuilder.WriteString(strings.Join(setClauses, ", "))
	queryBuilder.WriteString(fmt.Sprintf(updateTaskWhere, argIndex, argIndex+1))

	args = append(args, taskID, userID)

	return queryBuilder.String(), args
}
