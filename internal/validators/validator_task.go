// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	FieldUserID = "user_id"
	FieldTitle  = "title"
)

type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.TaskUpdate:
		return v.validateTaskUpdate(ctx, value, fields...)
	case *models.TaskUpdate:
		return v.validateTaskUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTask(ctx context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if task.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(task.Title) == "" {
				return ErrEmptyTitle
			}
			if len(task.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTaskUpdate checks only the fields the update actually carries.
// An update with no fields at all is legal: it degrades to a read of the
// current task state further down the stack.
func (v *TaskValidator) validateTaskUpdate(ctx context.Context, update models.TaskUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			if strings.TrimSpace(*update.Title) == "" {
				return ErrEmptyTitle
			}
			if len(*update.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
