package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-task-keeper/models"
)

type taskFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	taskID     int64
}

// newTaskFormModel builds an empty form when task is nil and a pre-filled
// edit form otherwise.
func newTaskFormModel(task *models.Task) taskFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 255
	title.Width = 48
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.CharLimit = 1024
	description.Width = 48

	m := taskFormModel{inputs: []textinput.Model{title, description}}
	if task != nil {
		m.editing = true
		m.taskID = task.ID
		m.inputs[0].SetValue(task.Title)
		m.inputs[1].SetValue(task.Description)
	}
	return m
}

func (m taskFormModel) toTask() models.Task {
	return models.Task{
		Title:       strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
	}
}

func (m taskFormModel) toUpdate() models.TaskUpdate {
	title := strings.TrimSpace(m.inputs[0].Value())
	description := strings.TrimSpace(m.inputs[1].Value())
	return models.TaskUpdate{Title: &title, Description: &description}
}

func (m taskFormModel) View() string {
	header := "New task"
	if m.editing {
		header = "Edit task"
	}
	out := header + "\n\n"
	out += "Title:\n" + m.inputs[0].View() + "\n\n"
	out += "Description:\n" + m.inputs[1].View() + "\n\n"
	if m.submitting {
		out += "Saving...\n\n"
	}
	out += helpStyle.Render("tab next field  enter save  esc cancel  ctrl+c quit")
	return out
}
