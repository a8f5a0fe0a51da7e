package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-task-keeper/models"
)

type listModel struct {
	tasks      []models.Task
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	username   string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Task, bool) {
	if len(m.tasks) == 0 || m.idx < 0 || m.idx >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.idx], true
}

func (m listModel) View() string {
	header := "GoTaskKeeper"
	if m.username != "" {
		header += "  " + helpStyle.Render(m.username)
	}
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.tasks) == 0 {
		out += "No tasks yet\n"
	} else {
		for i, task := range m.tasks {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			box := "[ ]"
			title := fitText(task.Title, 48)
			if task.Completed {
				box = "[x]"
				title = doneStyle.Render(title)
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, box, title)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  e edit  enter toggle  d delete  c copy  r refresh  l logout  q quit")
	return out
}
