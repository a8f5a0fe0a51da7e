package tui

import (
	"github.com/MKhiriev/go-task-keeper/models"
)

type authDoneMsg struct {
	session models.Session
}

type listLoadedMsg struct {
	tasks []models.Task
	err   error
}

type refreshDoneMsg struct {
	err error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
