package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// appModel is the single Bubble Tea model for the whole client. The active
// screen decides which sub-model handles input; async work runs in tea.Cmd
// closures and comes back as typed messages.
type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	form     taskFormModel

	session       models.Session
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	logout        bool
	resultSession models.Session
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, session models.Session) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenList
	m.list.username = session.Username
	m.list.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadList()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteTask(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultSession = msg.session
		return m, tea.Quit
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.tasks = msg.tasks
		if m.list.idx >= len(m.list.tasks) {
			m.list.idx = len(m.list.tasks) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case refreshDoneMsg:
		m.list.refreshing = false
		if msg.err != nil {
			m.showErrorf("Server unavailable, showing cached tasks")
		}
		return m, m.cmdLoadList()
	case taskSavedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			m.setSubmitting(false)
			return m, nil
		}
		m.setSubmitting(false)
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case taskDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingDelete = 0
		return m, m.cmdLoadList()
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Username: username, Password: password})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.register.inputs[0].Value())
			password := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if username == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.User{Username: username, Password: password})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.tasks)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			task, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdToggleTask(task)
		case key.Matches(msg, keys.newItem):
			m.form = newTaskFormModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.edit):
			task, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.form = newTaskFormModel(&task)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.delete):
			task, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = fitText(task.Title, 40)
			m.pendingDelete = task.ID
		case key.Matches(msg, keys.copy):
			task, ok := m.list.current()
			if !ok || task.Title == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(task.Title)
		case key.Matches(msg, keys.refresh):
			if m.list.refreshing {
				return m, nil
			}
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.form.inputs[0].Value()) == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateTask(m.form.taskID, m.form.toUpdate())
			}
			return m, m.cmdAddTask(m.form.toTask())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, user)
		if err != nil {
			return taskSavedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdRegisterAndLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if err := auth.Register(ctx, user); err != nil {
			return taskSavedMsg{err: err}
		}
		session, err := auth.Login(ctx, models.User{Username: user.Username, Password: user.Password})
		if err != nil {
			return taskSavedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		tasks, err := svc.List(ctx)
		return listLoadedMsg{tasks: tasks, err: err}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		err := svc.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func (m appModel) cmdAddTask(task models.Task) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		err := svc.Add(ctx, task)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateTask(taskID int64, update models.TaskUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		err := svc.Update(ctx, taskID, update)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdToggleTask(task models.Task) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	completed := !task.Completed
	return func() tea.Msg {
		err := svc.Update(ctx, task.ID, models.TaskUpdate{Completed: &completed})
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTask(taskID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		err := svc.Delete(ctx, taskID)
		return taskDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return taskSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m taskFormModel) taskFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m taskFormModel) taskFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
