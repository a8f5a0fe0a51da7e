package tui

import "github.com/charmbracelet/bubbles/textinput"

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{username, password, repeat}}
}

func (m registerModel) View() string {
	out := "Register\n\n"
	out += "Username:\n" + m.inputs[0].View() + "\n\n"
	out += "Password:\n" + m.inputs[1].View() + "\n\n"
	out += "Repeat password:\n" + m.inputs[2].View() + "\n\n"
	if m.submitting {
		out += "Registering...\n\n"
	}
	out += helpStyle.Render("tab next field  enter submit  esc back  ctrl+c quit")
	return out
}
