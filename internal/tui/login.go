// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/textinput"

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
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

	return loginModel{inputs: []textinput.Model{username, password}}
}

func (m loginModel) View() string {
	out := "Log in\n\n"
	out += "Username:\n" + m.inputs[0].View() + "\n\n"
	out += "Password:\n" + m.inputs[1].View() + "\n\n"
	if m.submitting {
		out += "Signing in...\n\n"
	}
	out += helpStyle.Render("tab next field  enter submit  esc back  ctrl+c quit")
	return out
}
