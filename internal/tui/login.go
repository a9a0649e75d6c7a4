// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/mission-planner/models"
)

// loginForm holds the username and password inputs of the login screen.
type loginForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginForm() loginForm {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginForm{inputs: []textinput.Model{usernameInput, passwordInput}}
}

// credentials returns the entered values, or false when one is empty.
func (f loginForm) credentials() (models.Credentials, bool) {
	username := strings.TrimSpace(f.inputs[0].Value())
	password := f.inputs[1].Value()
	if username == "" || password == "" {
		return models.Credentials{}, false
	}
	return models.Credentials{Username: username, Password: password}, true
}

func (f loginForm) focusNext() loginForm {
	return f.focusAt((f.focus + 1) % len(f.inputs))
}

func (f loginForm) focusPrev() loginForm {
	return f.focusAt((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f loginForm) focusAt(i int) loginForm {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

func (f loginForm) updateInput(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// reset clears the password and any error, keeping the username.
func (f loginForm) reset() loginForm {
	f.inputs[1].SetValue("")
	f.submitting = false
	f.errMsg = ""
	return f.focusAt(1)
}

func (f loginForm) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n")

	if f.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(f.errMsg)
		b.WriteString("\n")
	}

	return renderPage("MISSION PLANNER: SIGN IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: sign in │ ctrl+r: register")
}
