package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type loginField int

const (
	loginFieldEmail loginField = iota
	loginFieldPassword
	numLoginFields
)

// authDoneMsg carries the outcome of a login or register flow.
type authDoneMsg struct {
	user *domain.User
	err  error
}

type loginModel struct {
	sessions   *session.Manager
	fields     [numLoginFields]string
	focus      loginField
	submitting bool
	errMsg     string
	fieldErrs  map[string][]string
}

func newLoginModel(s *session.Manager) loginModel {
	return loginModel{sessions: s}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg, m.fieldErrs = flowErrorParts(msg.err, "login failed")
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.errMsg = ""
	m.fieldErrs = nil

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numLoginFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numLoginFields) % numLoginFields
	case "enter":
		if m.focus == loginFieldPassword {
			return m.submit()
		}
		m.focus = (m.focus + 1) % numLoginFields
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[loginFieldEmail])
	password := m.fields[loginFieldPassword]

	if email == "" || password == "" {
		m.errMsg = "email and password are required"
		return m, nil
	}

	// One submission at a time; the store itself does not serialize.
	m.submitting = true
	sessions := m.sessions
	return m, func() tea.Msg {
		u, err := sessions.Login(context.Background(), email, password)
		return authDoneMsg{user: u, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Sign in") + "\n\n")
	b.WriteString(" " + renderField("email", m.fields[loginFieldEmail], m.focus == loginFieldEmail, false) + "\n")
	b.WriteString(renderFieldErrors(m.fieldErrs["email"]))
	b.WriteString(" " + renderField("password", m.fields[loginFieldPassword], m.focus == loginFieldPassword, true) + "\n")
	b.WriteString(renderFieldErrors(m.fieldErrs["password"]))

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("signing in..."))
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	default:
		b.WriteString(" " + metaStyle.Render("new here? press ctrl+r to register"))
	}
	return b.String()
}

// flowErrorParts splits a flow error into a banner message and any
// per-field errors for inline display.
func flowErrorParts(err error, fallback string) (string, map[string][]string) {
	var fieldErr *session.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Detail, map[string][]string{fieldErr.Field: {fieldErr.Detail}}
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Detail
		if detail == "" {
			detail = fallback
		}
		return detail, apiErr.Fields
	}
	if errors.Is(err, client.ErrNoAccessToken) {
		return fallback, nil
	}
	return "network error, please try again", nil
}
