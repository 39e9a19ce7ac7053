package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type regField int

const (
	regUsername regField = iota
	regEmail
	regPassword
	regPassword2
	regFirstName
	regLastName
	regPhone
	regShopName
	regLicense
	regAdminCode
	numRegFields
)

var regLabels = [numRegFields]string{
	"username",
	"email",
	"password",
	"confirm password",
	"first name",
	"last name",
	"phone",
	"shop name",
	"business license",
	"admin code",
}

// regFieldKeys are the wire names matching backend validation errors.
var regFieldKeys = [numRegFields]string{
	"username", "email", "password", "password2",
	"first_name", "last_name", "phone",
	"shop_name", "business_license", "admin_code",
}

var accountTypes = []domain.Role{domain.RoleCustomer, domain.RoleShopOwner, domain.RoleAdmin}

type registerModel struct {
	sessions   *session.Manager
	values     [numRegFields]string
	userType   domain.Role
	focus      int // 0 = account type row, 1..n = visible()[focus-1]
	submitting bool
	errMsg     string
	fieldErrs  map[string][]string
}

func newRegisterModel(s *session.Manager) registerModel {
	return registerModel{sessions: s, userType: domain.RoleCustomer}
}

// visible returns the fields shown for the selected account type. Shop
// fields appear only for shop owners, the admin code only for admins.
func (m registerModel) visible() []regField {
	fields := []regField{regUsername, regEmail, regPassword, regPassword2, regFirstName, regLastName, regPhone}
	switch m.userType {
	case domain.RoleShopOwner:
		fields = append(fields, regShopName, regLicense)
	case domain.RoleAdmin:
		fields = append(fields, regAdminCode)
	}
	return fields
}

func (m registerModel) Init() tea.Cmd {
	return nil
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg, m.fieldErrs = flowErrorParts(msg.err, "registration failed")
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

func (m registerModel) updateKeys(msg tea.KeyMsg) (registerModel, tea.Cmd) {
	m.errMsg = ""
	m.fieldErrs = nil

	visible := m.visible()
	rows := len(visible) + 1 // plus the account type row

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % rows
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + rows) % rows
	case "enter":
		if m.focus == rows-1 {
			return m.submit()
		}
		m.focus++
	case "left", "right":
		if m.focus == 0 {
			idx := 0
			for i, r := range accountTypes {
				if r == m.userType {
					idx = i
					break
				}
			}
			if msg.String() == "right" {
				idx = (idx + 1) % len(accountTypes)
			} else {
				idx = (idx - 1 + len(accountTypes)) % len(accountTypes)
			}
			m.userType = accountTypes[idx]
			// The visible field set may have shrunk.
			if m.focus >= len(m.visible())+1 {
				m.focus = 0
			}
		}
	default:
		if m.focus > 0 {
			f := visible[m.focus-1]
			m.values[f] = editRune(m.values[f], msg.String())
		}
	}
	return m, nil
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	req := client.RegisterRequest{
		Username:        strings.TrimSpace(m.values[regUsername]),
		Email:           strings.TrimSpace(m.values[regEmail]),
		Password:        m.values[regPassword],
		Password2:       m.values[regPassword2],
		FirstName:       strings.TrimSpace(m.values[regFirstName]),
		LastName:        strings.TrimSpace(m.values[regLastName]),
		UserType:        m.userType,
		Phone:           strings.TrimSpace(m.values[regPhone]),
		ShopName:        strings.TrimSpace(m.values[regShopName]),
		BusinessLicense: strings.TrimSpace(m.values[regLicense]),
		AdminCode:       strings.TrimSpace(m.values[regAdminCode]),
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		m.errMsg = "username, email and password are required"
		return m, nil
	}

	m.submitting = true
	sessions := m.sessions
	return m, func() tea.Msg {
		u, err := sessions.Register(context.Background(), req)
		return authDoneMsg{user: u, err: err}
	}
}

func (m registerModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Create an account") + "\n\n")

	// Account type row, cycled with left/right.
	cursor := " "
	labelStyle := metaStyle
	if m.focus == 0 {
		cursor = inputPromptStyle.Render(">")
		labelStyle = selectedStyle
	}
	b.WriteString(" " + cursor + " " + labelStyle.Render("account type") + ": " +
		roleStyle(m.userType).Render(string(m.userType)) +
		"  " + metaStyle.Render("(←/→ to change)") + "\n")

	for i, f := range m.visible() {
		secret := f == regPassword || f == regPassword2
		b.WriteString(" " + renderField(regLabels[f], m.values[f], m.focus == i+1, secret) + "\n")
		b.WriteString(renderFieldErrors(m.fieldErrs[regFieldKeys[f]]))
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("creating account..."))
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	default:
		b.WriteString(" " + metaStyle.Render("ctrl+s to submit, ctrl+l to sign in instead"))
	}
	return b.String()
}
