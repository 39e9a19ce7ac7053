package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type setupField int

const (
	setupName setupField = iota
	setupDescription
	setupCategory
	setupWebsite
	numSetupFields
)

var setupLabels = [numSetupFields]string{"shop name", "description", "category", "website"}

// shopCreatedMsg carries the outcome of the shop setup flow.
type shopCreatedMsg struct {
	shop *domain.Shop
	err  error
}

// shopSetupModel is the first-run flow for a fresh shop owner whose
// account has no shop attached yet.
type shopSetupModel struct {
	api        *client.Client
	store      *session.Store
	fields     [numSetupFields]string
	focus      setupField
	submitting bool
	errMsg     string
}

func newShopSetupModel(api *client.Client, store *session.Store) shopSetupModel {
	return shopSetupModel{api: api, store: store}
}

func (m shopSetupModel) Init() tea.Cmd {
	return nil
}

func (m shopSetupModel) Update(msg tea.Msg) (shopSetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shopCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg, _ = flowErrorParts(msg.err, "could not create the shop")
			return m, nil
		}
		// Scope the session to the new shop; the app switches views.
		m.store.SetShop(&domain.ShopRef{ID: msg.shop.ID.String(), Name: msg.shop.Name})
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m shopSetupModel) updateKeys(msg tea.KeyMsg) (shopSetupModel, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numSetupFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numSetupFields) % numSetupFields
	case "enter":
		if m.focus == numSetupFields-1 {
			return m.submit()
		}
		m.focus++
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

func (m shopSetupModel) submit() (shopSetupModel, tea.Cmd) {
	req := client.CreateShopRequest{
		Name:        strings.TrimSpace(m.fields[setupName]),
		Description: strings.TrimSpace(m.fields[setupDescription]),
		Category:    strings.TrimSpace(m.fields[setupCategory]),
		Website:     strings.TrimSpace(m.fields[setupWebsite]),
	}
	if req.Name == "" {
		m.errMsg = "shop name is required"
		return m, nil
	}

	m.submitting = true
	api := m.api
	return m, func() tea.Msg {
		shop, err := api.CreateShop(context.Background(), req)
		return shopCreatedMsg{shop: shop, err: err}
	}
}

func (m shopSetupModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("Set up your shop") + "\n")
	b.WriteString(" " + dimStyle.Render("your account is ready; give your shop a storefront") + "\n\n")

	for i := setupField(0); i < numSetupFields; i++ {
		b.WriteString(" " + renderField(setupLabels[i], m.fields[i], m.focus == i, false) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("creating shop..."))
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	default:
		b.WriteString(" " + metaStyle.Render("ctrl+s to create your shop"))
	}
	return b.String()
}
