package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/internal/browser"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type shopsLoadedMsg struct {
	shops []domain.Shop
	err   error
}

type productsLoadedMsg struct {
	products []domain.Product
	err      error
}

type productDeletedMsg struct{ err error }

type copiedMsg struct{ err error }

type shopsModel struct {
	api      *client.Client
	role     domain.Role
	shops    []domain.Shop
	products []domain.Product
	cursor   int
	pcursor  int
	detail   bool // product list of the selected shop
	loading  bool
	err      string
	status   string
	width    int
	height   int
}

func newShopsModel(api *client.Client) shopsModel {
	return shopsModel{api: api, loading: true}
}

func (m shopsModel) Init() tea.Cmd {
	return m.load()
}

func (m shopsModel) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		shops, err := api.ListShops(context.Background())
		return shopsLoadedMsg{shops: shops, err: err}
	}
}

func (m shopsModel) loadProducts() tea.Cmd {
	api := m.api
	id := m.shops[m.cursor].ID.String()
	return func() tea.Msg {
		products, err := api.ListProducts(context.Background(), id)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (m shopsModel) Update(msg tea.Msg) (shopsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shopsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.shops = msg.shops
			m.err = ""
		}
		if m.cursor >= len(m.shops) {
			m.cursor = 0
		}
		return m, nil

	case productsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.products = msg.products
			m.err = ""
		}
		if m.pcursor >= len(m.products) {
			m.pcursor = 0
		}
		return m, nil

	case productDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "product deleted"
		m.loading = true
		return m, m.loadProducts()

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m shopsModel) updateList(msg tea.KeyMsg) (shopsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.shops)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.shops) > 0 {
			m.detail = true
			m.pcursor = 0
			m.loading = true
			return m, m.loadProducts()
		}
	case "o":
		if len(m.shops) > 0 && m.shops[m.cursor].Website != "" {
			browser.Open(m.shops[m.cursor].Website) //nolint:errcheck // best-effort browser open
		}
	case "c":
		if len(m.shops) > 0 {
			id := m.shops[m.cursor].ID.String()
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(id)}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m shopsModel) updateDetail(msg tea.KeyMsg) (shopsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
		m.products = nil
	case "j", "down":
		if m.pcursor < len(m.products)-1 {
			m.pcursor++
		}
	case "k", "up":
		if m.pcursor > 0 {
			m.pcursor--
		}
	case "c":
		if len(m.products) > 0 {
			id := m.products[m.pcursor].ID.String()
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(id)}
			}
		}
	case "x":
		// Only owners and admins manage products.
		if len(m.products) > 0 && (m.role == domain.RoleAdmin || m.role == domain.RoleShopOwner) {
			api := m.api
			shopID := m.shops[m.cursor].ID.String()
			productID := m.products[m.pcursor].ID.String()
			return m, func() tea.Msg {
				return productDeletedMsg{err: api.DeleteProduct(context.Background(), shopID, productID)}
			}
		}
	case "r":
		m.loading = true
		return m, m.loadProducts()
	}
	return m, nil
}

func (m shopsModel) View() string {
	if m.loading && len(m.shops) == 0 {
		return " " + dimStyle.Render("loading shops...")
	}
	if m.err != "" {
		return " " + errorStyle.Render("error: "+m.err)
	}
	if m.detail {
		return m.detailView()
	}
	return m.listView()
}

func (m shopsModel) listView() string {
	if len(m.shops) == 0 {
		return " " + dimStyle.Render("no shops yet")
	}

	var b strings.Builder
	for i, s := range m.shops {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}

		verified := ""
		if s.IsVerified {
			verified = " " + okStyle.Render("✓")
		}
		rating := ""
		if s.TotalReviews > 0 {
			rating = "  " + ratingStyle.Render(fmt.Sprintf("%.1f", s.Rating)) +
				metaStyle.Render(fmt.Sprintf(" (%d)", s.TotalReviews))
		}

		b.WriteString(cursor + nameStyle.Render(truncStr(s.Name, 32)) + verified +
			"  " + dimStyle.Render(s.Category) + rating + "\n")
	}
	if m.status != "" {
		b.WriteString("\n " + okStyle.Render(m.status))
	}
	return b.String()
}

func (m shopsModel) detailView() string {
	shop := m.shops[m.cursor]

	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render(shop.Name) + "  " + dimStyle.Render(shop.Category) + "\n")
	if shop.Description != "" {
		b.WriteString(" " + normalStyle.Render(truncStr(shop.Description, 70)) + "\n")
	}
	if shop.Website != "" {
		b.WriteString(" " + metaStyle.Render(shop.Website) + "\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading products..."))
		return b.String()
	}
	if len(m.products) == 0 {
		b.WriteString(" " + dimStyle.Render("no products"))
		return b.String()
	}

	for i, p := range m.products {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.pcursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		stock := okStyle.Render(fmt.Sprintf("%d in stock", p.Stock))
		if p.Stock == 0 {
			stock = errorStyle.Render("out of stock")
		}
		inactive := ""
		if !p.IsActive {
			inactive = "  " + metaStyle.Render("inactive")
		}
		b.WriteString(cursor + nameStyle.Render(truncStr(p.Name, 32)) +
			"  " + accentStyle.Render(formatMoney(p.Price)) +
			"  " + stock + inactive + "\n")
	}
	if m.status != "" {
		b.WriteString("\n " + okStyle.Render(m.status))
	}
	return b.String()
}
