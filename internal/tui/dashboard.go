package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

// dashboardKind selects the landing variant a role sees after sign-in.
type dashboardKind int

const (
	dashCustomer dashboardKind = iota
	dashShopOwner
	dashAdmin
)

type statsLoadedMsg struct {
	stats *domain.DashboardStats
	err   error
}

type recentBookingsMsg struct {
	bookings []domain.Booking
	err      error
}

type dashboardModel struct {
	api      *client.Client
	store    *session.Store
	kind     dashboardKind
	stats    *domain.DashboardStats
	bookings []domain.Booking
	loading  bool
	err      string
	width    int
	height   int
}

func newDashboardModel(api *client.Client, store *session.Store) dashboardModel {
	return dashboardModel{api: api, store: store}
}

func (m dashboardModel) Init() tea.Cmd {
	m.loading = true
	if m.kind == dashAdmin {
		return tea.Batch(m.loadStats(), m.loadBookings())
	}
	return m.loadBookings()
}

func (m dashboardModel) loadStats() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		stats, err := api.DashboardStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m dashboardModel) loadBookings() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		bookings, err := api.ListBookings(context.Background())
		return recentBookingsMsg{bookings: bookings, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.stats = msg.stats
			m.err = ""
		}
		return m, nil

	case recentBookingsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.bookings = msg.bookings
			m.err = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading && m.stats == nil && len(m.bookings) == 0 {
		return " " + dimStyle.Render("loading dashboard...")
	}
	if m.err != "" {
		return " " + errorStyle.Render("error: "+m.err)
	}

	switch m.kind {
	case dashAdmin:
		return m.adminView()
	case dashShopOwner:
		return m.shopOwnerView()
	default:
		return m.customerView()
	}
}

func (m dashboardModel) adminView() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("Platform overview") + "\n\n")

	if m.stats != nil {
		s := m.stats
		rows := []struct {
			label string
			value string
		}{
			{"revenue", formatMoney(s.TotalRevenue)},
			{"orders", fmt.Sprintf("%d", s.TotalOrders)},
			{"customers", fmt.Sprintf("%d", s.TotalCustomers)},
			{"shops", fmt.Sprintf("%d", s.TotalShops)},
			{"products", fmt.Sprintf("%d", s.TotalProducts)},
			{"reviews", fmt.Sprintf("%d", s.TotalReviews)},
		}
		for _, row := range rows {
			b.WriteString(fmt.Sprintf(" %s %s\n",
				metaStyle.Render(fmt.Sprintf("%-10s", row.label)),
				accentStyle.Render(row.value)))
		}
		growth := fmt.Sprintf("%+.1f%%", s.MonthlyGrowth)
		growthStyle := okStyle
		if s.MonthlyGrowth < 0 {
			growthStyle = errorStyle
		}
		b.WriteString(fmt.Sprintf(" %s %s\n",
			metaStyle.Render(fmt.Sprintf("%-10s", "growth")),
			growthStyle.Render(growth)))
	}

	b.WriteString("\n" + m.bookingLines("Recent bookings", 5))
	return b.String()
}

func (m dashboardModel) shopOwnerView() string {
	var b strings.Builder

	shop := m.store.State().Shop
	if shop != nil {
		b.WriteString(" " + selectedStyle.Render(shop.Name) + "\n")
		b.WriteString(" " + metaStyle.Render("shop id "+shop.ID) + "\n\n")
	} else {
		b.WriteString(" " + selectedStyle.Render("Your shop") + "\n")
		b.WriteString(" " + dimStyle.Render("no shop on this account yet") + "\n\n")
	}

	b.WriteString(m.bookingLines("Upcoming bookings", 10))
	return b.String()
}

func (m dashboardModel) customerView() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("Your bookings") + "\n\n")
	b.WriteString(m.bookingLines("", 10))
	return b.String()
}

// bookingLines renders up to limit bookings as compact rows.
func (m dashboardModel) bookingLines(title string, limit int) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(" " + selectedStyle.Render(title) + "\n")
	}
	if len(m.bookings) == 0 {
		b.WriteString(" " + dimStyle.Render("no bookings yet") + "\n")
		return b.String()
	}
	for i, bk := range m.bookings {
		if i >= limit {
			b.WriteString(" " + metaStyle.Render(fmt.Sprintf("... and %d more", len(m.bookings)-limit)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf(" %s %s  %s %s  %s\n",
			metaStyle.Render(bk.Date),
			metaStyle.Render(bk.Time),
			normalStyle.Render(truncStr(bk.ShopName, 24)),
			dimStyle.Render(truncStr(bk.CustomerName, 20)),
			statusStyle(bk.Status).Render(bk.Status)))
	}
	return b.String()
}
