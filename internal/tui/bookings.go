package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type bookingsLoadedMsg struct {
	bookings []domain.Booking
	err      error
}

type bookingUpdatedMsg struct{ err error }

type bookingsModel struct {
	api      *client.Client
	role     domain.Role
	bookings []domain.Booking
	cursor   int
	loading  bool
	err      string
	status   string
	width    int
	height   int
}

func newBookingsModel(api *client.Client) bookingsModel {
	return bookingsModel{api: api, loading: true}
}

func (m bookingsModel) Init() tea.Cmd {
	return m.load()
}

func (m bookingsModel) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		bookings, err := api.ListBookings(context.Background())
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

func (m bookingsModel) setStatus(status string) tea.Cmd {
	api := m.api
	id := m.bookings[m.cursor].ID.String()
	return func() tea.Msg {
		_, err := api.UpdateBookingStatus(context.Background(), id, status)
		return bookingUpdatedMsg{err: err}
	}
}

// canManage reports whether the current role may change booking statuses.
func (m bookingsModel) canManage() bool {
	return m.role == domain.RoleAdmin || m.role == domain.RoleShopOwner
}

func (m bookingsModel) Update(msg tea.Msg) (bookingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case bookingsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.bookings = msg.bookings
			m.err = ""
		}
		if m.cursor >= len(m.bookings) {
			m.cursor = 0
		}
		return m, nil

	case bookingUpdatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("update failed: %v", msg.err)
			return m, nil
		}
		m.status = "booking updated"
		m.loading = true
		return m, m.load()

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
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.bookings)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "f":
			if len(m.bookings) > 0 && m.canManage() {
				return m, m.setStatus(domain.BookingConfirmed)
			}
		case "x":
			if len(m.bookings) > 0 {
				// Customers may cancel their own booking; the backend
				// enforces ownership.
				return m, m.setStatus(domain.BookingCancelled)
			}
		case "c":
			if len(m.bookings) > 0 {
				id := m.bookings[m.cursor].ID.String()
				return m, func() tea.Msg {
					return copiedMsg{err: clipboard.WriteAll(id)}
				}
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m bookingsModel) View() string {
	if m.loading && len(m.bookings) == 0 {
		return " " + dimStyle.Render("loading bookings...")
	}
	if m.err != "" {
		return " " + errorStyle.Render("error: "+m.err)
	}
	if len(m.bookings) == 0 {
		return " " + dimStyle.Render("no bookings yet")
	}

	var b strings.Builder
	for i, bk := range m.bookings {
		cursor := "  "
		rowStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			rowStyle = selectedStyle
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s  %s\n",
			cursor,
			metaStyle.Render(bk.Date),
			metaStyle.Render(bk.Time),
			rowStyle.Render(truncStr(bk.ShopName, 26)),
			dimStyle.Render(truncStr(bk.CustomerName, 20)),
			statusStyle(bk.Status).Render(bk.Status)))
	}
	if m.status != "" {
		b.WriteString("\n " + okStyle.Render(m.status))
	}
	return b.String()
}
