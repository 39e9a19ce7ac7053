package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/pkg/client"
	"github.com/smartshop/shopdeck/pkg/domain"
)

type view int

const (
	viewDashboard view = iota
	viewShops
	viewBookings
	viewReviews
	viewMedia
	viewLogin
	viewRegister
	viewShopSetup
	viewForbidden
)

// restoredMsg signals that the startup session restore finished; the
// outcome lives in the session store.
type restoredMsg struct {
	err error
}

// loggedOutMsg signals that the logout flow finished.
type loggedOutMsg struct{}

// App is the root Bubbletea model.
type App struct {
	api       *client.Client
	sessions  *session.Manager
	view      view
	dashboard dashboardModel
	shops     shopsModel
	bookings  bookingsModel
	reviews   reviewsModel
	media     mediaModel
	login     loginModel
	register  registerModel
	setup     shopSetupModel
	restoring bool
	width     int
	height    int
}

// NewApp creates the root TUI application.
func NewApp(api *client.Client, sessions *session.Manager) App {
	store := sessions.Store()
	return App{
		api:       api,
		sessions:  sessions,
		view:      viewLogin,
		dashboard: newDashboardModel(api, store),
		shops:     newShopsModel(api),
		bookings:  newBookingsModel(api),
		reviews:   newReviewsModel(api),
		media:     newMediaModel(api),
		login:     newLoginModel(sessions),
		register:  newRegisterModel(sessions),
		setup:     newShopSetupModel(api, store),
		restoring: true,
	}
}

func (a App) Init() tea.Cmd {
	sessions := a.sessions
	return func() tea.Msg {
		return restoredMsg{err: sessions.Restore(context.Background())}
	}
}

func (a App) logout() tea.Cmd {
	sessions := a.sessions
	return func() tea.Msg {
		sessions.Logout(context.Background())
		return loggedOutMsg{}
	}
}

// enterApp switches to the signed-in user's landing dashboard and stamps
// the role onto the views that gate actions by it.
func (a App) enterApp(u *domain.User) (App, tea.Cmd) {
	a.dashboard.kind = landingFor(u.Role)
	a.shops.role = u.Role
	a.bookings.role = u.Role
	a.reviews.role = u.Role
	a.media.role = u.Role
	a.view = viewDashboard
	return a, a.dashboard.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.shops, _ = a.shops.Update(bodyMsg)
		a.bookings, _ = a.bookings.Update(bodyMsg)
		a.reviews, _ = a.reviews.Update(bodyMsg)
		a.media, _ = a.media.Update(bodyMsg)
		return a, nil

	case restoredMsg:
		a.restoring = false
		st := a.sessions.Store().State()
		if st.Authenticated() {
			next, cmd := a.enterApp(st.User)
			return next, cmd
		}
		a.view = viewLogin
		return a, nil

	case authDoneMsg:
		if msg.err == nil && msg.user != nil {
			// A fresh shop owner with no shop goes through first-run setup.
			if msg.user.Role == domain.RoleShopOwner && a.sessions.Store().State().Shop == nil {
				a.setup = newShopSetupModel(a.api, a.sessions.Store())
				a.view = viewShopSetup
				return a, nil
			}
			next, cmd := a.enterApp(msg.user)
			return next, cmd
		}
		var cmd tea.Cmd
		if a.view == viewRegister {
			a.register, cmd = a.register.Update(msg)
		} else {
			a.login, cmd = a.login.Update(msg)
		}
		return a, cmd

	case shopCreatedMsg:
		var cmd tea.Cmd
		a.setup, cmd = a.setup.Update(msg)
		if msg.err == nil {
			st := a.sessions.Store().State()
			if st.User != nil {
				next, ecmd := a.enterApp(st.User)
				return next, ecmd
			}
		}
		return a, cmd

	case loggedOutMsg:
		a.login = newLoginModel(a.sessions)
		a.register = newRegisterModel(a.sessions)
		a.view = viewLogin
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.restoring {
			return a, nil
		}
		if next, cmd, handled := a.globalKeys(msg); handled {
			return next, cmd
		}
	}

	return a.route(msg)
}

// globalKeys handles navigation keys that apply outside form editing.
func (a App) globalKeys(msg tea.KeyMsg) (App, tea.Cmd, bool) {
	switch a.view {
	case viewLogin:
		if msg.String() == "ctrl+r" {
			a.register = newRegisterModel(a.sessions)
			a.view = viewRegister
			return a, nil, true
		}
		return a, nil, false
	case viewRegister:
		if msg.String() == "ctrl+l" {
			a.login = newLoginModel(a.sessions)
			a.view = viewLogin
			return a, nil, true
		}
		return a, nil, false
	case viewShopSetup:
		return a, nil, false
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit, true
	case "ctrl+d":
		return a, a.logout(), true
	case "1":
		return a.switchTo(viewDashboard)
	case "2":
		return a.switchTo(viewShops)
	case "3":
		return a.switchTo(viewBookings)
	case "4":
		return a.switchTo(viewReviews)
	case "5":
		return a.switchTo(viewMedia)
	}
	return a, nil, false
}

// switchTo runs the target view through the access gate before entering.
func (a App) switchTo(target view) (App, tea.Cmd, bool) {
	if a.view == target {
		return a, nil, true
	}
	st := a.sessions.Store().State()
	switch evaluateGate(st, allowedRolesFor(target)) {
	case gatePending:
		return a, nil, true
	case gateLogin:
		a.login = newLoginModel(a.sessions)
		a.view = viewLogin
		return a, nil, true
	case gateForbidden:
		a.view = viewForbidden
		return a, nil, true
	}

	a.view = target
	switch target {
	case viewDashboard:
		return a, a.dashboard.Init(), true
	case viewShops:
		return a, a.shops.Init(), true
	case viewBookings:
		return a, a.bookings.Init(), true
	case viewReviews:
		return a, a.reviews.Init(), true
	case viewMedia:
		return a, a.media.Init(), true
	}
	return a, nil, true
}

// route forwards a message to the active view's model.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewShops:
		a.shops, cmd = a.shops.Update(msg)
	case viewBookings:
		a.bookings, cmd = a.bookings.Update(msg)
	case viewReviews:
		a.reviews, cmd = a.reviews.Update(msg)
	case viewMedia:
		a.media, cmd = a.media.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewRegister:
		a.register, cmd = a.register.Update(msg)
	case viewShopSetup:
		a.setup, cmd = a.setup.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	logo := renderLogo()
	logoPad := (a.width - lipgloss.Width(logo)) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	st := a.sessions.Store().State()
	userLine := ""
	if st.User != nil {
		parts := []string{
			normalStyle.Render(st.User.Username),
			roleStyle(st.User.Role).Render(string(st.User.Role)),
		}
		if st.Shop != nil {
			parts = append(parts, dimStyle.Render(st.Shop.Name))
		}
		userLine = strings.Join(parts, metaStyle.Render(" · "))
	}
	if userLine != "" {
		pad := (a.width - lipgloss.Width(userLine)) / 2
		if pad < 0 {
			pad = 0
		}
		header += "\n" + strings.Repeat(" ", pad) + userLine
	} else {
		header += "\n"
	}

	if a.restoring {
		return header + "\n\n " + dimStyle.Render("restoring session...")
	}

	tabs := a.tabBar(st)
	body, help := a.bodyAndHelp(st)

	// Chrome budget: header(2) + tabs(1) + help(1)
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabs, body, help)
}

// tabBar renders the numbered view tabs. Unauthenticated sessions get a
// blank bar, so the chrome height stays fixed.
func (a App) tabBar(st session.State) string {
	if !st.Authenticated() {
		return ""
	}

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Dashboard", viewDashboard},
		{"2", "Shops", viewShops},
		{"3", "Bookings", viewBookings},
		{"4", "Reviews", viewReviews},
		{"5", "Media", viewMedia},
	}

	var b strings.Builder
	b.WriteString(" ")
	for i, t := range tabs {
		if i > 0 {
			b.WriteString("   ")
		}
		if t.v == a.view {
			b.WriteString(accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name))
		} else {
			b.WriteString(metaStyle.Render(t.key) + " " + dimStyle.Render(t.name))
		}
	}
	return b.String()
}

func (a App) bodyAndHelp(st session.State) (string, string) {
	nav := helpEntry("1-5", "tabs") + "  " + helpEntry("ctrl+d", "sign out") + "  " + helpEntry("q", "quit")

	switch a.view {
	case viewDashboard:
		return a.dashboard.View(), " " + nav + "  " + helpEntry("r", "refresh")
	case viewShops:
		if a.shops.detail {
			return a.shops.View(), " " + helpEntry("j/k", "nav") + "  " + helpEntry("c", "copy id") + "  " + helpEntry("x", "delete") + "  " + helpEntry("esc", "back")
		}
		return a.shops.View(), " " + nav + "  " + helpEntry("enter", "products") + "  " + helpEntry("o", "website")
	case viewBookings:
		return a.bookings.View(), " " + nav + "  " + helpEntry("f", "confirm") + "  " + helpEntry("x", "cancel")
	case viewReviews:
		return a.reviews.View(), " " + nav + "  " + helpEntry("x", "remove") + "  " + helpEntry("c", "copy id")
	case viewMedia:
		return a.media.View(), " " + nav + "  " + helpEntry("x", "remove") + "  " + helpEntry("c", "copy url")
	case viewLogin:
		return a.login.View(), " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+r", "register") + "  " + helpEntry("ctrl+c", "quit")
	case viewRegister:
		return a.register.View(), " " + helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("ctrl+l", "sign in") + "  " + helpEntry("ctrl+c", "quit")
	case viewShopSetup:
		return a.setup.View(), " " + helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "create") + "  " + helpEntry("ctrl+c", "quit")
	case viewForbidden:
		body := " " + errorStyle.Render("You don't have access to that view.") + "\n" +
			" " + dimStyle.Render("press 1 to return to your dashboard")
		return body, " " + nav
	}
	return "", " " + nav
}
