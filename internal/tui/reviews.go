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

type reviewsLoadedMsg struct {
	reviews []domain.Review
	err     error
}

type reviewDeletedMsg struct{ err error }

type reviewsModel struct {
	api     *client.Client
	role    domain.Role
	reviews []domain.Review
	cursor  int
	loading bool
	err     string
	status  string
	width   int
	height  int
}

func newReviewsModel(api *client.Client) reviewsModel {
	return reviewsModel{api: api, loading: true}
}

func (m reviewsModel) Init() tea.Cmd {
	return m.load()
}

func (m reviewsModel) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		reviews, err := api.ListReviews(context.Background())
		return reviewsLoadedMsg{reviews: reviews, err: err}
	}
}

func (m reviewsModel) Update(msg tea.Msg) (reviewsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.reviews = msg.reviews
			m.err = ""
		}
		if m.cursor >= len(m.reviews) {
			m.cursor = 0
		}
		return m, nil

	case reviewDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "review removed"
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
			if m.cursor < len(m.reviews)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "x":
			// Review moderation is an admin action.
			if len(m.reviews) > 0 && m.role == domain.RoleAdmin {
				api := m.api
				id := m.reviews[m.cursor].ID.String()
				return m, func() tea.Msg {
					return reviewDeletedMsg{err: api.DeleteReview(context.Background(), id)}
				}
			}
		case "c":
			if len(m.reviews) > 0 {
				id := m.reviews[m.cursor].ID.String()
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

func (m reviewsModel) View() string {
	if m.loading && len(m.reviews) == 0 {
		return " " + dimStyle.Render("loading reviews...")
	}
	if m.err != "" {
		return " " + errorStyle.Render("error: "+m.err)
	}
	if len(m.reviews) == 0 {
		return " " + dimStyle.Render("no reviews yet")
	}

	var b strings.Builder
	for i, rv := range m.reviews {
		cursor := "  "
		rowStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			rowStyle = selectedStyle
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s %s\n",
			cursor,
			ratingStyle.Render(ratingStars(rv.Rating)),
			rowStyle.Render(truncStr(rv.ShopName, 24)),
			dimStyle.Render(truncStr(rv.User, 16)),
			metaStyle.Render(formatTime(rv.CreatedAt))))
		if rv.Comment != "" {
			b.WriteString("   " + dimStyle.Render(truncStr(rv.Comment, 70)) + "\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n " + okStyle.Render(m.status))
	}
	return b.String()
}
