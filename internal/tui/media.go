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

type mediaLoadedMsg struct {
	items []domain.MediaItem
	err   error
}

type mediaDeletedMsg struct{ err error }

type mediaModel struct {
	api     *client.Client
	role    domain.Role
	items   []domain.MediaItem
	cursor  int
	loading bool
	err     string
	status  string
	width   int
	height  int
}

func newMediaModel(api *client.Client) mediaModel {
	return mediaModel{api: api, loading: true}
}

func (m mediaModel) Init() tea.Cmd {
	return m.load()
}

func (m mediaModel) load() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		items, err := api.ListMediaItems(context.Background())
		return mediaLoadedMsg{items: items, err: err}
	}
}

func (m mediaModel) Update(msg tea.Msg) (mediaModel, tea.Cmd) {
	switch msg := msg.(type) {
	case mediaLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.items = msg.items
			m.err = ""
		}
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case mediaDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "media removed"
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
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "x":
			if len(m.items) > 0 {
				api := m.api
				id := m.items[m.cursor].ID.String()
				return m, func() tea.Msg {
					return mediaDeletedMsg{err: api.DeleteMediaItem(context.Background(), id)}
				}
			}
		case "c":
			// Copy the file URL, handy for pasting into shop pages.
			if len(m.items) > 0 {
				url := m.items[m.cursor].FileURL
				return m, func() tea.Msg {
					return copiedMsg{err: clipboard.WriteAll(url)}
				}
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m mediaModel) View() string {
	if m.loading && len(m.items) == 0 {
		return " " + dimStyle.Render("loading media...")
	}
	if m.err != "" {
		return " " + errorStyle.Render("error: "+m.err)
	}
	if len(m.items) == 0 {
		return " " + dimStyle.Render("no media items")
	}

	var b strings.Builder
	for i, it := range m.items {
		cursor := "  "
		rowStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			rowStyle = selectedStyle
		}
		size := ""
		if it.Size > 0 {
			size = "  " + metaStyle.Render(formatSize(it.Size))
		}
		b.WriteString(cursor + rowStyle.Render(truncStr(it.Title, 36)) +
			"  " + dimStyle.Render(it.ContentType) + size +
			"  " + metaStyle.Render(formatTime(it.CreatedAt)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n " + okStyle.Render(m.status))
	}
	return b.String()
}

// formatSize renders a byte count in a compact human unit.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
