package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/smartshop/shopdeck/internal/session"
	"github.com/smartshop/shopdeck/internal/tokenstore"
	"github.com/smartshop/shopdeck/internal/tui"
	"github.com/smartshop/shopdeck/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load() //nolint:errcheck // a .env file is optional

	apiURL := os.Getenv("SHOPDECK_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000/api"
	}

	tokPath, err := tokenstore.DefaultPath()
	if err != nil {
		return err
	}
	tokens := tokenstore.New(tokPath)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("shopdeck " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "whoami":
			return runWhoami(apiURL, tokens)
		case "logout":
			return runLogout(apiURL, tokens)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	api := client.New(apiURL, "")
	sessions := session.NewManager(api, tokens, session.NewStore())

	p := tea.NewProgram(tui.NewApp(api, sessions), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runWhoami prints the signed-in user without entering the TUI.
func runWhoami(apiURL string, tokens *tokenstore.Store) error {
	tok, err := tokens.Get()
	if err != nil {
		return err
	}
	if tok == "" {
		fmt.Println("Not signed in.")
		return nil
	}
	c := client.New(apiURL, tok)
	u, err := c.CurrentUser(context.Background())
	if err != nil {
		if client.IsStatus(err, 401) {
			fmt.Println("Session expired, sign in again.")
			return nil
		}
		return err
	}
	line := u.Username + " <" + u.Email + "> " + string(u.Role)
	if u.Shop != nil {
		line += " @ " + u.Shop.Name
	}
	fmt.Println(line)
	return nil
}

// runLogout clears the local session and tells the backend best-effort.
func runLogout(apiURL string, tokens *tokenstore.Store) error {
	tok, err := tokens.Get()
	if err == nil && tok != "" {
		c := client.New(apiURL, tok)
		c.Logout(context.Background()) //nolint:errcheck // local cleanup matters more
	}
	if err := tokens.Remove(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
