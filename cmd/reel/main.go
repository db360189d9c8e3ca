package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dmaize/reel/internal/config"
	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/log"
	"github.com/dmaize/reel/internal/omdb"
	"github.com/dmaize/reel/internal/service"
	"github.com/dmaize/reel/internal/store"
	"github.com/dmaize/reel/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

var setupSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	// First run: collect and verify an API key, then exit
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	// Create catalog client
	catalog := omdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, logger)

	// Open the on-device favorites store
	favStore, err := store.NewFavoritesStore(cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open favorites store: %w", err)
	}
	defer favStore.Close()

	// Create services
	favoritesSvc := service.NewFavoritesService(favStore, logger)
	session := service.NewSearchSession(logger)

	// Create TUI model
	model := tui.NewModel(catalog, favoritesSvc, session)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Reel!")
	fmt.Println()
	fmt.Println("Reel needs an OMDb API key to search the movie catalog.")
	fmt.Println("Free keys are available at https://www.omdbapi.com/apikey.aspx")
	fmt.Println()

	for {
		// Prompt for the key with hidden input
		fmt.Print("Enter your API key: ")
		keyBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key := strings.TrimSpace(string(keyBytes))
		fmt.Println() // Add newline after hidden input

		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			fmt.Println()
			continue
		}

		// Probe the catalog with a spinner
		fmt.Println()
		if err := verifyKeyWithSpinner(cfg.Catalog.BaseURL, key, logger); err != nil {
			if errors.Is(err, domain.ErrInvalidAPIKey) {
				fmt.Println("✗ The catalog rejected that key.")
				fmt.Println("Please check the key and try again.")
				fmt.Println()
				continue
			}
			return fmt.Errorf("could not verify the key: %w", err)
		}

		cfg.Catalog.APIKey = key
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println()
		fmt.Println("✓ Configuration saved!")
		fmt.Println()
		fmt.Println("Run reel again to start the application.")
		return nil
	}
}

// verifyKeyWithSpinner probes the catalog with the entered key and shows an
// inline spinner while the request runs
func verifyKeyWithSpinner(baseURL, key string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := omdb.NewClient(baseURL, key, logger)

	resultCh := make(chan error, 1)
	go func() {
		resultCh <- client.VerifyKey(ctx)
	}()

	// Spinner animation
	frame := 0
	fmt.Printf("\r%s Checking key with the catalog...", setupSpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Println("✓ Key accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking key with the catalog...", setupSpinnerFrames[frame%len(setupSpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("key check timed out")
		}
	}
}
