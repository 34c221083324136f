package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shootlist/internal/adapters/clipboard"
	"shootlist/internal/adapters/exiftool"
	"shootlist/internal/adapters/fswatch"
	"shootlist/internal/adapters/sqlite"
	"shootlist/internal/application/session"
	"shootlist/internal/config"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

var (
	styleArticle = lipgloss.NewStyle().Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	styleDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Work through the whole catalog, one variation at a time",
	Long: `Run a headless shooting session over every variation in the workbook.

For each variation the target file name is copied to the clipboard, the
watch directory is observed until the photo lands, and the article's
IPTC metadata is written into it. On a component failure the session
pauses; press enter to retry the failed step, or type "s" and enter to
skip the current variation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		watch := config.ExpandHome(cfg.WatchDir)
		if err := os.MkdirAll(watch, 0755); err != nil {
			return fmt.Errorf("cannot create watch directory: %w", err)
		}

		var journal ports.Journal
		j := sqlite.NewJournal()
		if err := j.Open(cfg.JournalPath); err == nil {
			journal = j
			defer j.Close()
		}

		fmt.Printf("Loaded %d articles (%d variations) from %s\n", catalog.Articles(), catalog.Len(), excelPath)
		fmt.Printf("Watching %s\n\n", watch)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		controller := session.New(session.Options{
			Catalog:      catalog,
			Publisher:    clipboard.NewPublisher(),
			Watcher:      fswatch.NewWatcher(cfg.Extensions),
			Writer:       exiftool.NewWriter(cfg.Exiftool),
			Journal:      journal,
			WatchDir:     watch,
			WorkbookPath: excelPath,
			Notify:       printUpdate,
		})

		// "s" on stdin skips the current variation, any other line
		// retries the failed step
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "s" {
					controller.Skip()
					continue
				}
				controller.Retry()
			}
		}()

		if err := controller.Run(ctx); err != nil {
			return err
		}
		return nil
	},
}

func printUpdate(u session.Update) {
	switch {
	case u.Err != nil:
		fmt.Println(styleErr.Render("  ✗ " + u.Err.Error()))
		fmt.Println(styleInfo.Render("    press enter to retry"))

	case u.Phase == domain.PhaseExhausted:
		fmt.Println()
		fmt.Println(styleDone.Render(fmt.Sprintf("Session complete: %d photo(s) tagged.", u.Processed)))

	case u.Phase == domain.PhaseArticleReady:
		fmt.Println(styleArticle.Render(fmt.Sprintf("→ %s %s — %s (%s %s)",
			u.Variation.Number, u.Variation.PositionLabel(), u.Variation.Description,
			u.Variation.ColorCode, u.Variation.ColorName)))

	case u.Phase == domain.PhaseAwaitingPhoto:
		fmt.Println(styleInfo.Render(fmt.Sprintf("  clipboard: %q — waiting for the photo…", u.FileName)))

	case u.Phase == domain.PhaseAwaitingArticle && u.FilePath != "":
		fmt.Println(styleDone.Render(fmt.Sprintf("  ✓ tagged %s (%d/%d)", u.FilePath, u.Processed, u.Total)))
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
