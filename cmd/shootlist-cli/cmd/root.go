package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shootlist/internal/adapters/excel"
	"shootlist/internal/adapters/exiftool"
	"shootlist/internal/application/commands"
	"shootlist/internal/config"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

var (
	excelPath  string
	watchDir   string
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shootlist-cli",
	Short: "CLI for the photo-session article helper",
	Long: `shootlist-cli drives a studio photo session from the command line.

It loads the article catalog from an Excel workbook, publishes target
file names to the clipboard, watches the transfer folder for incoming
photos, and embeds each article's IPTC metadata into its photo.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if watchDir != "" {
			cfg.WatchDir = watchDir
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&excelPath, "excel", "e", "", "path to the article workbook")
	rootCmd.PersistentFlags().StringVarP(&watchDir, "watch", "w", "", "directory to watch for incoming photos")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
}

// loadCatalog loads the workbook given via --excel
func loadCatalog() (*domain.Catalog, error) {
	if excelPath == "" {
		return nil, fmt.Errorf("--excel is required")
	}
	cmd := commands.NewLoadCatalogCommand(excel.NewLoader(cfg.Columns), excelPath)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return nil, err
	}
	return result.Catalog, nil
}

// exiftoolWriter builds the metadata writer from the configured binary
func exiftoolWriter() ports.MetadataWriter {
	return exiftool.NewWriter(cfg.Exiftool)
}
