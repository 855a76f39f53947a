package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/config"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/domain"
	"github.com/Zaynmiraj/nim-react-toastify/pkg/scan"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List source files that import the provider",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusWorkers int

func init() {
	statusCmd.Flags().IntVar(&statusWorkers, "workers", 0, "concurrent file reads (0 = number of CPUs)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	provider := cfg.Provider
	if provider == "" {
		provider = domain.DefaultProvider
	}

	result, err := scan.Project(cmd.Context(), projectDir, provider, scan.Options{
		Workers:      statusWorkers,
		SkipPatterns: cfg.Skip,
	})
	if err != nil {
		return err
	}
	logger.Debug("scan finished",
		zap.Int("filesScanned", result.FilesScanned),
		zap.Int("importers", len(result.Importers)))

	fmt.Fprintf(out, "%s%d source files\n", labelStyle.Render("scanned:   "), result.FilesScanned)
	if len(result.Importers) == 0 {
		fmt.Fprintln(out, skipStyle.Render(provider+" is not imported anywhere — run `toastify inject`"))
		return nil
	}
	fmt.Fprintf(out, "%s%d files import %s\n", labelStyle.Render("importers: "), len(result.Importers), provider)
	for _, path := range result.Importers {
		fmt.Fprintf(out, "  %s\n", path)
	}
	return nil
}
