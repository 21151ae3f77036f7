package cli

import (
	"context"
	"path/filepath"

	"github.com/mfvianna/sales-dashboard-go/internal/application/usecase"
	"github.com/mfvianna/sales-dashboard-go/internal/shared/types"
	"github.com/mfvianna/sales-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "salesdash",
		Short:   "Interactive Sales Dashboard CLI",
		Long:    "Loads a sales dataset (local CSV or s3://bucket/key), applies filters, and renders KPIs, charts and tables in the terminal. Each run is one interaction; filters come from flags, a config file or interactive prompts.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Sales Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("file", "f", "", "Sales dataset: local CSV path or s3://bucket/key")
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("start", "", "Start of the date range, YYYY-MM-DD (default: dataset minimum)")
	rootCmd.PersistentFlags().String("end", "", "End of the date range, YYYY-MM-DD (default: dataset maximum)")
	rootCmd.PersistentFlags().StringSliceP("regions", "r", nil, "Regions to include, comma-separated (default: all)")
	rootCmd.PersistentFlags().StringSliceP("categories", "c", nil, "Categories to include, comma-separated (default: all)")
	rootCmd.PersistentFlags().StringSliceP("customers", "u", nil, "Customers to include, comma-separated (default: all)")
	rootCmd.PersistentFlags().StringP("search", "s", "", "Search term matched against Product or Customer")
	rootCmd.PersistentFlags().String("theme", "light", "Terminal theme: light or dark")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Pick filters through interactive prompts")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().IntP("top", "t", 10, "Size of the top products/customers rankings")
	rootCmd.PersistentFlags().Int("max-rows", 20, "Maximum rows shown in the data table preview")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Suppress the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	file, _ := flags.GetString("file")
	configFile, _ := flags.GetString("config-file")
	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	regions, _ := flags.GetStringSlice("regions")
	categories, _ := flags.GetStringSlice("categories")
	customers, _ := flags.GetStringSlice("customers")
	search, _ := flags.GetString("search")
	theme, _ := flags.GetString("theme")
	interactive, _ := flags.GetBool("interactive")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	topN, _ := flags.GetInt("top")
	maxRows, _ := flags.GetInt("max-rows")
	noBanner, _ := flags.GetBool("no-banner")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	// Flags com valor default contam como "não definidos" para o merge do
	// arquivo de configuração.
	if !flags.Changed("theme") {
		theme = ""
	}
	if !flags.Changed("report-type") {
		reportType = nil
	}
	if !flags.Changed("top") {
		topN = 0
	}
	if !flags.Changed("max-rows") {
		maxRows = 0
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		File:        file,
		Start:       start,
		End:         end,
		Regions:     regions,
		Categories:  categories,
		Customers:   customers,
		Search:      search,
		Theme:       theme,
		Interactive: interactive,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		TopN:        topN,
		MaxRows:     maxRows,
		NoBanner:    noBanner,
	}

	return args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner(app.version)
	}

	go version.CheckLatestVersion(app.version)

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
