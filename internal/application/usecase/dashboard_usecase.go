package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
	"github.com/mfvianna/sales-dashboard-go/internal/domain/repository"
	"github.com/mfvianna/sales-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// RunDashboard executes one full interaction: load, filter, aggregate, render
// and, when requested, export.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.mergeConfigFile(args); err != nil {
		return err
	}
	applyDefaults(args)

	status := uc.console.Status("Loading dataset...")

	records, err := uc.datasetRepo.Load(ctx, args.File)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Applying filters...")

	selection, err := uc.buildSelection(records, args)
	if err != nil {
		status.Stop()
		return err
	}

	if args.Interactive {
		// Prompts precisam do terminal livre, então paramos o spinner antes.
		status.Stop()
		selection, err = uc.promptSelection(records, selection)
		if err != nil {
			return err
		}
		status = uc.console.Status("Applying filters...")
	}

	filtered := FilterRecords(records, selection)
	summary := Summarize(filtered, args.TopN)
	status.Stop()

	uc.renderDashboard(summary, filtered, selection, args)
	uc.exportReports(filtered, summary, selection, args)
	return nil
}

// mergeConfigFile fills any argument the user left unset from the config file.
func (uc *DashboardUseCase) mergeConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.File == "" {
		args.File = cfg.File
	}
	if args.Start == "" {
		args.Start = cfg.Start
	}
	if args.End == "" {
		args.End = cfg.End
	}
	if len(args.Regions) == 0 {
		args.Regions = cfg.Regions
	}
	if len(args.Categories) == 0 {
		args.Categories = cfg.Categories
	}
	if len(args.Customers) == 0 {
		args.Customers = cfg.Customers
	}
	if args.Search == "" {
		args.Search = cfg.Search
	}
	if args.Theme == "" {
		args.Theme = cfg.Theme
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if cfg.TopN > 0 && args.TopN == 0 {
		args.TopN = cfg.TopN
	}
	if cfg.MaxRows > 0 && args.MaxRows == 0 {
		args.MaxRows = cfg.MaxRows
	}
	return nil
}

// applyDefaults restores the built-in defaults for anything neither the user
// nor the config file provided.
func applyDefaults(args *types.CLIArgs) {
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	if args.TopN == 0 {
		args.TopN = 10
	}
	if args.MaxRows == 0 {
		args.MaxRows = 20
	}
}

// buildSelection turns the CLI arguments into a FilterSelection, defaulting
// every unset control to the dashboard's opening state (full date range, all
// values selected, light theme).
func (uc *DashboardUseCase) buildSelection(records []entity.SaleRecord, args *types.CLIArgs) (entity.FilterSelection, error) {
	selection := DefaultSelection(records)

	if args.Start != "" {
		start, err := time.Parse("2006-01-02", args.Start)
		if err != nil {
			return entity.FilterSelection{}, fmt.Errorf("invalid --start date %q: %w", args.Start, err)
		}
		selection.Start = start
	}
	if args.End != "" {
		end, err := time.Parse("2006-01-02", args.End)
		if err != nil {
			return entity.FilterSelection{}, fmt.Errorf("invalid --end date %q: %w", args.End, err)
		}
		selection.End = end
	}

	if len(args.Regions) > 0 {
		selection.Regions = entity.ValueSet(args.Regions)
	}
	if len(args.Categories) > 0 {
		selection.Categories = entity.ValueSet(args.Categories)
	}
	if len(args.Customers) > 0 {
		selection.Customers = entity.ValueSet(args.Customers)
	}
	selection.SearchTerm = args.Search

	switch args.Theme {
	case "", string(entity.ThemeLight):
		selection.Theme = entity.ThemeLight
	case string(entity.ThemeDark):
		selection.Theme = entity.ThemeDark
	default:
		return entity.FilterSelection{}, types.ErrInvalidTheme
	}
	return selection, nil
}

// promptSelection walks the user through the sidebar controls interactively.
func (uc *DashboardUseCase) promptSelection(records []entity.SaleRecord, selection entity.FilterSelection) (entity.FilterSelection, error) {
	regions, err := uc.console.PromptMultiSelect("Select Region",
		DistinctValues(records, func(r entity.SaleRecord) string { return r.Region }),
		sortedValues(selection.Regions))
	if err != nil {
		return entity.FilterSelection{}, err
	}
	selection.Regions = entity.ValueSet(regions)

	categories, err := uc.console.PromptMultiSelect("Select Category",
		DistinctValues(records, func(r entity.SaleRecord) string { return r.Category }),
		sortedValues(selection.Categories))
	if err != nil {
		return entity.FilterSelection{}, err
	}
	selection.Categories = entity.ValueSet(categories)

	customers, err := uc.console.PromptMultiSelect("Select Customer",
		DistinctValues(records, func(r entity.SaleRecord) string { return r.Customer }),
		sortedValues(selection.Customers))
	if err != nil {
		return entity.FilterSelection{}, err
	}
	selection.Customers = entity.ValueSet(customers)

	term, err := uc.console.PromptText("Search by Product or Customer", selection.SearchTerm)
	if err != nil {
		return entity.FilterSelection{}, err
	}
	selection.SearchTerm = term

	theme, err := uc.console.PromptSelect("Select Theme",
		[]string{string(entity.ThemeLight), string(entity.ThemeDark)})
	if err != nil {
		return entity.FilterSelection{}, err
	}
	selection.Theme = entity.Theme(theme)

	return selection, nil
}

// renderDashboard prints KPIs, charts and tables for the filtered view.
// Charts and tables are skipped entirely when the view is empty.
func (uc *DashboardUseCase) renderDashboard(
	summary entity.SalesSummary,
	filtered []entity.SaleRecord,
	selection entity.FilterSelection,
	args *types.CLIArgs,
) {
	dark := selection.Theme == entity.ThemeDark

	avgOrder := "N/A"
	if !summary.Empty() {
		avgOrder = fmt.Sprintf("$%.2f", summary.AvgOrderValue)
	}
	uc.console.DisplayKPIPanel("Sales Dashboard", []types.KPI{
		{Label: "Total Sales", Value: fmt.Sprintf("$%.2f", summary.TotalSales)},
		{Label: "Total Quantity", Value: fmt.Sprintf("%d", summary.TotalQuantity)},
		{Label: "Avg. Order Value", Value: avgOrder},
		{Label: "Orders", Value: fmt.Sprintf("%d", summary.OrderCount)},
		{Label: "Unique Customers", Value: fmt.Sprintf("%d", summary.UniqueCustomers)},
	}, dark)

	if summary.Empty() {
		uc.console.LogWarning("No rows match the current filters; charts and tables skipped.")
		return
	}

	uc.console.DisplayBarChart("Sales Over Time", toBarItems(summary.SalesByDay), dark)
	uc.console.DisplayBarChart("Monthly Sales Trend", toBarItems(summary.SalesByMonth), dark)
	uc.console.DisplayBarChart("Sales by Region", toBarItems(summary.SalesByRegion), dark)
	uc.console.DisplayBarChart("Sales by Category", toBarItems(summary.SalesByCategory), dark)
	uc.console.DisplayBarChart(fmt.Sprintf("Top %d Products", len(summary.TopProducts)), toBarItems(summary.TopProducts), dark)
	uc.console.DisplayBarChart(fmt.Sprintf("Top %d Customers", len(summary.TopCustomers)), toBarItems(summary.TopCustomers), dark)
	uc.console.DisplayBarChart("Sales by Country", toBarItems(summary.SalesByCountry), dark)

	uc.renderSummaryTables(summary)
	uc.renderDataTable(filtered, args.MaxRows)
}

// renderSummaryTables prints the by-region and by-category summary tables.
func (uc *DashboardUseCase) renderSummaryTables(summary entity.SalesSummary) {
	uc.console.Println("Sales Summary by Region and Category")

	regionTable := uc.console.CreateTable()
	regionTable.AddColumn("Region")
	regionTable.AddColumn("Total Sales")
	for _, group := range summary.SalesByRegion {
		regionTable.AddRow(group.Key, fmt.Sprintf("$%.2f", group.Total))
	}
	uc.console.Print(regionTable.Render())

	categoryTable := uc.console.CreateTable()
	categoryTable.AddColumn("Category")
	categoryTable.AddColumn("Total Sales")
	for _, group := range summary.SalesByCategory {
		categoryTable.AddRow(group.Key, fmt.Sprintf("$%.2f", group.Total))
	}
	uc.console.Print(categoryTable.Render())
}

// renderDataTable prints a preview of the filtered rows, capped at maxRows.
func (uc *DashboardUseCase) renderDataTable(filtered []entity.SaleRecord, maxRows int) {
	uc.console.Println("Sales Data")

	table := uc.console.CreateTable()
	for _, column := range []string{"Date", "Region", "Category", "Customer", "Product", "Quantity", "Total Sales", "Country"} {
		table.AddColumn(column)
	}

	shown := len(filtered)
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}
	for _, record := range filtered[:shown] {
		table.AddRow(
			record.Date.Format("2006-01-02"),
			record.Region,
			record.Category,
			record.Customer,
			record.Product,
			fmt.Sprintf("%d", record.Quantity),
			fmt.Sprintf("$%.2f", record.TotalSales),
			record.Country,
		)
	}
	uc.console.Print(table.Render())

	if shown < len(filtered) {
		uc.console.Printf("... and %d more rows (raise --max-rows to see them)\n", len(filtered)-shown)
	}
}

// exportReports writes the requested report files for the current view.
func (uc *DashboardUseCase) exportReports(
	filtered []entity.SaleRecord,
	summary entity.SalesSummary,
	selection entity.FilterSelection,
	args *types.CLIArgs,
) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(filtered, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(filtered, summary, selection, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(summary, selection, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (want csv, json or pdf)", reportType)
		}
	}
}

func toBarItems(groups []entity.GroupTotal) []types.BarItem {
	items := make([]types.BarItem, len(groups))
	for i, group := range groups {
		items[i] = types.BarItem{Label: group.Key, Value: group.Total}
	}
	return items
}

func sortedValues(set map[string]struct{}) []string {
	values := entity.SetValues(set)
	sort.Strings(values)
	return values
}
