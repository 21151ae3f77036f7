package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mfvianna/sales-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console is an implementation of the ConsoleInterface on top of pterm.
type Console struct{}

// NewConsole creates a new Console.
func NewConsole() *Console {
	return &Console{}
}

// Predefined colors for consistent use across the CLI.
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo logs an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning logs a warning message.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError logs an error message.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess logs a success message.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle is an implementation of the StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status creates a status spinner with the given message.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table is an implementation of the TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable creates a new table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adds a column to the table.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayKPIPanel renders the scalar metrics in a boxed single-row table.
func (c *Console) DisplayKPIPanel(title string, kpis []types.KPI, dark bool) {
	labels := make([]string, len(kpis))
	values := make([]string, len(kpis))

	valueStyle := pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	if dark {
		valueStyle = pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)
	}
	for i, kpi := range kpis {
		labels[i] = kpi.Label
		values[i] = valueStyle.Sprint(kpi.Value)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(headerStyle(dark)).
		WithData(pterm.TableData{labels, values})
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(boxStyle(dark)).
		Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayBarChart renders horizontal bars for the grouped totals, with each
// group's share of the total. Scale is relative to the largest group.
func (c *Console) DisplayBarChart(title string, items []types.BarItem, dark bool) {
	maxValue := 0.0
	sum := 0.0
	for _, item := range items {
		if item.Value > maxValue {
			maxValue = item.Value
		}
		sum += item.Value
	}
	if maxValue <= 0 {
		pterm.Warning.Printfln("%s: all totals are $0.00", title)
		return
	}

	barStyle := pterm.FgBlue
	if dark {
		barStyle = pterm.FgLightBlue
	}

	tableData := pterm.TableData{
		{"", "Total Sales", "", "Share"},
	}
	for _, item := range items {
		barLength := int((item.Value / maxValue) * 40)
		bar := strings.Repeat("█", barLength)

		share := ""
		if sum > 0 {
			share = fmt.Sprintf("%.1f%%", (item.Value/sum)*100.0)
		}

		tableData = append(tableData, []string{
			item.Label,
			fmt.Sprintf("$%.2f", item.Value),
			barStyle.Sprint(bar),
			share,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(boxStyle(dark)).
		Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// PromptMultiSelect shows an interactive multi-select with everything from
// defaults preselected.
func (c *Console) PromptMultiSelect(label string, options []string, defaults []string) ([]string, error) {
	return pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultOptions(defaults).
		Show(label)
}

// PromptText shows a free-text input.
func (c *Console) PromptText(label string, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(label)
}

// PromptSelect shows a single-choice select.
func (c *Console) PromptSelect(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(label)
}

func headerStyle(dark bool) *pterm.Style {
	if dark {
		return pterm.NewStyle(pterm.FgLightCyan)
	}
	return pterm.NewStyle(pterm.FgCyan)
}

func boxStyle(dark bool) *pterm.Style {
	if dark {
		return pterm.NewStyle(pterm.FgLightCyan)
	}
	return pterm.NewStyle(pterm.FgCyan)
}
