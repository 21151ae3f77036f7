package types

// ConsoleInterface defines the terminal output surface used by the use cases.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayKPIPanel(title string, kpis []KPI, dark bool)
	DisplayBarChart(title string, items []BarItem, dark bool)

	// Interactive prompts (the CLI stand-in for sidebar controls).
	PromptMultiSelect(label string, options []string, defaults []string) ([]string, error)
	PromptText(label string, defaultValue string) (string, error)
	PromptSelect(label string, options []string) (string, error)
}

// StatusHandle is an interface for updating a status spinner.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface defines the interface for building and rendering tables.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// KPI is one scalar metric for the KPI panel.
type KPI struct {
	Label string
	Value string
}

// BarItem is one labeled value for a bar chart, mirroring entity.GroupTotal
// without making the console depend on the domain package.
type BarItem struct {
	Label string
	Value float64
}
