package types

// Config represents the application configuration that can be loaded from a file.
// Every field mirrors a CLI flag; flags set by the user win over the file.
type Config struct {
	File       string   `json:"file" yaml:"file" toml:"file"`
	Start      string   `json:"start" yaml:"start" toml:"start"`
	End        string   `json:"end" yaml:"end" toml:"end"`
	Regions    []string `json:"regions" yaml:"regions" toml:"regions"`
	Categories []string `json:"categories" yaml:"categories" toml:"categories"`
	Customers  []string `json:"customers" yaml:"customers" toml:"customers"`
	Search     string   `json:"search" yaml:"search" toml:"search"`
	Theme      string   `json:"theme" yaml:"theme" toml:"theme"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	TopN       int      `json:"top" yaml:"top" toml:"top"`
	MaxRows    int      `json:"max_rows" yaml:"max_rows" toml:"max_rows"`
}
