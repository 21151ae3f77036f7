package types

// CLIArgs represents the command-line arguments after config-file merging.
type CLIArgs struct {
	ConfigFile  string
	File        string
	Start       string
	End         string
	Regions     []string
	Categories  []string
	Customers   []string
	Search      string
	Theme       string
	Interactive bool
	ReportName  string
	ReportType  []string
	Dir         string
	TopN        int
	MaxRows     int
	NoBanner    bool
}
