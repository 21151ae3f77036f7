package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mfvianna/sales-dashboard-go/pkg/version"
)

// displayWelcomeBanner shows the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$            /$$                     /$$$$$$$                       /$$
         /$$__  $$          | $$                    | $$__  $$                     | $$
        | $$  \__/  /$$$$$$ | $$  /$$$$$$   /$$$$$$$| $$  \ $$  /$$$$$$   /$$$$$$$| $$$$$$$
        |  $$$$$$  |____  $$| $$ /$$__  $$ /$$_____/| $$  | $$ |____  $$ /$$_____/| $$__  $$
         \____  $$  /$$$$$$$| $$| $$$$$$$$|  $$$$$$ | $$  | $$  /$$$$$$$|  $$$$$$ | $$  \ $$
         /$$  \ $$ /$$__  $$| $$| $$_____/ \____  $$| $$  | $$ /$$__  $$ \____  $$| $$  | $$
        |  $$$$$$/|  $$$$$$$| $$|  $$$$$$$ /$$$$$$$/| $$$$$$$/|  $$$$$$$ /$$$$$$$/| $$  | $$
         \______/  \_______/|__/ \_______/|_______/ |_______/  \_______/|_______/ |__/  |__/
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Sales Dashboard CLI (v%s)", formattedVersion)))
}
