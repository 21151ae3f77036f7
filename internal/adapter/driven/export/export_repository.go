package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
	"github.com/mfvianna/sales-dashboard-go/internal/domain/repository"
)

// csvHeader is the export schema: the input schema plus the synthesized Country.
var csvHeader = []string{"Date", "Region", "Category", "Customer", "Product", "Quantity", "TotalSales", "Country"}

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new implementation of the ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the filtered rows as UTF-8 CSV. Re-parsing the file
// yields the same row count and TotalSales sum as the exported view.
func (r *ExportRepositoryImpl) ExportToCSV(records []entity.SaleRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Date.Format("2006-01-02"),
			record.Region,
			record.Category,
			record.Customer,
			record.Product,
			strconv.Itoa(record.Quantity),
			strconv.FormatFloat(record.TotalSales, 'f', -1, 64),
			record.Country,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// jsonReport is the JSON export payload: the selection that produced the
// view, the computed summary, and the rows themselves.
type jsonReport struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Selection   jsonSelection       `json:"selection"`
	Summary     entity.SalesSummary `json:"summary"`
	Rows        []entity.SaleRecord `json:"rows"`
}

type jsonSelection struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
	Customers  []string `json:"customers"`
	SearchTerm string   `json:"search_term,omitempty"`
	Theme      string   `json:"theme"`
}

func (r *ExportRepositoryImpl) ExportToJSON(
	records []entity.SaleRecord,
	summary entity.SalesSummary,
	selection entity.FilterSelection,
	filename, outputDir string,
) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	report := jsonReport{
		GeneratedAt: time.Now().UTC(),
		Selection: jsonSelection{
			Start:      selection.Start.Format("2006-01-02"),
			End:        selection.End.Format("2006-01-02"),
			Regions:    sortedSet(selection.Regions),
			Categories: sortedSet(selection.Categories),
			Customers:  sortedSet(selection.Customers),
			SearchTerm: selection.SearchTerm,
			Theme:      string(selection.Theme),
		},
		Summary: summary,
		Rows:    records,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(
	summary entity.SalesSummary,
	selection entity.FilterSelection,
	filename, outputDir string,
) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawGroupSection := func(title string, groups []entity.GroupTotal) {
		if len(groups) == 0 {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, group := range groups {
			pdf.CellFormat(140, 5, tr(group.Key), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 5, tr(fmt.Sprintf("$%.2f", group.Total)), "", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Sales Dashboard Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	period := fmt.Sprintf("  Period: %s to %s",
		selection.Start.Format("2006-01-02"), selection.End.Format("2006-01-02"))
	if selection.SearchTerm != "" {
		period += fmt.Sprintf("  |  Search: %q", selection.SearchTerm)
	}
	pdf.CellFormat(0, 8, tr(cleanRichTags(period)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// KPIs
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	avgOrder := "N/A"
	if !summary.Empty() {
		avgOrder = fmt.Sprintf("$%.2f", summary.AvgOrderValue)
	}
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for _, line := range []string{
		fmt.Sprintf("Total Sales: $%.2f", summary.TotalSales),
		fmt.Sprintf("Total Quantity: %d", summary.TotalQuantity),
		fmt.Sprintf("Avg. Order Value: %s", avgOrder),
		fmt.Sprintf("Orders: %d", summary.OrderCount),
		fmt.Sprintf("Unique Customers: %d", summary.UniqueCustomers),
	} {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	drawGroupSection("Monthly Sales Trend", summary.SalesByMonth)
	drawGroupSection("Sales by Region", summary.SalesByRegion)
	drawGroupSection("Sales by Category", summary.SalesByCategory)
	drawGroupSection("Top Products", summary.TopProducts)
	drawGroupSection("Top Customers", summary.TopCustomers)
	drawGroupSection("Sales by Country", summary.SalesByCountry)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Sales Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename creates a unique timestamped filename and ensures the
// output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regexes limpam formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags removes pterm formatting tags and ANSI sequences.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func sortedSet(set map[string]struct{}) []string {
	values := entity.SetValues(set)
	sort.Strings(values)
	return values
}
