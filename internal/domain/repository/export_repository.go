package repository

import (
	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(records []entity.SaleRecord, filename string, outputDir string) (string, error)
	ExportToJSON(records []entity.SaleRecord, summary entity.SalesSummary, selection entity.FilterSelection, filename string, outputDir string) (string, error)
	ExportToPDF(summary entity.SalesSummary, selection entity.FilterSelection, filename string, outputDir string) (string, error)
}
