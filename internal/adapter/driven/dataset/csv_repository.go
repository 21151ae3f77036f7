package dataset

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
	"github.com/mfvianna/sales-dashboard-go/internal/domain/repository"
	"github.com/mfvianna/sales-dashboard-go/internal/shared/types"
)

// Required dataset columns, matched case-insensitively against the header.
var requiredColumns = []string{"Date", "Region", "Category", "Customer", "Product", "Quantity", "TotalSales"}

// countries is the fixed demo list used when the dataset has no Country column.
var countries = []string{
	"United States", "India", "Germany", "Brazil", "Australia", "Canada", "United Kingdom",
}

// Date layouts accepted for the Date column, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006/01/02", time.RFC3339}

// CSVRepository loads a sales dataset from a local file or an s3:// URI and
// memoizes the parsed records per source until Invalidate is called.
type CSVRepository struct {
	mu    sync.Mutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	records     []entity.SaleRecord
	fingerprint string
}

// NewCSVRepository creates a new dataset repository.
func NewCSVRepository() *CSVRepository {
	return &CSVRepository{cache: make(map[string]*cacheEntry)}
}

var _ repository.DatasetRepository = (*CSVRepository)(nil)

// Load returns the parsed records for source, reading and parsing it only on
// the first call per source (or after Invalidate).
func (r *CSVRepository) Load(ctx context.Context, source string) ([]entity.SaleRecord, error) {
	if source == "" {
		return nil, types.ErrNoDatasetSource
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.cache[source]; ok {
		return entry.records, nil
	}

	data, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	records, err := parseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", source, err)
	}

	sum := sha256.Sum256(data)
	r.cache[source] = &cacheEntry{
		records:     records,
		fingerprint: hex.EncodeToString(sum[:]),
	}
	return records, nil
}

// Fingerprint returns the content hash of the cached dataset, or "".
func (r *CSVRepository) Fingerprint(source string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.cache[source]; ok {
		return entry.fingerprint
	}
	return ""
}

// Invalidate drops the cached entry for source.
func (r *CSVRepository) Invalidate(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, source)
}

// readSource reads the raw dataset bytes from a local path or an S3 URI.
func readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		return readS3Object(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}
	return data, nil
}

// parseRecords parses the CSV payload into sale records. The header row is
// required; column order is free. A row with an unparseable date, quantity or
// total is a fatal parse error (the dashboard has no partial-load mode).
func parseRecords(data []byte) ([]entity.SaleRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, types.ErrEmptyDataset
	}

	index, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 1 {
		return nil, types.ErrEmptyDataset
	}

	records := make([]entity.SaleRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseRow(row, index, i)
		if err != nil {
			// Linhas de dados contam a partir de 1, logo após o cabeçalho.
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// columnIndex maps each known column to its position in the header, -1 when absent.
type columnIndex struct {
	date, region, category, customer, product, quantity, totalSales, country int
}

func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := positions[strings.ToLower(name)]; !ok {
			return columnIndex{}, fmt.Errorf("dataset is missing required column %q", name)
		}
	}

	lookup := func(name string) int {
		if i, ok := positions[name]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		date:       lookup("date"),
		region:     lookup("region"),
		category:   lookup("category"),
		customer:   lookup("customer"),
		product:    lookup("product"),
		quantity:   lookup("quantity"),
		totalSales: lookup("totalsales"),
		country:    lookup("country"),
	}, nil
}

func parseRow(row []string, index columnIndex, rowNum int) (entity.SaleRecord, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := parseDate(field(index.date))
	if err != nil {
		return entity.SaleRecord{}, err
	}

	quantity, err := strconv.Atoi(field(index.quantity))
	if err != nil {
		return entity.SaleRecord{}, fmt.Errorf("invalid Quantity %q", field(index.quantity))
	}

	total, err := strconv.ParseFloat(field(index.totalSales), 64)
	if err != nil {
		return entity.SaleRecord{}, fmt.Errorf("invalid TotalSales %q", field(index.totalSales))
	}

	record := entity.SaleRecord{
		Date:       date,
		Region:     field(index.region),
		Category:   field(index.category),
		Customer:   field(index.customer),
		Product:    field(index.product),
		Quantity:   quantity,
		TotalSales: total,
	}

	record.Country = field(index.country)
	if record.Country == "" {
		record.Country = synthesizeCountry(rowNum, record)
	}
	return record, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid Date %q", value)
}

// synthesizeCountry assigns a demo country deterministically. An FNV-1a hash
// of the stable row key replaces the unseeded per-row randomization, so that
// repeated loads of the same file always agree on the assignment.
func synthesizeCountry(rowNum int, record entity.SaleRecord) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%s", rowNum, record.Date.Format("2006-01-02"), record.Customer, record.Product)
	return countries[h.Sum64()%uint64(len(countries))]
}
