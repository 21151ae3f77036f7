package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfvianna/sales-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Region,Category,Customer,Product,Quantity,TotalSales
2024-01-01,US,A,X,Widget,2,20
2024-02-01,EU,B,Y,Gadget,1,15.5
2024-03-10,APAC,A,Z,Gizmo,3,45
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadParsesRecords(t *testing.T) {
	repo := NewCSVRepository()
	path := writeDataset(t, sampleCSV)

	records, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "US", first.Region)
	assert.Equal(t, "A", first.Category)
	assert.Equal(t, "X", first.Customer)
	assert.Equal(t, "Widget", first.Product)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 20.0, first.TotalSales)
	assert.Equal(t, 15.5, records[1].TotalSales)
}

func TestLoadColumnOrderIsFree(t *testing.T) {
	repo := NewCSVRepository()
	path := writeDataset(t, `TotalSales,Product,customer,category,region,DATE,quantity
9.5,Widget,X,A,US,2024-01-01,4
`)

	records, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0].Product)
	assert.Equal(t, 4, records[0].Quantity)
	assert.Equal(t, 9.5, records[0].TotalSales)
}

func TestLoadSynthesizesCountryDeterministically(t *testing.T) {
	path := writeDataset(t, sampleCSV)

	first, err := NewCSVRepository().Load(context.Background(), path)
	require.NoError(t, err)
	second, err := NewCSVRepository().Load(context.Background(), path)
	require.NoError(t, err)

	for i := range first {
		assert.NotEmpty(t, first[i].Country)
		assert.Contains(t, countries, first[i].Country)
		// Fresh repositories (fresh caches) agree on every assignment.
		assert.Equal(t, first[i].Country, second[i].Country)
	}
}

func TestLoadKeepsExplicitCountryColumn(t *testing.T) {
	repo := NewCSVRepository()
	path := writeDataset(t, `Date,Region,Category,Customer,Product,Quantity,TotalSales,Country
2024-01-01,US,A,X,Widget,2,20,Peru
`)

	records, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Peru", records[0].Country)
}

func TestLoadMissingColumn(t *testing.T) {
	repo := NewCSVRepository()
	path := writeDataset(t, `Date,Region,Category,Customer,Product,Quantity
2024-01-01,US,A,X,Widget,2
`)

	_, err := repo.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "TotalSales"`)
}

func TestLoadErrors(t *testing.T) {
	repo := NewCSVRepository()
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "header only",
			content: "Date,Region,Category,Customer,Product,Quantity,TotalSales\n",
			errText: "no data rows",
		},
		{
			name: "bad date",
			content: `Date,Region,Category,Customer,Product,Quantity,TotalSales
not-a-date,US,A,X,Widget,2,20
`,
			errText: "invalid Date",
		},
		{
			name: "bad quantity",
			content: `Date,Region,Category,Customer,Product,Quantity,TotalSales
2024-01-01,US,A,X,Widget,two,20
`,
			errText: "invalid Quantity",
		},
		{
			name: "bad total",
			content: `Date,Region,Category,Customer,Product,Quantity,TotalSales
2024-01-01,US,A,X,Widget,2,twenty
`,
			errText: "invalid TotalSales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.content)
			_, err := repo.Load(ctx, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewCSVRepository()
	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading dataset file")
}

func TestLoadEmptySource(t *testing.T) {
	repo := NewCSVRepository()
	_, err := repo.Load(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrNoDatasetSource)
}

func TestLoadCachesUntilInvalidate(t *testing.T) {
	repo := NewCSVRepository()
	path := writeDataset(t, sampleCSV)
	ctx := context.Background()

	records, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	fingerprint := repo.Fingerprint(path)
	assert.NotEmpty(t, fingerprint)

	// Rewrite the file; the cached parse must survive until invalidation.
	require.NoError(t, os.WriteFile(path, []byte(`Date,Region,Category,Customer,Product,Quantity,TotalSales
2024-05-05,US,A,X,Widget,1,1
`), 0644))

	cached, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Len(t, cached, 3)
	assert.Equal(t, fingerprint, repo.Fingerprint(path))

	repo.Invalidate(path)
	assert.Empty(t, repo.Fingerprint(path))

	reloaded, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Len(t, reloaded, 1)
	assert.NotEqual(t, fingerprint, repo.Fingerprint(path))
}

func TestSplitS3URI(t *testing.T) {
	bucket, key, err := splitS3URI("s3://my-bucket/datasets/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "datasets/sales.csv", key)

	for _, uri := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, _, err := splitS3URI(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}
