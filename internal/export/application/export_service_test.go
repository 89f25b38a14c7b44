package application

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "sellerstats/internal/catalog/domain"
	"sellerstats/internal/export/domain"
	reportingdomain "sellerstats/internal/reporting/domain"
)

func sampleReports() []*reportingdomain.SellerReport {
	return []*reportingdomain.SellerReport{
		reportingdomain.NewSellerReport(
			"seller_1", "Alice Martin", 200, 140, 1,
			[]reportingdomain.TopProduct{
				reportingdomain.NewTopProduct(catalogdomain.SKU("SKU-1"), 2),
			},
			21,
		),
		reportingdomain.NewSellerReport(
			"seller_2", "Bruno Lefebvre", 75, 37.5, 1,
			[]reportingdomain.TopProduct{
				reportingdomain.NewTopProduct(catalogdomain.SKU("SKU-2"), 3),
				reportingdomain.NewTopProduct(catalogdomain.SKU("SKU-1"), 1),
			},
			0,
		),
	}
}

// ========================================
// Tests: ExportJob
// ========================================

func TestNewExportJob_ValidFormats(t *testing.T) {
	for _, format := range []domain.ExportFormat{
		domain.ExportFormatCSV,
		domain.ExportFormatParquet,
		domain.ExportFormatJSON,
	} {
		job, err := domain.NewExportJob(format)
		require.NoError(t, err)
		assert.Equal(t, format, job.Format())
		assert.NotZero(t, job.ID())
	}
}

func TestNewExportJob_InvalidFormat(t *testing.T) {
	_, err := domain.NewExportJob(domain.ExportFormat("XML"))
	assert.Error(t, err)
}

// ========================================
// Tests: export CSV
// ========================================

func TestExportService_CSV(t *testing.T) {
	service := NewExportService()

	data, err := service.ExportCSV(sampleReports())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.CSVHeaders(), records[0])
	assert.Equal(t, []string{"seller_1", "Alice Martin", "200.00", "140.00", "1", "SKU-1:2", "21.00"}, records[1])
	assert.Equal(t, "SKU-2:3,SKU-1:1", records[2][5])
}

func TestExportService_CSV_EmptyReports(t *testing.T) {
	service := NewExportService()

	data, err := service.ExportCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CSVHeaders(), records[0])
}

// ========================================
// Tests: export JSON
// ========================================

func TestExportService_JSON(t *testing.T) {
	service := NewExportService()

	data, err := service.ExportJSON(sampleReports())
	require.NoError(t, err)

	var rows []domain.ReportExportRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "seller_1", rows[0].SellerID)
	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, "SKU-1:2", rows[0].TopProducts)
	assert.Equal(t, 0.0, rows[1].Bonus)
}

// ========================================
// Tests: export Parquet
// ========================================

func TestExportService_Parquet(t *testing.T) {
	service := NewExportService()

	data, err := service.ExportParquet(sampleReports())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// Fichier Parquet valide: magic "PAR1" en tête et en queue
	assert.Equal(t, "PAR1", string(data[:4]))
	assert.Equal(t, "PAR1", string(data[len(data)-4:]))
}

// ========================================
// Tests: dispatch par format
// ========================================

func TestExportService_Export_DispatchesOnFormat(t *testing.T) {
	service := NewExportService()
	reports := sampleReports()

	for _, format := range []domain.ExportFormat{
		domain.ExportFormatCSV,
		domain.ExportFormatParquet,
		domain.ExportFormatJSON,
	} {
		job, err := domain.NewExportJob(format)
		require.NoError(t, err)

		data, err := service.Export(job, reports)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

// ========================================
// Benchmark: export CSV
// ========================================

func BenchmarkExportService_CSV(b *testing.B) {
	service := NewExportService()
	reports := sampleReports()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = service.ExportCSV(reports)
	}
}
