package application

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"sellerstats/internal/export/domain"
	reportingdomain "sellerstats/internal/reporting/domain"
)

// ExportService génère les exports de rapports vendeurs entièrement en
// mémoire, sans écriture disque
type ExportService struct {
	batchSize int
}

// NewExportService crée une nouvelle instance de ExportService
func NewExportService() *ExportService {
	return &ExportService{
		batchSize: 1000,
	}
}

// Export génère l'export des rapports dans le format du job
func (s *ExportService) Export(job *domain.ExportJob, reports []*reportingdomain.SellerReport) ([]byte, error) {
	switch job.Format() {
	case domain.ExportFormatCSV:
		return s.ExportCSV(reports)
	case domain.ExportFormatParquet:
		return s.ExportParquet(reports)
	case domain.ExportFormatJSON:
		return s.ExportJSON(reports)
	default:
		return nil, fmt.Errorf("unsupported export format %q", job.Format())
	}
}

// ExportCSV génère un CSV en mémoire, une ligne par vendeur dans l'ordre du
// classement
func (s *ExportService) ExportCSV(reports []*reportingdomain.SellerReport) ([]byte, error) {
	// Buffer pré-alloué pour éviter les réallocations successives
	buf := bytes.NewBuffer(make([]byte, 0, 64*1024))
	w := csv.NewWriter(buf)

	if err := w.Write(domain.CSVHeaders()); err != nil {
		return nil, err
	}

	for i, report := range reports {
		row := domain.NewReportExportRow(report)
		if err := w.Write(row.ToCSVRow()); err != nil {
			return nil, err
		}

		// Flush périodique pour limiter la pression mémoire du writer
		if (i+1)%s.batchSize == 0 {
			w.Flush()
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportParquet génère un fichier Parquet en mémoire (compression Snappy)
func (s *ExportService) ExportParquet(reports []*reportingdomain.SellerReport) ([]byte, error) {
	fw := buffer.NewBufferFile()

	pw, err := writer.NewParquetWriter(fw, new(domain.ReportParquet), 2)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, report := range reports {
		row := domain.NewReportExportRow(report)
		if err := pw.Write(row.ToParquet()); err != nil {
			return nil, fmt.Errorf("write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}

	return fw.Bytes(), nil
}

// ExportJSON génère la sortie JSON des rapports
func (s *ExportService) ExportJSON(reports []*reportingdomain.SellerReport) ([]byte, error) {
	rows := make([]*domain.ReportExportRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, domain.NewReportExportRow(report))
	}

	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
