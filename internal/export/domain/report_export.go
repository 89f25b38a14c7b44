package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	reportingdomain "sellerstats/internal/reporting/domain"
)

// ExportFormat représente le format d'export
type ExportFormat string

const (
	ExportFormatCSV     ExportFormat = "CSV"
	ExportFormatParquet ExportFormat = "Parquet"
	ExportFormatJSON    ExportFormat = "JSON"
)

// ExportJob représente un job d'export de rapports vendeurs
type ExportJob struct {
	id        uuid.UUID
	format    ExportFormat
	createdAt time.Time
}

// NewExportJob crée un nouveau job d'export avec validation
func NewExportJob(format ExportFormat) (*ExportJob, error) {
	if format != ExportFormatCSV && format != ExportFormatParquet && format != ExportFormatJSON {
		return nil, errors.New("invalid export format")
	}

	return &ExportJob{
		id:        uuid.New(),
		format:    format,
		createdAt: time.Now(),
	}, nil
}

// ID retourne l'identifiant du job
func (ej *ExportJob) ID() uuid.UUID {
	return ej.id
}

// Format retourne le format d'export
func (ej *ExportJob) Format() ExportFormat {
	return ej.format
}

// CreatedAt retourne la date de création
func (ej *ExportJob) CreatedAt() time.Time {
	return ej.createdAt
}

// ReportExportRow représente une ligne d'export de rapport vendeur
// Les top produits sont aplatis en "sku:quantité" séparés par des virgules
type ReportExportRow struct {
	SellerID    string  `json:"seller_id"`
	Name        string  `json:"name"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	SalesCount  int     `json:"sales_count"`
	TopProducts string  `json:"top_products"`
	Bonus       float64 `json:"bonus"`
}

// NewReportExportRow crée une ligne d'export à partir d'un rapport
func NewReportExportRow(report *reportingdomain.SellerReport) *ReportExportRow {
	return &ReportExportRow{
		SellerID:    report.SellerID(),
		Name:        report.Name(),
		Revenue:     report.Revenue(),
		Profit:      report.Profit(),
		SalesCount:  report.SalesCount(),
		TopProducts: flattenTopProducts(report.TopProducts()),
		Bonus:       report.Bonus(),
	}
}

// ToCSVRow convertit en tableau pour CSV
func (rer *ReportExportRow) ToCSVRow() []string {
	return []string{
		rer.SellerID,
		rer.Name,
		strconv.FormatFloat(rer.Revenue, 'f', 2, 64),
		strconv.FormatFloat(rer.Profit, 'f', 2, 64),
		strconv.Itoa(rer.SalesCount),
		rer.TopProducts,
		strconv.FormatFloat(rer.Bonus, 'f', 2, 64),
	}
}

// CSVHeaders retourne les en-têtes CSV
func CSVHeaders() []string {
	return []string{
		"seller_id",
		"name",
		"revenue",
		"profit",
		"sales_count",
		"top_products",
		"bonus",
	}
}

// flattenTopProducts aplatit le classement produits pour les formats tabulaires
func flattenTopProducts(products []reportingdomain.TopProduct) string {
	parts := make([]string, 0, len(products))
	for _, tp := range products {
		parts = append(parts, fmt.Sprintf("%s:%d", string(tp.SKU()), tp.Quantity()))
	}
	return strings.Join(parts, ",")
}

// ReportParquet - Structure optimisée pour export Parquet
type ReportParquet struct {
	SellerID    string  `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name        string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Revenue     float64 `parquet:"name=revenue, type=DOUBLE"`
	Profit      float64 `parquet:"name=profit, type=DOUBLE"`
	SalesCount  int32   `parquet:"name=sales_count, type=INT32"`
	TopProducts string  `parquet:"name=top_products, type=BYTE_ARRAY, convertedtype=UTF8"`
	Bonus       float64 `parquet:"name=bonus, type=DOUBLE"`
}

// ToParquet convertit une ligne d'export vers sa forme Parquet
func (rer *ReportExportRow) ToParquet() *ReportParquet {
	return &ReportParquet{
		SellerID:    rer.SellerID,
		Name:        rer.Name,
		Revenue:     rer.Revenue,
		Profit:      rer.Profit,
		SalesCount:  int32(rer.SalesCount),
		TopProducts: rer.TopProducts,
		Bonus:       rer.Bonus,
	}
}
