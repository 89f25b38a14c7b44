package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"sellerstats/database"
	batchapp "sellerstats/internal/batch/application"
	datasetapp "sellerstats/internal/dataset/application"
	datasetinfra "sellerstats/internal/dataset/infrastructure"
	exportapp "sellerstats/internal/export/application"
	exportdomain "sellerstats/internal/export/domain"
	reportingapp "sellerstats/internal/reporting/application"
	reportingdomain "sellerstats/internal/reporting/domain"
	sharedinfra "sellerstats/internal/shared/infrastructure"
)

func main() {
	input := flag.String("input", "", "fichier JSON ou répertoire de datasets (vide: lecture Postgres)")
	format := flag.String("format", "table", "format de sortie: table, json, csv, parquet")
	out := flag.String("out", "", "fichier de sortie (vide: stdout)")
	workers := flag.Int("workers", 4, "nombre de workers pour le traitement par lot")
	flag.Parse()

	// Variables d'environnement locales (connexion Postgres)
	_ = godotenv.Load()

	options := reportingapp.DefaultAnalyzeOptions()
	service := reportingapp.NewReportService()

	switch {
	case *input == "":
		runFromDatabase(service, options, *format, *out)
	case isDir(*input):
		runBatch(service, options, *input, *format, *out, *workers)
	default:
		runFile(service, options, *input, *format, *out)
	}
}

// runFromDatabase charge le dataset depuis Postgres puis analyse
func runFromDatabase(service *reportingapp.ReportService, options reportingapp.AnalyzeOptions, format, out string) {
	if err := database.Init(connStrFromEnv()); err != nil {
		log.Fatal("connexion Postgres: ", err)
	}
	defer database.Close()

	repo := datasetinfra.NewDatasetQueryRepository(database.DB)
	dataset, err := repo.LoadDataset()
	if err != nil {
		log.Fatal("chargement du dataset: ", err)
	}

	reports, err := service.Analyze(dataset, options)
	if err != nil {
		log.Fatal("analyse: ", err)
	}

	if err := render(reports, format, out); err != nil {
		log.Fatal(err)
	}
}

// runFile analyse un fichier de dataset unique
func runFile(service *reportingapp.ReportService, options reportingapp.AnalyzeOptions, path, format, out string) {
	dataset, err := datasetapp.NewJSONLoader().LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	reports, err := service.Analyze(dataset, options)
	if err != nil {
		log.Fatal("analyse: ", err)
	}

	if err := render(reports, format, out); err != nil {
		log.Fatal(err)
	}
}

// runBatch analyse tous les datasets d'un répertoire en parallèle
func runBatch(service *reportingapp.ReportService, options reportingapp.AnalyzeOptions, dir, format, out string, workers int) {
	cached := reportingapp.NewCachedReportService(service, sharedinfra.NewShardedCache(16))
	runner := batchapp.NewBatchRunner(datasetapp.NewJSONLoader(), cached, workers)

	results, err := runner.RunDir(dir, options)
	if err != nil {
		log.Fatal("traitement par lot: ", err)
	}

	for _, result := range results {
		fmt.Printf("=== %s ===\n", result.Path)
		if err := render(result.Reports, format, out); err != nil {
			log.Fatal(err)
		}
	}
}

// render écrit les rapports dans le format demandé
func render(reports []*reportingdomain.SellerReport, format, out string) error {
	if format == "table" {
		printTable(reports)
		return nil
	}

	job, err := exportdomain.NewExportJob(exportFormat(format))
	if err != nil {
		return fmt.Errorf("format %q: %w", format, err)
	}

	data, err := exportapp.NewExportService().Export(job, reports)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	if out == "" {
		if job.Format() == exportdomain.ExportFormatParquet {
			return fmt.Errorf("l'export parquet requiert -out")
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

// printTable affiche le classement des vendeurs sur la sortie standard
func printTable(reports []*reportingdomain.SellerReport) {
	fmt.Printf("%-4s %-12s %-24s %12s %12s %8s %10s\n",
		"#", "ID", "Vendeur", "CA", "Marge", "Ventes", "Prime")
	for i, report := range reports {
		fmt.Printf("%-4d %-12s %-24s %12.2f %12.2f %8d %10.2f\n",
			i+1,
			report.SellerID(),
			report.Name(),
			report.Revenue(),
			report.Profit(),
			report.SalesCount(),
			report.Bonus(),
		)
	}
}

func exportFormat(format string) exportdomain.ExportFormat {
	switch format {
	case "csv":
		return exportdomain.ExportFormatCSV
	case "parquet":
		return exportdomain.ExportFormatParquet
	case "json":
		return exportdomain.ExportFormatJSON
	default:
		return exportdomain.ExportFormat(format)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// connStrFromEnv construit la connection string Postgres depuis l'environnement
func connStrFromEnv() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "sellerstats"),
		getEnv("DB_PASSWORD", "sellerstats"),
		getEnv("DB_NAME", "sellerstats"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
