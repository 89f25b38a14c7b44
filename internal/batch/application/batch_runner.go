package application

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	datasetapp "sellerstats/internal/dataset/application"
	reportingapp "sellerstats/internal/reporting/application"
	reportingdomain "sellerstats/internal/reporting/domain"
	sharedinfra "sellerstats/internal/shared/infrastructure"
)

// BatchResult porte le résultat d'analyse d'un fichier de dataset
type BatchResult struct {
	Path    string
	Reports []*reportingdomain.SellerReport
}

// BatchRunner analyse tous les datasets JSON d'un répertoire en parallèle
// Le pipeline lui-même reste séquentiel: le parallélisme porte sur des
// invocations indépendantes, chacune avec son propre dataset
type BatchRunner struct {
	loader      *datasetapp.JSONLoader
	reports     *reportingapp.CachedReportService
	workerCount int
}

// NewBatchRunner crée un nouveau runner de traitement par lot
func NewBatchRunner(
	loader *datasetapp.JSONLoader,
	reports *reportingapp.CachedReportService,
	workerCount int,
) *BatchRunner {
	if workerCount <= 0 {
		workerCount = 4
	}
	return &BatchRunner{
		loader:      loader,
		reports:     reports,
		workerCount: workerCount,
	}
}

// RunDir analyse chaque *.json du répertoire et retourne les résultats
// triés par chemin; la première erreur rencontrée fait échouer le lot
func (r *BatchRunner) RunDir(dir string, options reportingapp.AnalyzeOptions) ([]BatchResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files in %s", dir)
	}

	pool := sharedinfra.NewWorkerPool(r.workerCount)
	pool.Start()

	var mu sync.Mutex
	results := make([]BatchResult, 0, len(paths))

	for _, path := range paths {
		path := path
		if err := pool.Submit(func() error {
			dataset, err := r.loader.LoadFile(path)
			if err != nil {
				return err
			}

			reports, err := r.reports.Analyze(path, dataset, options)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}

			mu.Lock()
			results = append(results, BatchResult{Path: path, Reports: reports})
			mu.Unlock()
			return nil
		}); err != nil {
			return nil, err
		}
	}

	pool.Wait()
	if err := pool.DrainErrors(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}
