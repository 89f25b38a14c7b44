package application

import (
	"time"

	reportingdomain "sellerstats/internal/reporting/domain"
	salesdomain "sellerstats/internal/sales/domain"
	sharedinfra "sellerstats/internal/shared/infrastructure"
)

// CachedReportService mémoïse les rapports d'analyse par clé de dataset
// Le pipeline est déterministe et idempotent: pour une clé donnée, rejouer
// l'analyse produit un résultat identique, donc la mise en cache est sûre
// tant que l'appelant invalide la clé quand les données sources changent
type CachedReportService struct {
	service  *ReportService
	cache    sharedinfra.Cache
	cacheTTL time.Duration
}

// NewCachedReportService crée une nouvelle instance de CachedReportService
func NewCachedReportService(service *ReportService, cache sharedinfra.Cache) *CachedReportService {
	return &CachedReportService{
		service:  service,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
	}
}

// Analyze retourne les rapports pour la clé de dataset donnée, depuis le
// cache si possible, sinon via le pipeline complet
func (s *CachedReportService) Analyze(
	datasetKey string,
	dataset *salesdomain.Dataset,
	options AnalyzeOptions,
) ([]*reportingdomain.SellerReport, error) {
	cacheKey := s.buildCacheKey(datasetKey)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]*reportingdomain.SellerReport), nil
	}

	reports, err := s.service.Analyze(dataset, options)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, reports, s.cacheTTL)

	return reports, nil
}

// buildCacheKey construit la clé de cache d'un dataset
func (s *CachedReportService) buildCacheKey(datasetKey string) string {
	return sharedinfra.NewCacheKeyBuilder().
		Add("reports").
		Add(datasetKey).
		Build()
}

// InvalidateDataset invalide l'entrée de cache d'un dataset
func (s *CachedReportService) InvalidateDataset(datasetKey string) {
	s.cache.Delete(s.buildCacheKey(datasetKey))
}

// ClearCache vide tout le cache
func (s *CachedReportService) ClearCache() {
	s.cache.Clear()
}
