package application

import (
	"sort"

	catalogdomain "sellerstats/internal/catalog/domain"
	reportingdomain "sellerstats/internal/reporting/domain"
	salesdomain "sellerstats/internal/sales/domain"
	shareddomain "sellerstats/internal/shared/domain"
)

// ReportService calcule les rapports de performance vendeur en une passe,
// entièrement en mémoire: validation, indexation, accumulation, classement,
// primes et top produits, puis projection
//
// Le pipeline est synchrone et sans état partagé; des appels simultanés sont
// sûrs tant que chaque appel reçoit son propre Dataset
type ReportService struct{}

// NewReportService crée une nouvelle instance de ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// sellerAccumulator porte les compteurs d'un vendeur pendant la passe
// d'accumulation; jeté après la projection
type sellerAccumulator struct {
	id         salesdomain.SellerID
	name       string
	revenue    float64
	profit     float64
	salesCount int

	// quantités vendues par produit, avec l'ordre de première apparition
	// conservé pour désambiguïser les égalités du classement produits
	productsSold map[catalogdomain.SKU]int
	skuOrder     []catalogdomain.SKU
}

// ranked retourne la vue du vendeur exposée à la stratégie de bonus
func (acc *sellerAccumulator) ranked() reportingdomain.RankedSeller {
	return reportingdomain.NewRankedSeller(
		string(acc.id),
		acc.name,
		acc.revenue,
		acc.profit,
		acc.salesCount,
	)
}

// topProducts retourne les produits du vendeur triés par quantité décroissante
// (tri stable: les égalités gardent l'ordre de première vente), tronqués à limit
func (acc *sellerAccumulator) topProducts(limit int) []reportingdomain.TopProduct {
	entries := make([]reportingdomain.TopProduct, 0, len(acc.skuOrder))
	for _, sku := range acc.skuOrder {
		entries = append(entries, reportingdomain.NewTopProduct(sku, acc.productsSold[sku]))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity() > entries[j].Quantity()
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Analyze exécute le pipeline complet et retourne un rapport par vendeur,
// classé par marge décroissante (égalités stables sur l'ordre d'entrée)
func (s *ReportService) Analyze(
	dataset *salesdomain.Dataset,
	options AnalyzeOptions,
) ([]*reportingdomain.SellerReport, error) {
	// Étape 1: validation des entrées, avant toute mutation
	if err := validateInput(dataset, options); err != nil {
		return nil, err
	}

	// Étape 2: indexation des vendeurs et produits pour un accès O(1)
	// En cas d'identifiant dupliqué, la dernière occurrence gagne
	// (hypothèse documentée, pas un contrat garanti)
	accumulators := make([]*sellerAccumulator, 0, len(dataset.Sellers))
	sellerIndex := make(map[salesdomain.SellerID]*sellerAccumulator, len(dataset.Sellers))
	for _, seller := range dataset.Sellers {
		acc := &sellerAccumulator{
			id:           seller.ID(),
			name:         seller.FullName(),
			productsSold: make(map[catalogdomain.SKU]int),
		}
		accumulators = append(accumulators, acc)
		sellerIndex[seller.ID()] = acc
	}

	productIndex := make(map[catalogdomain.SKU]*catalogdomain.Product, len(dataset.Products))
	for _, product := range dataset.Products {
		productIndex[product.SKU()] = product
	}

	// Étape 3: accumulation par reçu puis par ligne de vente
	for _, record := range dataset.PurchaseRecords {
		acc, ok := sellerIndex[record.SellerID()]
		if !ok {
			return nil, &reportingdomain.UnknownSellerError{SellerID: record.SellerID()}
		}

		acc.salesCount++
		acc.revenue += record.TotalAmount().Amount()

		for _, item := range record.Items() {
			product, ok := productIndex[item.SKU()]
			if !ok {
				return nil, &reportingdomain.UnknownProductError{SKU: item.SKU()}
			}

			cost := product.CostFor(item.Quantity())
			revenue := options.Revenue.Revenue(item)
			acc.profit += revenue - cost

			if _, seen := acc.productsSold[item.SKU()]; !seen {
				acc.skuOrder = append(acc.skuOrder, item.SKU())
			}
			acc.productsSold[item.SKU()] += item.Quantity().Value()
		}
	}

	// Étape 4: classement par marge décroissante
	// Tri stable: les marges égales conservent l'ordre d'entrée des vendeurs
	sort.SliceStable(accumulators, func(i, j int) bool {
		return accumulators[i].profit > accumulators[j].profit
	})

	// Étapes 5 et 6: prime et top produits à la position finale, puis
	// projection en rapports immuables arrondis
	reports := make([]*reportingdomain.SellerReport, 0, len(accumulators))
	for index, acc := range accumulators {
		bonus := options.Bonus.Bonus(index, len(accumulators), acc.ranked())

		reports = append(reports, reportingdomain.NewSellerReport(
			string(acc.id),
			acc.name,
			shareddomain.Round2(acc.revenue),
			shareddomain.Round2(acc.profit),
			acc.salesCount,
			acc.topProducts(10),
			bonus,
		))
	}

	return reports, nil
}

// validateInput rejette les collections absentes ou vides et les options
// incomplètes; aucune mutation avant ce contrôle
func validateInput(dataset *salesdomain.Dataset, options AnalyzeOptions) error {
	if dataset == nil {
		return reportingdomain.NewValidationError("data", "dataset is missing")
	}
	if len(dataset.Sellers) == 0 {
		return reportingdomain.NewValidationError("sellers", "collection must be a non-empty sequence")
	}
	if len(dataset.Products) == 0 {
		return reportingdomain.NewValidationError("products", "collection must be a non-empty sequence")
	}
	if len(dataset.PurchaseRecords) == 0 {
		return reportingdomain.NewValidationError("purchase_records", "collection must be a non-empty sequence")
	}
	if options.Revenue == nil {
		return reportingdomain.NewValidationError("options.revenue_strategy", "revenue strategy is required")
	}
	if options.Bonus == nil {
		return reportingdomain.NewValidationError("options.bonus_strategy", "bonus strategy is required")
	}
	return nil
}
