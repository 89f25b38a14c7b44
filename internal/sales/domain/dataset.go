package domain

import catalogdomain "sellerstats/internal/catalog/domain"

// Dataset regroupe les trois collections d'entrée de l'analyse
// Les collections sont consommées telles quelles; la validation d'ensemble
// (collections non vides, stratégies présentes) appartient au pipeline
type Dataset struct {
	Sellers         []*Seller
	Products        []*catalogdomain.Product
	PurchaseRecords []*PurchaseRecord
}

// NewDataset crée un Dataset à partir des trois collections
func NewDataset(
	sellers []*Seller,
	products []*catalogdomain.Product,
	purchaseRecords []*PurchaseRecord,
) *Dataset {
	return &Dataset{
		Sellers:         sellers,
		Products:        products,
		PurchaseRecords: purchaseRecords,
	}
}
