package domain

import (
	"errors"

	"sellerstats/internal/shared/domain"
)

// SKU représente l'identifiant unique d'un produit au catalogue
type SKU string

// Product représente un produit du catalogue
// Seul le prix d'achat est exploité par le calcul de marge; le reste de la
// fiche produit (nom, catégorie) est conservé pour les exports
type Product struct {
	sku           SKU
	name          string
	category      string
	purchasePrice domain.Money
}

// NewProduct crée une nouvelle instance de Product avec validation
func NewProduct(
	sku SKU,
	name string,
	category string,
	purchasePrice domain.Money,
) (*Product, error) {
	if sku == "" {
		return nil, errors.New("product sku cannot be empty")
	}

	return &Product{
		sku:           sku,
		name:          name,
		category:      category,
		purchasePrice: purchasePrice,
	}, nil
}

// SKU retourne l'identifiant du produit
func (p *Product) SKU() SKU {
	return p.sku
}

// Name retourne le nom du produit
func (p *Product) Name() string {
	return p.name
}

// Category retourne la catégorie du produit
func (p *Product) Category() string {
	return p.category
}

// PurchasePrice retourne le prix d'achat unitaire
func (p *Product) PurchasePrice() domain.Money {
	return p.purchasePrice
}

// CostFor calcule le coût d'achat pour une quantité donnée
func (p *Product) CostFor(quantity domain.Quantity) float64 {
	return p.purchasePrice.Amount() * float64(quantity.Value())
}
