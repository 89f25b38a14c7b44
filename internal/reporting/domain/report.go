package domain

import (
	catalogdomain "sellerstats/internal/catalog/domain"
)

// TopProduct représente une entrée du classement produits d'un vendeur
type TopProduct struct {
	sku      catalogdomain.SKU
	quantity int
}

// NewTopProduct crée une entrée de classement produit
func NewTopProduct(sku catalogdomain.SKU, quantity int) TopProduct {
	return TopProduct{
		sku:      sku,
		quantity: quantity,
	}
}

// SKU retourne l'identifiant du produit
func (tp TopProduct) SKU() catalogdomain.SKU {
	return tp.sku
}

// Quantity retourne la quantité totale vendue
func (tp TopProduct) Quantity() int {
	return tp.quantity
}

// SellerReport représente le rapport final d'un vendeur (lecture seule)
// Revenue et profit sont arrondis à 2 décimales à la projection; le bonus
// porte l'arrondi appliqué par la stratégie, sans second arrondi
type SellerReport struct {
	sellerID    string
	name        string
	revenue     float64
	profit      float64
	salesCount  int
	topProducts []TopProduct
	bonus       float64
}

// NewSellerReport crée un rapport final de vendeur
func NewSellerReport(
	sellerID string,
	name string,
	revenue float64,
	profit float64,
	salesCount int,
	topProducts []TopProduct,
	bonus float64,
) *SellerReport {
	return &SellerReport{
		sellerID:    sellerID,
		name:        name,
		revenue:     revenue,
		profit:      profit,
		salesCount:  salesCount,
		topProducts: topProducts,
		bonus:       bonus,
	}
}

// SellerID retourne l'identifiant du vendeur
func (sr *SellerReport) SellerID() string {
	return sr.sellerID
}

// Name retourne le nom complet du vendeur
func (sr *SellerReport) Name() string {
	return sr.name
}

// Revenue retourne le chiffre d'affaires (2 décimales)
func (sr *SellerReport) Revenue() float64 {
	return sr.revenue
}

// Profit retourne la marge (2 décimales)
func (sr *SellerReport) Profit() float64 {
	return sr.profit
}

// SalesCount retourne le nombre de reçus attribués au vendeur
func (sr *SellerReport) SalesCount() int {
	return sr.salesCount
}

// TopProducts retourne le classement des produits (au plus 10, quantité décroissante)
func (sr *SellerReport) TopProducts() []TopProduct {
	return append([]TopProduct{}, sr.topProducts...)
}

// Bonus retourne la prime calculée par la stratégie de bonus
func (sr *SellerReport) Bonus() float64 {
	return sr.bonus
}

// RankedSeller représente un vendeur au moment du calcul de prime: position
// connue, compteurs accumulés, rapport pas encore projeté
type RankedSeller struct {
	id         string
	name       string
	revenue    float64
	profit     float64
	salesCount int
}

// NewRankedSeller crée la vue classée d'un vendeur pour la stratégie de bonus
func NewRankedSeller(id, name string, revenue, profit float64, salesCount int) RankedSeller {
	return RankedSeller{
		id:         id,
		name:       name,
		revenue:    revenue,
		profit:     profit,
		salesCount: salesCount,
	}
}

// ID retourne l'identifiant du vendeur
func (rs RankedSeller) ID() string {
	return rs.id
}

// Name retourne le nom complet du vendeur
func (rs RankedSeller) Name() string {
	return rs.name
}

// Revenue retourne le chiffre d'affaires accumulé (non arrondi)
func (rs RankedSeller) Revenue() float64 {
	return rs.revenue
}

// Profit retourne la marge accumulée (non arrondie)
func (rs RankedSeller) Profit() float64 {
	return rs.profit
}

// SalesCount retourne le nombre de reçus accumulé
func (rs RankedSeller) SalesCount() int {
	return rs.salesCount
}
