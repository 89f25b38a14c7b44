package domain

import (
	"errors"

	catalogdomain "sellerstats/internal/catalog/domain"
	"sellerstats/internal/shared/domain"
)

// LineItem représente une ligne de vente au sein d'un reçu
// La remise est un pourcentage; les valeurs hors [0,100] ne sont pas rejetées
// et se propagent telles quelles dans le calcul de chiffre d'affaires
type LineItem struct {
	sku             catalogdomain.SKU
	quantity        domain.Quantity
	salePrice       domain.Money
	discountPercent float64
}

// NewLineItem crée une nouvelle ligne de vente avec validation
func NewLineItem(
	sku catalogdomain.SKU,
	quantity domain.Quantity,
	salePrice domain.Money,
	discountPercent float64,
) (LineItem, error) {
	if sku == "" {
		return LineItem{}, errors.New("line item sku cannot be empty")
	}

	return LineItem{
		sku:             sku,
		quantity:        quantity,
		salePrice:       salePrice,
		discountPercent: discountPercent,
	}, nil
}

// SKU retourne l'identifiant du produit vendu
func (li LineItem) SKU() catalogdomain.SKU {
	return li.sku
}

// Quantity retourne la quantité vendue
func (li LineItem) Quantity() domain.Quantity {
	return li.quantity
}

// SalePrice retourne le prix de vente unitaire
func (li LineItem) SalePrice() domain.Money {
	return li.salePrice
}

// DiscountPercent retourne la remise en pourcentage
func (li LineItem) DiscountPercent() float64 {
	return li.discountPercent
}

// PurchaseRecord représente un reçu de vente attribué à un vendeur
// Le montant total est porté par le reçu lui-même et n'est jamais recalculé
// depuis les lignes
type PurchaseRecord struct {
	sellerID    SellerID
	totalAmount domain.Money
	items       []LineItem
}

// NewPurchaseRecord crée un nouveau reçu avec validation
func NewPurchaseRecord(
	sellerID SellerID,
	totalAmount domain.Money,
	items []LineItem,
) (*PurchaseRecord, error) {
	if sellerID == "" {
		return nil, errors.New("purchase record seller id cannot be empty")
	}

	return &PurchaseRecord{
		sellerID:    sellerID,
		totalAmount: totalAmount,
		items:       items,
	}, nil
}

// SellerID retourne l'identifiant du vendeur attribué
func (pr *PurchaseRecord) SellerID() SellerID {
	return pr.sellerID
}

// TotalAmount retourne le montant total du reçu
func (pr *PurchaseRecord) TotalAmount() domain.Money {
	return pr.totalAmount
}

// Items retourne les lignes du reçu
func (pr *PurchaseRecord) Items() []LineItem {
	return append([]LineItem{}, pr.items...)
}

// ItemCount retourne le nombre de lignes du reçu
func (pr *PurchaseRecord) ItemCount() int {
	return len(pr.items)
}
