package database

// ============================================================================
// MODÈLES DE DONNÉES - Lignes brutes du dataset de ventes
// ============================================================================

// SellerRow - Vendeur
type SellerRow struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProductRow - Produit au catalogue
type ProductRow struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
}

// PurchaseRecordRow - Reçu de vente (en-tête)
type PurchaseRecordRow struct {
	ID          int64   `json:"id"`
	SellerID    string  `json:"seller_id"`
	TotalAmount float64 `json:"total_amount"`
}

// PurchaseItemRow - Ligne de vente d'un reçu
type PurchaseItemRow struct {
	ID        int64   `json:"id"`
	RecordID  int64   `json:"record_id"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}
