package infrastructure

import (
	"database/sql"
	"fmt"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
	shareddomain "sellerstats/internal/shared/domain"
	"sellerstats/internal/shared/infrastructure"
)

// DatasetQueryRepository lit les trois collections du dataset depuis Postgres
type DatasetQueryRepository struct {
	infrastructure.BaseRepository
	currency string
}

// NewDatasetQueryRepository crée un nouveau repository de dataset
func NewDatasetQueryRepository(db *sql.DB) *DatasetQueryRepository {
	return &DatasetQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
		currency:       "EUR",
	}
}

// LoadDataset charge les vendeurs, produits et reçus en trois requêtes
// L'ordre d'insertion est conservé (ORDER BY sur clés croissantes): il fixe
// l'ordre des égalités du classement final
func (r *DatasetQueryRepository) LoadDataset() (*salesdomain.Dataset, error) {
	sellers, err := r.loadSellers()
	if err != nil {
		return nil, fmt.Errorf("load sellers: %w", err)
	}

	products, err := r.loadProducts()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	records, err := r.loadPurchaseRecords()
	if err != nil {
		return nil, fmt.Errorf("load purchase records: %w", err)
	}

	return salesdomain.NewDataset(sellers, products, records), nil
}

// loadSellers lit la collection des vendeurs
func (r *DatasetQueryRepository) loadSellers() ([]*salesdomain.Seller, error) {
	rows, err := r.Query(`SELECT id, first_name, last_name FROM sellers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []*salesdomain.Seller
	for rows.Next() {
		var id, first, last string
		if err := rows.Scan(&id, &first, &last); err != nil {
			return nil, err
		}

		seller, err := salesdomain.NewSeller(salesdomain.SellerID(id), first, last)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, seller)
	}
	return sellers, rows.Err()
}

// loadProducts lit le catalogue
func (r *DatasetQueryRepository) loadProducts() ([]*catalogdomain.Product, error) {
	rows, err := r.Query(`SELECT sku, name, category, purchase_price FROM products ORDER BY sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*catalogdomain.Product
	for rows.Next() {
		var sku, name, category string
		var purchasePrice float64
		if err := rows.Scan(&sku, &name, &category, &purchasePrice); err != nil {
			return nil, err
		}

		price, err := shareddomain.NewMoney(purchasePrice, r.currency)
		if err != nil {
			return nil, err
		}
		product, err := catalogdomain.NewProduct(catalogdomain.SKU(sku), name, category, price)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// loadPurchaseRecords lit les reçus puis rattache leurs lignes en une seule
// requête jointe, sans N+1
func (r *DatasetQueryRepository) loadPurchaseRecords() ([]*salesdomain.PurchaseRecord, error) {
	type recordData struct {
		sellerID    string
		totalAmount float64
		items       []salesdomain.LineItem
	}

	rows, err := r.Query(`SELECT id, seller_id, total_amount FROM purchase_records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var order []int64
	byID := make(map[int64]*recordData)
	for rows.Next() {
		var id int64
		data := &recordData{}
		if err := rows.Scan(&id, &data.sellerID, &data.totalAmount); err != nil {
			return nil, err
		}
		order = append(order, id)
		byID[id] = data
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.Query(
		`SELECT record_id, sku, quantity, sale_price, discount FROM purchase_items ORDER BY record_id, id`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var recordID int64
		var sku string
		var quantity int
		var salePrice, discount float64
		if err := itemRows.Scan(&recordID, &sku, &quantity, &salePrice, &discount); err != nil {
			return nil, err
		}

		data, ok := byID[recordID]
		if !ok {
			return nil, fmt.Errorf("purchase item references unknown record %d", recordID)
		}

		qty, err := shareddomain.NewQuantity(quantity)
		if err != nil {
			return nil, err
		}
		price, err := shareddomain.NewMoney(salePrice, r.currency)
		if err != nil {
			return nil, err
		}
		item, err := salesdomain.NewLineItem(catalogdomain.SKU(sku), qty, price, discount)
		if err != nil {
			return nil, err
		}
		data.items = append(data.items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	records := make([]*salesdomain.PurchaseRecord, 0, len(order))
	for _, id := range order {
		data := byID[id]
		total, err := shareddomain.NewMoney(data.totalAmount, r.currency)
		if err != nil {
			return nil, err
		}
		record, err := salesdomain.NewPurchaseRecord(salesdomain.SellerID(data.sellerID), total, data.items)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
