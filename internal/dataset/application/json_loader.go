package application

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
	shareddomain "sellerstats/internal/shared/domain"
)

// Représentation brute d'un dataset JSON, au format des fichiers d'entrée:
// trois collections sellers / products / purchase_records
type rawDataset struct {
	Sellers         []rawSeller         `json:"sellers"`
	Products        []rawProduct        `json:"products"`
	PurchaseRecords []rawPurchaseRecord `json:"purchase_records"`
}

type rawSeller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type rawProduct struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
}

type rawPurchaseRecord struct {
	SellerID    string        `json:"seller_id"`
	TotalAmount float64       `json:"total_amount"`
	Items       []rawLineItem `json:"items"`
}

type rawLineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

// JSONLoader charge un Dataset depuis un document JSON
type JSONLoader struct {
	currency string
}

// NewJSONLoader crée un nouveau loader JSON
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{currency: "EUR"}
}

// LoadFile charge un dataset depuis un fichier JSON
func (l *JSONLoader) LoadFile(path string) (*salesdomain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	dataset, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return dataset, nil
}

// Load charge un dataset depuis un flux JSON
func (l *JSONLoader) Load(r io.Reader) (*salesdomain.Dataset, error) {
	var raw rawDataset
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	return l.toDomain(raw)
}

// toDomain convertit la représentation brute en entités du domaine
// L'ordre des collections d'entrée est conservé: il détermine les égalités
// de classement en sortie
func (l *JSONLoader) toDomain(raw rawDataset) (*salesdomain.Dataset, error) {
	sellers := make([]*salesdomain.Seller, 0, len(raw.Sellers))
	for i, rs := range raw.Sellers {
		seller, err := salesdomain.NewSeller(salesdomain.SellerID(rs.ID), rs.FirstName, rs.LastName)
		if err != nil {
			return nil, fmt.Errorf("seller #%d: %w", i, err)
		}
		sellers = append(sellers, seller)
	}

	products := make([]*catalogdomain.Product, 0, len(raw.Products))
	for i, rp := range raw.Products {
		price, err := shareddomain.NewMoney(rp.PurchasePrice, l.currency)
		if err != nil {
			return nil, fmt.Errorf("product #%d (%s): %w", i, rp.SKU, err)
		}
		product, err := catalogdomain.NewProduct(catalogdomain.SKU(rp.SKU), rp.Name, rp.Category, price)
		if err != nil {
			return nil, fmt.Errorf("product #%d: %w", i, err)
		}
		products = append(products, product)
	}

	records := make([]*salesdomain.PurchaseRecord, 0, len(raw.PurchaseRecords))
	for i, rr := range raw.PurchaseRecords {
		items := make([]salesdomain.LineItem, 0, len(rr.Items))
		for j, ri := range rr.Items {
			quantity, err := shareddomain.NewQuantity(ri.Quantity)
			if err != nil {
				return nil, fmt.Errorf("record #%d item #%d: %w", i, j, err)
			}
			salePrice, err := shareddomain.NewMoney(ri.SalePrice, l.currency)
			if err != nil {
				return nil, fmt.Errorf("record #%d item #%d: %w", i, j, err)
			}
			item, err := salesdomain.NewLineItem(catalogdomain.SKU(ri.SKU), quantity, salePrice, ri.Discount)
			if err != nil {
				return nil, fmt.Errorf("record #%d item #%d: %w", i, j, err)
			}
			items = append(items, item)
		}

		total, err := shareddomain.NewMoney(rr.TotalAmount, l.currency)
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i, err)
		}
		record, err := salesdomain.NewPurchaseRecord(salesdomain.SellerID(rr.SellerID), total, items)
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i, err)
		}
		records = append(records, record)
	}

	return salesdomain.NewDataset(sellers, products, records), nil
}
