package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
)

const sampleDataset = `{
	"sellers": [
		{"id": "seller_1", "first_name": "Alice", "last_name": "Martin"},
		{"id": "seller_2", "first_name": "Bruno", "last_name": "Lefebvre"}
	],
	"products": [
		{"sku": "SKU-1", "name": "Clavier mécanique", "category": "Informatique", "purchase_price": 30},
		{"sku": "SKU-2", "name": "Souris sans fil", "category": "Informatique", "purchase_price": 12.5}
	],
	"purchase_records": [
		{
			"seller_id": "seller_1",
			"total_amount": 200,
			"items": [
				{"sku": "SKU-1", "quantity": 2, "sale_price": 100, "discount": 0}
			]
		},
		{
			"seller_id": "seller_2",
			"total_amount": 75,
			"items": [
				{"sku": "SKU-2", "quantity": 3, "sale_price": 25, "discount": 10}
			]
		}
	]
}`

// ========================================
// Tests: JSONLoader
// ========================================

func TestJSONLoader_Load(t *testing.T) {
	loader := NewJSONLoader()

	dataset, err := loader.Load(strings.NewReader(sampleDataset))
	require.NoError(t, err)

	require.Len(t, dataset.Sellers, 2)
	assert.Equal(t, salesdomain.SellerID("seller_1"), dataset.Sellers[0].ID())
	assert.Equal(t, "Alice Martin", dataset.Sellers[0].FullName())

	require.Len(t, dataset.Products, 2)
	assert.Equal(t, catalogdomain.SKU("SKU-2"), dataset.Products[1].SKU())
	assert.Equal(t, 12.5, dataset.Products[1].PurchasePrice().Amount())

	require.Len(t, dataset.PurchaseRecords, 2)
	record := dataset.PurchaseRecords[1]
	assert.Equal(t, salesdomain.SellerID("seller_2"), record.SellerID())
	assert.Equal(t, 75.0, record.TotalAmount().Amount())

	items := record.Items()
	require.Len(t, items, 1)
	assert.Equal(t, catalogdomain.SKU("SKU-2"), items[0].SKU())
	assert.Equal(t, 3, items[0].Quantity().Value())
	assert.Equal(t, 25.0, items[0].SalePrice().Amount())
	assert.Equal(t, 10.0, items[0].DiscountPercent())
}

func TestJSONLoader_PreservesInputOrder(t *testing.T) {
	loader := NewJSONLoader()

	dataset, err := loader.Load(strings.NewReader(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, salesdomain.SellerID("seller_1"), dataset.Sellers[0].ID())
	assert.Equal(t, salesdomain.SellerID("seller_2"), dataset.Sellers[1].ID())
	assert.Equal(t, catalogdomain.SKU("SKU-1"), dataset.Products[0].SKU())
	assert.Equal(t, salesdomain.SellerID("seller_1"), dataset.PurchaseRecords[0].SellerID())
}

func TestJSONLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o644))

	loader := NewJSONLoader()
	dataset, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, dataset.Sellers, 2)
}

func TestJSONLoader_MissingFile(t *testing.T) {
	loader := NewJSONLoader()

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestJSONLoader_InvalidJSON(t *testing.T) {
	loader := NewJSONLoader()

	_, err := loader.Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestJSONLoader_RejectsNegativeQuantity(t *testing.T) {
	loader := NewJSONLoader()

	const bad = `{
		"sellers": [{"id": "seller_1", "first_name": "A", "last_name": "B"}],
		"products": [{"sku": "SKU-1", "name": "P", "category": "C", "purchase_price": 1}],
		"purchase_records": [
			{"seller_id": "seller_1", "total_amount": 10, "items": [
				{"sku": "SKU-1", "quantity": -1, "sale_price": 10, "discount": 0}
			]}
		]
	}`

	_, err := loader.Load(strings.NewReader(bad))
	assert.Error(t, err)
}
