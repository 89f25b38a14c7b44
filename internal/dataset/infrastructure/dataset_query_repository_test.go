package infrastructure

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
	"sellerstats/internal/testhelpers"
)

// ========================================
// Tests d'intégration: DatasetQueryRepository
// Nécessitent une base Postgres de test (skip sinon)
// ========================================

func setupDatasetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	schema := `
	CREATE TABLE IF NOT EXISTS sellers (
		id         TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS products (
		sku            TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		category       TEXT NOT NULL DEFAULT '',
		purchase_price DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS purchase_records (
		id           BIGSERIAL PRIMARY KEY,
		seller_id    TEXT NOT NULL REFERENCES sellers(id),
		total_amount DOUBLE PRECISION NOT NULL
	);
	CREATE TABLE IF NOT EXISTS purchase_items (
		id         BIGSERIAL PRIMARY KEY,
		record_id  BIGINT NOT NULL REFERENCES purchase_records(id),
		sku        TEXT NOT NULL REFERENCES products(sku),
		quantity   INT NOT NULL,
		sale_price DOUBLE PRECISION NOT NULL,
		discount   DOUBLE PRECISION NOT NULL DEFAULT 0
	);`

	_, err := db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(`TRUNCATE purchase_items, purchase_records, products, sellers`)
	require.NoError(t, err)
}

func insertFixtures(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO sellers (id, first_name, last_name) VALUES
		('seller_1', 'Alice', 'Martin'),
		('seller_2', 'Bruno', 'Lefebvre')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO products (sku, name, category, purchase_price) VALUES
		('SKU-1', 'Clavier mécanique', 'Informatique', 30),
		('SKU-2', 'Souris sans fil', 'Informatique', 12.5)`)
	require.NoError(t, err)

	var recordID int64
	err = db.QueryRow(`INSERT INTO purchase_records (seller_id, total_amount)
		VALUES ('seller_1', 200) RETURNING id`).Scan(&recordID)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO purchase_items (record_id, sku, quantity, sale_price, discount)
		VALUES ($1, 'SKU-1', 2, 100, 0), ($1, 'SKU-2', 1, 25, 10)`, recordID)
	require.NoError(t, err)
}

func TestDatasetQueryRepository_LoadDataset(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)

	db := testhelpers.SetupTestDB(t)
	defer db.Close()

	setupDatasetTables(t, db)
	insertFixtures(t, db)

	repo := NewDatasetQueryRepository(db)
	dataset, err := repo.LoadDataset()
	require.NoError(t, err)

	require.Len(t, dataset.Sellers, 2)
	assert.Equal(t, salesdomain.SellerID("seller_1"), dataset.Sellers[0].ID())
	assert.Equal(t, "Bruno Lefebvre", dataset.Sellers[1].FullName())

	require.Len(t, dataset.Products, 2)
	assert.Equal(t, catalogdomain.SKU("SKU-1"), dataset.Products[0].SKU())
	assert.Equal(t, 30.0, dataset.Products[0].PurchasePrice().Amount())

	require.Len(t, dataset.PurchaseRecords, 1)
	record := dataset.PurchaseRecords[0]
	assert.Equal(t, salesdomain.SellerID("seller_1"), record.SellerID())
	assert.Equal(t, 200.0, record.TotalAmount().Amount())

	items := record.Items()
	require.Len(t, items, 2)
	assert.Equal(t, catalogdomain.SKU("SKU-1"), items[0].SKU())
	assert.Equal(t, 2, items[0].Quantity().Value())
	assert.Equal(t, catalogdomain.SKU("SKU-2"), items[1].SKU())
	assert.Equal(t, 10.0, items[1].DiscountPercent())
}

func TestDatasetQueryRepository_EmptyTables(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)

	db := testhelpers.SetupTestDB(t)
	defer db.Close()

	setupDatasetTables(t, db)

	repo := NewDatasetQueryRepository(db)
	dataset, err := repo.LoadDataset()
	require.NoError(t, err)

	assert.Empty(t, dataset.Sellers)
	assert.Empty(t, dataset.Products)
	assert.Empty(t, dataset.PurchaseRecords)
}
