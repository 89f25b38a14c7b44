package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func Init(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	// Pool de connexions optimisé
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// EnsureSchema crée les tables du dataset si elles n'existent pas
func EnsureSchema() error {
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
	);
	CREATE INDEX IF NOT EXISTS idx_purchase_records_seller ON purchase_records(seller_id);
	CREATE INDEX IF NOT EXISTS idx_purchase_items_record ON purchase_items(record_id);
	`

	_, err := DB.Exec(schema)
	return err
}
