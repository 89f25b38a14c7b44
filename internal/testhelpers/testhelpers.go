package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
	shareddomain "sellerstats/internal/shared/domain"
)

// Currency devise utilisée par toutes les fixtures
const Currency = "EUR"

// Seller construit un vendeur de test
func Seller(tb testing.TB, id, first, last string) *salesdomain.Seller {
	tb.Helper()

	seller, err := salesdomain.NewSeller(salesdomain.SellerID(id), first, last)
	if err != nil {
		tb.Fatalf("invalid test seller %s: %v", id, err)
	}
	return seller
}

// Product construit un produit de test
func Product(tb testing.TB, sku, name string, purchasePrice float64) *catalogdomain.Product {
	tb.Helper()

	product, err := catalogdomain.NewProduct(
		catalogdomain.SKU(sku),
		name,
		"Test",
		shareddomain.MustNewMoney(purchasePrice, Currency),
	)
	if err != nil {
		tb.Fatalf("invalid test product %s: %v", sku, err)
	}
	return product
}

// LineItem construit une ligne de vente de test
func LineItem(tb testing.TB, sku string, quantity int, salePrice, discount float64) salesdomain.LineItem {
	tb.Helper()

	item, err := salesdomain.NewLineItem(
		catalogdomain.SKU(sku),
		shareddomain.MustNewQuantity(quantity),
		shareddomain.MustNewMoney(salePrice, Currency),
		discount,
	)
	if err != nil {
		tb.Fatalf("invalid test line item %s: %v", sku, err)
	}
	return item
}

// PurchaseRecord construit un reçu de test
func PurchaseRecord(tb testing.TB, sellerID string, totalAmount float64, items ...salesdomain.LineItem) *salesdomain.PurchaseRecord {
	tb.Helper()

	record, err := salesdomain.NewPurchaseRecord(
		salesdomain.SellerID(sellerID),
		shareddomain.MustNewMoney(totalAmount, Currency),
		items,
	)
	if err != nil {
		tb.Fatalf("invalid test purchase record for %s: %v", sellerID, err)
	}
	return record
}

// SingleSellerDataset retourne le scénario canonique à un vendeur:
// un produit acheté 30, vendu 100 × 2 sans remise
// Attendu: revenue=200, cost=60, profit=140, bonus=21 (règle du leader)
func SingleSellerDataset(tb testing.TB) *salesdomain.Dataset {
	tb.Helper()

	return salesdomain.NewDataset(
		[]*salesdomain.Seller{Seller(tb, "seller_1", "Alice", "Martin")},
		[]*catalogdomain.Product{Product(tb, "SKU-1", "Laptop Pro", 30)},
		[]*salesdomain.PurchaseRecord{
			PurchaseRecord(tb, "seller_1", 200, LineItem(tb, "SKU-1", 2, 100, 0)),
		},
	)
}

// ThreeSellerDataset retourne un scénario à trois vendeurs dont les marges
// valent exactement 300, 200 et 100 (prix d'achat nul, une ligne par reçu)
func ThreeSellerDataset(tb testing.TB) *salesdomain.Dataset {
	tb.Helper()

	return salesdomain.NewDataset(
		[]*salesdomain.Seller{
			Seller(tb, "seller_1", "Alice", "Martin"),
			Seller(tb, "seller_2", "Bruno", "Durand"),
			Seller(tb, "seller_3", "Chloé", "Leroy"),
		},
		[]*catalogdomain.Product{Product(tb, "SKU-1", "Souris sans fil", 0)},
		[]*salesdomain.PurchaseRecord{
			PurchaseRecord(tb, "seller_1", 300, LineItem(tb, "SKU-1", 1, 300, 0)),
			PurchaseRecord(tb, "seller_2", 200, LineItem(tb, "SKU-1", 1, 200, 0)),
			PurchaseRecord(tb, "seller_3", 100, LineItem(tb, "SKU-1", 1, 100, 0)),
		},
	)
}

// SetupTestDB initialise une connexion à la base de données de test
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	// Charger les variables d'environnement
	_ = godotenv.Load("../../.env")

	db, err := sql.Open("postgres", testConnStr())
	if err != nil {
		tb.Fatalf("Failed to open database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		tb.Fatalf("Failed to ping database: %v", err)
	}

	return db
}

// SkipIfNoDatabase skip le test/benchmark si la DB n'est pas disponible
func SkipIfNoDatabase(tb testing.TB) {
	tb.Helper()

	_ = godotenv.Load("../../.env")

	db, err := sql.Open("postgres", testConnStr())
	if err != nil {
		tb.Skip("Database not available:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		tb.Skip("Database not available:", err)
	}
}

// testConnStr construit la connection string de test depuis l'environnement
func testConnStr() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "sellerstats"),
		getEnv("DB_PASSWORD", "sellerstats"),
		getEnv("DB_NAME", "sellerstats"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
