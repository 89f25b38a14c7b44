package database

import (
	"database/sql"
	"fmt"
	"math/rand"

	sharedinfra "sellerstats/internal/shared/infrastructure"
)

var firstNames = []string{
	"Alice", "Bruno", "Chloé", "David", "Emma", "Félix", "Gaëlle", "Hugo",
	"Inès", "Jules", "Karim", "Léa", "Mathis", "Nina", "Oscar", "Pauline",
}

var lastNames = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
	"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
}

var productNames = []string{
	"Laptop Pro", "Souris sans fil", "Clavier mécanique", "Écran 27 pouces",
	"Casque audio", "Webcam HD", "Station d'accueil", "Disque SSD 1To",
	"Chargeur USB-C", "Tapis de souris", "Hub USB", "Support écran",
}

var categories = []string{"Informatique", "Accessoires", "Audio", "Stockage"}

// SeedDatabase peuple les tables du dataset avec des données aléatoires
// L'ensemble des insertions est exécuté dans une seule transaction
func SeedDatabase(sellerCount, productCount, recordCount int) error {
	fmt.Println("🌱 Génération du dataset de ventes...")

	if err := EnsureSchema(); err != nil {
		return fmt.Errorf("erreur création du schéma: %w", err)
	}

	uow := sharedinfra.NewUnitOfWork(DB)
	return uow.Execute(func(tx *sql.Tx) error {
		sellerIDs, err := seedSellers(tx, sellerCount)
		if err != nil {
			return fmt.Errorf("erreur génération vendeurs: %w", err)
		}

		skus, err := seedProducts(tx, productCount)
		if err != nil {
			return fmt.Errorf("erreur génération produits: %w", err)
		}

		if err := seedPurchaseRecords(tx, recordCount, sellerIDs, skus); err != nil {
			return fmt.Errorf("erreur génération reçus: %w", err)
		}

		return nil
	})
}

// seedSellers génère les vendeurs
func seedSellers(tx *sql.Tx, count int) ([]string, error) {
	fmt.Printf("   👤 Génération de %d vendeurs...\n", count)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("seller_%d", i+1)
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]

		_, err := tx.Exec(
			`INSERT INTO sellers (id, first_name, last_name) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			id, first, last,
		)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// seedProducts génère les produits du catalogue
func seedProducts(tx *sql.Tx, count int) ([]string, error) {
	fmt.Printf("   📦 Génération de %d produits...\n", count)

	skus := make([]string, 0, count)
	for i := 0; i < count; i++ {
		sku := fmt.Sprintf("SKU-%04d", i+1)
		name := productNames[rand.Intn(len(productNames))]
		category := categories[rand.Intn(len(categories))]
		// Prix d'achat entre 5 et 505
		purchasePrice := 5 + rand.Float64()*500

		_, err := tx.Exec(
			`INSERT INTO products (sku, name, category, purchase_price) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (sku) DO NOTHING`,
			sku, name, category, purchasePrice,
		)
		if err != nil {
			return nil, err
		}
		skus = append(skus, sku)
	}
	return skus, nil
}

// seedPurchaseRecords génère les reçus et leurs lignes de vente
// Le total du reçu reprend la somme des lignes après remise, ce que le
// pipeline ne recalcule jamais
func seedPurchaseRecords(tx *sql.Tx, count int, sellerIDs, skus []string) error {
	fmt.Printf("   🧾 Génération de %d reçus...\n", count)

	for i := 0; i < count; i++ {
		sellerID := sellerIDs[rand.Intn(len(sellerIDs))]
		itemCount := 1 + rand.Intn(5)

		type pendingItem struct {
			sku       string
			quantity  int
			salePrice float64
			discount  float64
		}

		items := make([]pendingItem, 0, itemCount)
		total := 0.0
		for j := 0; j < itemCount; j++ {
			item := pendingItem{
				sku:       skus[rand.Intn(len(skus))],
				quantity:  1 + rand.Intn(4),
				salePrice: 10 + rand.Float64()*800,
			}
			// Une ligne sur trois porte une remise de 5 à 25%
			if rand.Intn(3) == 0 {
				item.discount = float64(5 + rand.Intn(21))
			}
			items = append(items, item)
			total += item.salePrice * float64(item.quantity) * (1 - item.discount/100)
		}

		var recordID int64
		err := tx.QueryRow(
			`INSERT INTO purchase_records (seller_id, total_amount) VALUES ($1, $2) RETURNING id`,
			sellerID, total,
		).Scan(&recordID)
		if err != nil {
			return err
		}

		for _, item := range items {
			_, err := tx.Exec(
				`INSERT INTO purchase_items (record_id, sku, quantity, sale_price, discount)
				 VALUES ($1, $2, $3, $4, $5)`,
				recordID, item.sku, item.quantity, item.salePrice, item.discount,
			)
			if err != nil {
				return err
			}
		}
	}

	fmt.Println("🔍 Analyse des tables...")
	if _, err := tx.Exec("ANALYZE"); err != nil {
		fmt.Println("⚠️ Attention: échec de l'analyse:", err)
	}

	return nil
}
