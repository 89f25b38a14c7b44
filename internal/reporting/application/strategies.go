package application

import (
	reportingdomain "sellerstats/internal/reporting/domain"
	salesdomain "sellerstats/internal/sales/domain"
	shareddomain "sellerstats/internal/shared/domain"
)

// Taux de prime selon la position au classement par marge
const (
	topSellerBonusRate     = 0.15 // prime du leader
	secondThirdBonusRate   = 0.10 // prime des 2e et 3e places
	defaultSellerBonusRate = 0.05 // prime des autres vendeurs
	worstSellerBonusRate   = 0.0  // prime du dernier
)

// RevenueCalculator calcule le chiffre d'affaires d'une ligne de vente
// Stratégie pure fournie par l'appelant, sans état partagé
type RevenueCalculator interface {
	Revenue(item salesdomain.LineItem) float64
}

// RevenueFunc adapte une fonction pure en RevenueCalculator
type RevenueFunc func(item salesdomain.LineItem) float64

// Revenue implémente RevenueCalculator
func (f RevenueFunc) Revenue(item salesdomain.LineItem) float64 {
	return f(item)
}

// BonusCalculator calcule la prime d'un vendeur à partir de sa position
// 0-based dans le classement par marge décroissante
type BonusCalculator interface {
	Bonus(index, total int, seller reportingdomain.RankedSeller) float64
}

// BonusFunc adapte une fonction pure en BonusCalculator
type BonusFunc func(index, total int, seller reportingdomain.RankedSeller) float64

// Bonus implémente BonusCalculator
func (f BonusFunc) Bonus(index, total int, seller reportingdomain.RankedSeller) float64 {
	return f(index, total, seller)
}

// NewSimpleRevenue retourne la stratégie de chiffre d'affaires par défaut:
// prix de vente × quantité × (1 - remise/100)
// La remise n'est pas bornée: une valeur hors [0,100] se propage telle quelle
func NewSimpleRevenue() RevenueCalculator {
	return RevenueFunc(func(item salesdomain.LineItem) float64 {
		discountFactor := 1 - item.DiscountPercent()/100
		return item.SalePrice().Amount() * float64(item.Quantity().Value()) * discountFactor
	})
}

// NewBonusByProfit retourne la stratégie de prime par défaut, arrondie à
// 2 décimales
//
// L'ordre des branches fait partie du contrat et ne doit pas être réordonné:
// la règle 2e/3e place est évaluée avant la règle du dernier, donc avec
// 3 vendeurs la position 2 touche 10% et non 0%; avec un seul vendeur la
// position 0 touche 15% bien qu'elle soit aussi la dernière
func NewBonusByProfit() BonusCalculator {
	return BonusFunc(func(index, total int, seller reportingdomain.RankedSeller) float64 {
		profit := seller.Profit()

		if index == 0 {
			return shareddomain.Round2(profit * topSellerBonusRate)
		} else if index == 1 || index == 2 {
			return shareddomain.Round2(profit * secondThirdBonusRate)
		} else if index == total-1 {
			return worstSellerBonusRate
		}
		return shareddomain.Round2(profit * defaultSellerBonusRate)
	})
}

// AnalyzeOptions porte les deux stratégies injectées par l'appelant
// Les deux sont obligatoires; leur absence est rejetée par la validation
type AnalyzeOptions struct {
	Revenue RevenueCalculator
	Bonus   BonusCalculator
}

// DefaultAnalyzeOptions retourne les options avec les stratégies par défaut
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{
		Revenue: NewSimpleRevenue(),
		Bonus:   NewBonusByProfit(),
	}
}
