package domain

import (
	"fmt"

	catalogdomain "sellerstats/internal/catalog/domain"
	salesdomain "sellerstats/internal/sales/domain"
)

// ValidationError signale une entrée rejetée avant tout calcul: collection
// absente ou vide, ou stratégie manquante dans les options
type ValidationError struct {
	Field  string
	Reason string
}

// Error implémente l'interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// NewValidationError crée une erreur de validation d'entrée
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UnknownSellerError signale un reçu attribué à un vendeur absent de l'index
// Le calcul échoue entièrement: ignorer le reçu désynchroniserait sales_count,
// revenue et profit
type UnknownSellerError struct {
	SellerID salesdomain.SellerID
}

// Error implémente l'interface error
func (e *UnknownSellerError) Error() string {
	return fmt.Sprintf("purchase record references unknown seller %q", string(e.SellerID))
}

// UnknownProductError signale une ligne de vente référençant un SKU absent du
// catalogue indexé
type UnknownProductError struct {
	SKU catalogdomain.SKU
}

// Error implémente l'interface error
func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("line item references unknown product %q", string(e.SKU))
}
