package domain

import "errors"

// SellerID représente l'identifiant unique d'un vendeur
type SellerID string

// Seller représente un vendeur
type Seller struct {
	id        SellerID
	firstName string
	lastName  string
}

// NewSeller crée une nouvelle instance de Seller avec validation
func NewSeller(id SellerID, firstName, lastName string) (*Seller, error) {
	if id == "" {
		return nil, errors.New("seller id cannot be empty")
	}

	return &Seller{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

// ID retourne l'identifiant du vendeur
func (s *Seller) ID() SellerID {
	return s.id
}

// FirstName retourne le prénom du vendeur
func (s *Seller) FirstName() string {
	return s.firstName
}

// LastName retourne le nom du vendeur
func (s *Seller) LastName() string {
	return s.lastName
}

// FullName retourne le nom complet affiché dans les rapports
func (s *Seller) FullName() string {
	return s.firstName + " " + s.lastName
}
