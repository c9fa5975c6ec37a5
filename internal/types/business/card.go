package business

import (
	"time"

	"github.com/univoucher/univoucher-api/internal/constants"
)

// Facet is one of the six independent checks that make up a card's validity.
type Facet string

const (
	FacetNew     Facet = "new"
	FacetActive  Facet = "active"
	FacetNetwork Facet = "network"
	FacetAmount  Facet = "amount"
	FacetToken   Facet = "token"
	FacetSecret  Facet = "secret"
)

// AllFacets lists facets in display order.
var AllFacets = []Facet{FacetNew, FacetActive, FacetNetwork, FacetAmount, FacetToken, FacetSecret}

// Facets holds the pass/fail value of every facet.
type Facets struct {
	New     bool `json:"new"`
	Active  bool `json:"active"`
	Network bool `json:"network"`
	Amount  bool `json:"amount"`
	Token   bool `json:"token"`
	Secret  bool `json:"secret"`
}

func (f Facets) Get(facet Facet) bool {
	switch facet {
	case FacetNew:
		return f.New
	case FacetActive:
		return f.Active
	case FacetNetwork:
		return f.Network
	case FacetAmount:
		return f.Amount
	case FacetToken:
		return f.Token
	case FacetSecret:
		return f.Secret
	}
	return false
}

func (f Facets) AllValid() bool {
	return f.New && f.Active && f.Network && f.Amount && f.Token && f.Secret
}

// Failed returns the facets that did not pass, in display order.
func (f Facets) Failed() []Facet {
	var failed []Facet
	for _, facet := range AllFacets {
		if !f.Get(facet) {
			failed = append(failed, facet)
		}
	}
	return failed
}

// CardSource records how a card reached the admission pipeline.
type CardSource string

const (
	SourceManual CardSource = constants.CardSourceManual
	SourceCSV    CardSource = constants.CardSourceCSV
	SourceMint   CardSource = constants.CardSourceMint
)

// CardSecretPair is a minted card id together with its plaintext secret.
type CardSecretPair struct {
	CardID     string `json:"card_id"`
	CardSecret string `json:"card_secret"`
	SlotID     string `json:"slot_id,omitempty"`
}

// InventoryCard is a row ready to be written to the inventory store.
type InventoryCard struct {
	CardID       string
	CardSecret   string
	Source       CardSource
	CreationDate *time.Time
}

// ProductMeta is the shared metadata stored with every admitted card.
type ProductMeta struct {
	ProductID     int64
	ChainID       int64
	TokenAddress  string
	TokenSymbol   string
	TokenType     TokenKind
	TokenDecimals uint8
	Amount        string
}

// MetaFor builds the shared admission metadata for a product.
func MetaFor(p ProductConfig) ProductMeta {
	return ProductMeta{
		ProductID:     p.ProductID,
		ChainID:       p.ChainID,
		TokenAddress:  p.TokenAddress,
		TokenSymbol:   p.TokenSymbol,
		TokenType:     p.TokenKind(),
		TokenDecimals: p.TokenDecimals,
		Amount:        p.Amount.String(),
	}
}
