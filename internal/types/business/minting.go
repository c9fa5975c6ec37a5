package business

import (
	"time"
)

// MintState is a step of the internal-wallet mint workflow.
type MintState string

const (
	MintConfiguring MintState = "configuring"
	MintReviewing   MintState = "reviewing"
	MintSubmitting  MintState = "submitting"
	MintCompleted   MintState = "completed"
)

// MintResult is what a finished (or partially finished) mint produced.
type MintResult struct {
	TxHash      string           `json:"tx_hash"`
	ExplorerURL string           `json:"explorer_url"`
	Method      string           `json:"method"`
	GasLimit    uint64           `json:"gas_limit"`
	Pairs       []CardSecretPair `json:"cards"`
	// Unresolved holds minted slots whose card id could not be determined.
	// The secrets are returned so the operator can recover them by hand.
	Unresolved []CardSecretPair  `json:"unresolved,omitempty"`
	Partial    bool              `json:"partial"`
	Pending    bool              `json:"pending"`
	Admission  *AdmissionSummary `json:"admission,omitempty"`
}

// MintSessionView is the externally visible state of a mint session.
type MintSessionView struct {
	ID        string       `json:"id"`
	ProductID int64        `json:"product_id"`
	State     MintState    `json:"state"`
	Quantity  int          `json:"quantity"`
	Summary   *CostSummary `json:"summary,omitempty"`
	Estimate  *GasEstimate `json:"gas_estimate,omitempty"`
	Result    *MintResult  `json:"result,omitempty"`
	LastError string       `json:"last_error,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AdmittedCard is one card written to inventory.
type AdmittedCard struct {
	InventoryID int64  `json:"inventory_id"`
	CardID      string `json:"card_id"`
}

// RejectedRow is a candidate row the admission pipeline refused.
type RejectedRow struct {
	Index        int     `json:"index"`
	CardID       string  `json:"card_id"`
	Reason       string  `json:"reason"`
	FailedFacets []Facet `json:"failed_facets,omitempty"`
}

// AdmissionSummary is the result of one admission batch.
type AdmissionSummary struct {
	SuccessCount int            `json:"success_count"`
	Admitted     []AdmittedCard `json:"added_cards"`
	Rejected     []RejectedRow  `json:"rejected"`
	Errors       []string       `json:"errors"`
	Stock        *int64         `json:"stock,omitempty"`
}
