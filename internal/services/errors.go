package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/univoucher/univoucher-api/internal/types/business"
)

var (
	ErrWalletNotConfigured = errors.New("internal wallet is not configured")
	ErrSessionNotFound     = errors.New("mint session not found")
)

// FormatError is a malformed card id or secret, caught before any network call.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FeeUnavailableError means the fee oracle could not produce a fee for a chain.
// Callers must not continue with a guessed fee.
type FeeUnavailableError struct {
	ChainID int64
	Err     error
}

func (e *FeeUnavailableError) Error() string {
	return fmt.Sprintf("fee for chain %d unavailable: %v", e.ChainID, e.Err)
}

func (e *FeeUnavailableError) Unwrap() error {
	return e.Err
}

// FundsKind says which resource is short.
type FundsKind string

const (
	FundsBalance   FundsKind = "balance"
	FundsAllowance FundsKind = "allowance"
)

// InsufficientFundsError blocks a mint until the operator funds or approves.
type InsufficientFundsError struct {
	Kind      FundsKind
	Required  string
	Available string
	Symbol    string
}

func (e *InsufficientFundsError) Error() string {
	if e.Kind == FundsAllowance {
		return fmt.Sprintf("insufficient %s allowance: approve at least %s (current %s)", e.Symbol, e.Required, e.Available)
	}
	return fmt.Sprintf("insufficient %s balance: need %s, have %s", e.Symbol, e.Required, e.Available)
}

// ValidationFailure lists the facets a card failed.
type ValidationFailure struct {
	CardID string
	Failed []business.Facet
}

func (e *ValidationFailure) Error() string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = string(f)
	}
	return fmt.Sprintf("card %s failed validation: %s", e.CardID, strings.Join(names, ", "))
}

// PartialMintSuccess means the deposit transaction was mined and funds moved,
// but at least one card id could not be resolved or the resolved cards did not
// reach inventory. TxHash is what the operator needs for manual recovery.
type PartialMintSuccess struct {
	TxHash      string
	Pairs       []business.CardSecretPair
	Unresolved  []business.CardSecretPair
	Pending     bool
	NotAdmitted bool
	Err         error
}

func (e *PartialMintSuccess) Error() string {
	if e.Pending {
		return fmt.Sprintf("transaction %s was broadcast but is not yet mined; card ids are unknown", e.TxHash)
	}
	if e.NotAdmitted && len(e.Unresolved) == 0 {
		return fmt.Sprintf("transaction %s was mined but %d card(s) were not added to inventory: %v", e.TxHash, len(e.Pairs), e.Err)
	}
	return fmt.Sprintf("transaction %s was mined but %d card id(s) could not be resolved: %v", e.TxHash, len(e.Unresolved), e.Err)
}

func (e *PartialMintSuccess) Unwrap() error {
	return e.Err
}

// Mint workflow steps reported in MintStepError
const (
	StepConfigure    = "configure"
	StepReview       = "review"
	StepPrepare      = "prepare_cards"
	StepEstimateGas  = "estimate_gas"
	StepSendTx       = "send_transaction"
	StepWaitReceipt  = "wait_receipt"
	StepResolveCards = "resolve_cards"
	StepAdmitCards   = "admit_cards"
	StepApprove      = "approve"
	StepUnlockWallet = "unlock_wallet"
)

// MintStepError attaches the workflow step to a failure.
type MintStepError struct {
	Step string
	Err  error
}

func (e *MintStepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *MintStepError) Unwrap() error {
	return e.Err
}

func stepError(step string, err error) error {
	if err == nil {
		return nil
	}
	var existing *MintStepError
	if errors.As(err, &existing) {
		return err
	}
	return &MintStepError{Step: step, Err: err}
}

// InvalidStateError is returned when a session action is not allowed in the
// session's current state.
type InvalidStateError struct {
	Action string
	State  business.MintState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Action, e.State)
}
