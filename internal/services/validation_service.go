package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	"github.com/univoucher/univoucher-api/internal/client/univoucher"
	"github.com/univoucher/univoucher-api/internal/helpers"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/metrics"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MinCardIDLength is the shortest card id accepted before any lookup.
const MinCardIDLength = 4

// DefaultValidationConcurrency bounds concurrent API lookups in ValidateBatch.
const DefaultValidationConcurrency = 4

// ValidationService computes the six validity facets of a card for a product.
type ValidationService struct {
	api         interfaces.RedemptionClient
	inventory   interfaces.InventoryStore
	metrics     *metrics.Collector
	concurrency int
	now         func() time.Time
	logger      *zap.Logger
}

func NewValidationService(api interfaces.RedemptionClient, inventory interfaces.InventoryStore, collector *metrics.Collector) *ValidationService {
	return &ValidationService{
		api:         api,
		inventory:   inventory,
		metrics:     collector,
		concurrency: DefaultValidationConcurrency,
		now:         time.Now,
		logger:      logger.Log,
	}
}

// CheckFormat runs the pre-flight checks. It never touches the network.
func CheckFormat(input business.CardInput) *business.FormatIssue {
	if len(strings.TrimSpace(input.CardID)) < MinCardIDLength {
		return &business.FormatIssue{Field: "card_id", Reason: fmt.Sprintf("must be at least %d characters", MinCardIDLength)}
	}
	if !cardcrypto.IsValidSecret(input.CardSecret) {
		return &business.FormatIssue{Field: "card_secret", Reason: "must be 20 letters, optionally grouped as XXXXX-XXXXX-XXXXX-XXXXX"}
	}
	return nil
}

// Validate checks one card against product. excludeInventoryID is the
// inventory row being edited, or 0; that row does not count against "new".
func (s *ValidationService) Validate(ctx context.Context, product business.ProductConfig, input business.CardInput, excludeInventoryID int64) (*business.ValidationResult, error) {
	cardID := strings.TrimSpace(input.CardID)
	result := &business.ValidationResult{
		CardID:      cardID,
		ProductID:   product.ProductID,
		Fingerprint: business.Fingerprint(cardID, input.CardSecret),
		ValidatedAt: s.now().UTC(),
	}

	if issue := CheckFormat(input); issue != nil {
		result.Format = issue
		s.metrics.ObserveValidation("format_error", nil)
		return result, nil
	}

	card, err := s.api.GetCard(ctx, cardID)
	if err != nil {
		if errors.Is(err, univoucher.ErrCardNotFound) {
			result.NotFound = true
			s.metrics.ObserveValidation("not_found", facetNames(business.AllFacets))
			return result, nil
		}
		s.metrics.ObserveValidation("error", nil)
		return nil, fmt.Errorf("failed to look up card %s: %w", cardID, err)
	}

	exists, err := s.inventory.CardExistsExcluding(ctx, cardID, excludeInventoryID)
	if err != nil {
		s.metrics.ObserveValidation("error", nil)
		return nil, fmt.Errorf("failed to check inventory for card %s: %w", cardID, err)
	}

	result.Facets = computeFacets(product, card, input.CardSecret, exists)
	result.AllValid = result.Facets.AllValid()
	result.APIData = publicCardData(card)
	if created, ok := card.CreatedTime(); ok {
		result.CreationDate = created
	}

	failed := result.Facets.Failed()
	if result.AllValid {
		s.metrics.ObserveValidation("valid", nil)
	} else {
		s.metrics.ObserveValidation("invalid", facetNames(failed))
	}

	s.logger.Debug("Validated card",
		zap.String("card_id", cardID),
		zap.Int64("product_id", product.ProductID),
		zap.Bool("all_valid", result.AllValid),
		zap.Strings("failed", facetNames(failed)))

	return result, nil
}

// ValidateBatch validates inputs concurrently and returns results in input
// order. A card id that appears more than once fails "new" from its second
// occurrence on.
func (s *ValidationService) ValidateBatch(ctx context.Context, product business.ProductConfig, inputs []business.CardInput) ([]*business.ValidationResult, error) {
	results := make([]*business.ValidationResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := s.Validate(gctx, product, input, 0)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(inputs))
	for _, res := range results {
		if res.Format != nil {
			continue
		}
		if _, dup := seen[res.CardID]; dup {
			res.Facets.New = false
			res.AllValid = false
			continue
		}
		seen[res.CardID] = struct{}{}
	}
	return results, nil
}

func computeFacets(product business.ProductConfig, card *univoucher.Card, secret string, existsInInventory bool) business.Facets {
	facets := business.Facets{
		New:     !existsInInventory && !card.IsRedeemed(),
		Active:  card.IsActive(),
		Network: card.ChainID == product.ChainID,
		Token:   helpers.SameAddress(card.TokenAddress, product.TokenAddress),
		Secret:  secretMatches(card, secret),
	}
	if expected, err := product.AmountUnits(); err == nil {
		if actual, ok := card.AmountUnits(); ok {
			facets.Amount = actual.Cmp(expected) == 0
		}
	}
	return facets
}

// secretMatches reports whether secret opens the card's encrypted key and the
// key controls the card's slot.
func secretMatches(card *univoucher.Card, secret string) bool {
	if card.EncryptedPrivateKey == "" || card.SlotID == "" {
		return false
	}
	keyHex, err := cardcrypto.DecryptPrivateKeyJSON(card.EncryptedPrivateKey, secret)
	if err != nil {
		return false
	}
	addr, err := cardcrypto.DeriveAddress(keyHex)
	if err != nil {
		return false
	}
	return helpers.SameAddress(addr.Hex(), card.SlotID)
}

// publicCardData is the subset of the card record echoed back to the operator.
func publicCardData(card *univoucher.Card) map[string]interface{} {
	data := map[string]interface{}{
		"cardId":        card.CardID.String(),
		"slotId":        card.SlotID,
		"chainId":       card.ChainID,
		"tokenAddress":  card.TokenAddress,
		"tokenSymbol":   card.TokenSymbol,
		"tokenDecimals": card.TokenDecimals,
		"tokenAmount":   card.TokenAmount.String(),
		"status":        card.Status,
		"active":        card.IsActive(),
		"creator":       card.Creator,
		"createdAt":     card.CreatedAt,
	}
	if card.RedeemedAt != "" {
		data["redeemedAt"] = card.RedeemedAt
	}
	if card.CancelledAt != "" {
		data["cancelledAt"] = card.CancelledAt
	}
	return data
}

func facetNames(facets []business.Facet) []string {
	names := make([]string, len(facets))
	for i, f := range facets {
		names[i] = string(f)
	}
	return names
}
