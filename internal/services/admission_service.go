package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/metrics"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"go.uber.org/zap"
)

// Rejection reasons reported for candidate rows
const (
	ReasonMissingFields = "card id and card secret are required"
	ReasonNotValidated  = "card has not been validated with its current id and secret"
	ReasonWrongProduct  = "card was validated for a different product"
	ReasonInvalid       = "card failed validation"
	ReasonDuplicateRow  = "card appears more than once in this batch"
)

// AdmissionService writes validated cards to inventory. A row is admitted
// whole or not at all.
type AdmissionService struct {
	inventory  interfaces.InventoryStore
	validation interfaces.ValidationEngine
	metrics    *metrics.Collector
	logger     *zap.Logger
}

func NewAdmissionService(inventory interfaces.InventoryStore, validation interfaces.ValidationEngine, collector *metrics.Collector) *AdmissionService {
	return &AdmissionService{
		inventory:  inventory,
		validation: validation,
		metrics:    collector,
		logger:     logger.Log,
	}
}

// AdmitRows admits every row that carries a current, fully valid validation
// for productID and rejects the rest with a reason.
func (s *AdmissionService) AdmitRows(ctx context.Context, productID int64, rows []business.CandidateRow) (*business.AdmissionSummary, error) {
	product, err := s.inventory.GetProductConfig(ctx, productID)
	if err != nil {
		return nil, err
	}

	summary := &business.AdmissionSummary{
		Admitted: []business.AdmittedCard{},
		Rejected: []business.RejectedRow{},
		Errors:   []string{},
	}

	var accepted []business.InventoryCard
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		cardID := strings.TrimSpace(row.CardID)
		reject := func(reason string, failed []business.Facet) {
			summary.Rejected = append(summary.Rejected, business.RejectedRow{
				Index:        i,
				CardID:       cardID,
				Reason:       reason,
				FailedFacets: failed,
			})
		}

		switch v := row.Validation; {
		case cardID == "" || strings.TrimSpace(row.CardSecret) == "":
			reject(ReasonMissingFields, nil)
			continue
		case !v.Matches(cardID, row.CardSecret):
			reject(ReasonNotValidated, nil)
			continue
		case v.ProductID != productID:
			reject(ReasonWrongProduct, nil)
			continue
		case v.Format != nil:
			reject(fmt.Sprintf("invalid %s: %s", v.Format.Field, v.Format.Reason), nil)
			continue
		case !v.AllValid || !v.Facets.AllValid():
			reject(ReasonInvalid, v.Facets.Failed())
			continue
		}
		if _, dup := seen[cardID]; dup {
			reject(ReasonDuplicateRow, nil)
			continue
		}
		seen[cardID] = struct{}{}

		accepted = append(accepted, business.InventoryCard{
			CardID:       cardID,
			CardSecret:   row.CardSecret,
			Source:       row.Source,
			CreationDate: row.Validation.CreationDate,
		})
	}

	for _, r := range summary.Rejected {
		summary.Errors = append(summary.Errors, fmt.Sprintf("row %d (%s): %s", r.Index+1, r.CardID, r.Reason))
	}

	if len(accepted) > 0 {
		result, err := s.inventory.AdmitCards(ctx, business.MetaFor(product), accepted)
		if err != nil {
			s.logger.Error("Failed to admit cards",
				zap.Int64("product_id", productID),
				zap.Int("cards", len(accepted)),
				zap.Error(err))
			return nil, fmt.Errorf("failed to admit cards: %w", err)
		}
		for _, added := range result.AddedCards {
			summary.Admitted = append(summary.Admitted, business.AdmittedCard{InventoryID: added.InventoryID, CardID: added.CardID})
		}
		summary.Errors = append(summary.Errors, result.Errors...)
		summary.SuccessCount = result.SuccessCount

		stock, err := s.inventory.SyncStock(ctx, productID)
		if err != nil {
			s.logger.Warn("Failed to sync product stock", zap.Int64("product_id", productID), zap.Error(err))
		} else {
			summary.Stock = &stock
		}
	}

	s.metrics.ObserveAdmission(sourceLabel(rows), summary.SuccessCount, len(rows)-summary.SuccessCount)
	s.logger.Info("Admission batch processed",
		zap.Int64("product_id", productID),
		zap.Int("rows", len(rows)),
		zap.Int("admitted", summary.SuccessCount),
		zap.Int("rejected", len(summary.Rejected)))

	return summary, nil
}

// ValidateAndAdmit validates inputs against the product and admits the
// rows that pass. The validation results are returned alongside.
func (s *AdmissionService) ValidateAndAdmit(ctx context.Context, productID int64, inputs []business.CardInput, source business.CardSource) (*business.AdmissionSummary, []*business.ValidationResult, error) {
	product, err := s.inventory.GetProductConfig(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	results, err := s.validation.ValidateBatch(ctx, product, inputs)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]business.CandidateRow, len(inputs))
	for i, input := range inputs {
		rows[i] = business.CandidateRow{
			CardID:     input.CardID,
			CardSecret: input.CardSecret,
			Source:     source,
			Validation: results[i],
		}
	}

	summary, err := s.AdmitRows(ctx, productID, rows)
	if err != nil {
		return nil, results, err
	}
	return summary, results, nil
}

func sourceLabel(rows []business.CandidateRow) string {
	if len(rows) == 0 {
		return "none"
	}
	return string(rows[0].Source)
}

// ParseCSV reads card_id,card_secret rows. A first row whose first column is
// "card_id" (any case) is treated as a header. Blank lines are skipped.
func ParseCSV(r io.Reader) ([]business.CardInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var inputs []business.CardInput
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV: %w", err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "card_id") {
			continue
		}
		if len(record) < 2 {
			return nil, &FormatError{Field: "csv", Reason: fmt.Sprintf("row %d needs card_id and card_secret", line)}
		}
		inputs = append(inputs, business.CardInput{
			CardID:     strings.TrimSpace(record[0]),
			CardSecret: strings.TrimSpace(record[1]),
		})
	}
	return inputs, nil
}
