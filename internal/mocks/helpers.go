package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockChainGatewayForTest creates a new mock ChainGateway for testing
func NewMockChainGatewayForTest(t *testing.T) *MockChainGateway {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainGateway(ctrl)
}

// NewMockRedemptionClientForTest creates a new mock RedemptionClient for testing
func NewMockRedemptionClientForTest(t *testing.T) *MockRedemptionClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRedemptionClient(ctrl)
}

// NewMockInventoryStoreForTest creates a new mock InventoryStore for testing
func NewMockInventoryStoreForTest(t *testing.T) *MockInventoryStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInventoryStore(ctrl)
}
