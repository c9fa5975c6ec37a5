package helpers

import "github.com/univoucher/univoucher-api/internal/constants"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// IsValidStage checks if the provided stage string is one of the deployable stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}
