package catalog

import (
	"github.com/samber/lo"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// Reconcile returns ranking rows for src. Ready sources are converted record
// by record; loading and unavailable sources yield the fallback dataset.
// It never fails.
func Reconcile(src Source) []ModelRecord {
	switch src.State() {
	case StateReady:
		return ReconcileModels(src.Models())
	case StateLoading, StateUnavailable:
		return Fallback()
	default:
		return Fallback()
	}
}

// ReconcileModels converts raw records in order. The input is not modified.
func ReconcileModels(models []types.Model) []ModelRecord {
	return lo.Map(models, func(m types.Model, _ int) ModelRecord {
		return ReconcileModel(m)
	})
}

// ReconcileModel derives one ranking row from a raw record.
func ReconcileModel(m types.Model) ModelRecord {
	change, position := trend(m.ID)
	return ModelRecord{
		Name:           m.Name,
		Organization:   OrganizationOf(m.ID),
		Category:       InferCategory(m.Name),
		Provider:       InferProvider(m.ID),
		Tokens:         EstimateTokens(m.ContextLength),
		Value:          EstimateValue(m.Pricing),
		Change:         change,
		PositionChange: position,
	}
}
