package billing

import (
	"fmt"
	"strings"

	"github.com/leadpulse/LeadPulse/app/models"
)

// priceToleranceCents is the widest acceptable distance between a charged
// amount and a catalog price when the provider plan code is not cataloged.
// Provider test/staging codes drift from the catalog; the fallback must never
// silently match an arbitrarily distant plan.
const priceToleranceCents = 100

// ResolvePlan maps a provider plan code, or as fallback a charged amount, to
// a catalog plan. Lookup order: exact external code match, exact price match,
// nearest price within the tolerance. A charge equidistant from two plans is
// ambiguous and fails.
func ResolvePlan(plans []models.Plan, externalPlanCode string, chargedAmountCents int64) (*models.Plan, error) {
	code := strings.TrimSpace(externalPlanCode)
	if code != "" {
		for i := range plans {
			if strings.EqualFold(plans[i].ExternalPlanCode, code) {
				return &plans[i], nil
			}
		}
	}

	if chargedAmountCents <= 0 {
		return nil, fmt.Errorf("%w: code %q not cataloged and no charged amount", ErrPlanNotFound, code)
	}

	var best *models.Plan
	bestDiff := int64(-1)
	ambiguous := false
	for i := range plans {
		diff := plans[i].PriceCents - chargedAmountCents
		if diff < 0 {
			diff = -diff
		}
		switch {
		case best == nil || diff < bestDiff:
			best = &plans[i]
			bestDiff = diff
			ambiguous = false
		case diff == bestDiff && plans[i].ID != best.ID:
			ambiguous = true
		}
	}

	if best == nil || bestDiff > priceToleranceCents {
		return nil, fmt.Errorf("%w: no plan within %d cents of charged amount %d", ErrPlanNotFound, priceToleranceCents, chargedAmountCents)
	}
	if ambiguous && bestDiff > 0 {
		return nil, fmt.Errorf("%w: charged amount %d is equidistant from multiple plans", ErrPlanNotFound, chargedAmountCents)
	}
	return best, nil
}
