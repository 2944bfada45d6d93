package billing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/leadpulse/LeadPulse/app/models"
	"github.com/leadpulse/LeadPulse/internal/pkg/env"
)

const defaultCheckoutBaseURL = "https://go.perfectpay.com.br/"

// BuildCheckoutURL produces the provider checkout link for a plan, carrying
// the correlation token as the external reference. API keys stay server-side;
// nothing secret is ever embedded in the URL.
func BuildCheckoutURL(plan *models.Plan, userID uint, op OperationType) (string, error) {
	if plan == nil || strings.TrimSpace(plan.ExternalPlanCode) == "" {
		return "", fmt.Errorf("%w: plan has no provider checkout code", ErrPlanNotFound)
	}
	if userID == 0 {
		return "", fmt.Errorf("%w: user id is required", ErrValidation)
	}

	base := strings.TrimRight(env.GetEnv("PERFECTPAY_CHECKOUT_BASE_URL", defaultCheckoutBaseURL), "/")
	u, err := url.Parse(base + "/" + url.PathEscape(plan.ExternalPlanCode))
	if err != nil {
		return "", fmt.Errorf("invalid checkout base URL: %w", err)
	}

	q := u.Query()
	q.Set("external_reference", EncodeCorrelation(op, userID, plan.ID))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
