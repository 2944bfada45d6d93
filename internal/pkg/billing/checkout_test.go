package billing

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/leadpulse/LeadPulse/app/models"
)

func TestBuildCheckoutURL(t *testing.T) {
	plan := &models.Plan{ID: 2, Name: "professional", PriceCents: 9700, ExternalPlanCode: "PPLQQ1S1"}

	link, err := BuildCheckoutURL(plan, 42, OperationUpgrade)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("invalid URL %q: %v", link, err)
	}
	if u.Host != "go.perfectpay.com.br" || u.Path != "/PPLQQ1S1" {
		t.Fatalf("unexpected checkout URL: %q", link)
	}

	corr, err := DecodeCorrelation(u.Query().Get("external_reference"))
	if err != nil || !corr.Known {
		t.Fatalf("reference not decodable: %v", err)
	}
	if corr.Operation != OperationUpgrade || corr.UserID != 42 || corr.PlanID != 2 {
		t.Fatalf("reference mismatch: %+v", corr)
	}

	// nothing resembling a credential ever lands in the link
	if strings.Contains(strings.ToLower(link), "key") || strings.Contains(strings.ToLower(link), "token") {
		t.Fatalf("checkout URL leaks credential-looking material: %q", link)
	}
}

func TestBuildCheckoutURLCustomBase(t *testing.T) {
	t.Setenv("PERFECTPAY_CHECKOUT_BASE_URL", "https://sandbox.perfectpay.com.br/pay/")
	plan := &models.Plan{ID: 1, ExternalPlanCode: "PPLQQ1S0"}

	link, err := BuildCheckoutURL(plan, 7, OperationNew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://sandbox.perfectpay.com.br/pay/PPLQQ1S0?") {
		t.Fatalf("base URL not honored: %q", link)
	}
}

func TestBuildCheckoutURLValidation(t *testing.T) {
	if _, err := BuildCheckoutURL(nil, 1, OperationNew); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound for nil plan, got %v", err)
	}
	if _, err := BuildCheckoutURL(&models.Plan{ID: 1}, 1, OperationNew); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound for plan without provider code, got %v", err)
	}
	if _, err := BuildCheckoutURL(&models.Plan{ID: 1, ExternalPlanCode: "X"}, 0, OperationNew); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing user, got %v", err)
	}
}
