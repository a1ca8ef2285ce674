package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartshelfx/backend-go/internal/domain"
)

const validResponse = `{
	"decision": "ORDER_NOW",
	"expectedDemand": 50,
	"forecastPeriodDays": 14,
	"recommendedReorderQuantity": 45,
	"recommendedOrderQty": 45,
	"riskLevel": "HIGH",
	"explanation": "Demand outpaces stock.",
	"managerSummary": "Order 45 units now."
}`

func TestParseDecisionValid(t *testing.T) {
	d, err := ParseDecision(validResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Verdict != domain.VerdictOrderNow {
		t.Errorf("verdict = %s, expected ORDER_NOW", d.Verdict)
	}
	if d.ExpectedDemand != 50 || d.ForecastPeriodDays != 14 || d.RecommendedOrderQty != 45 {
		t.Errorf("numeric fields not carried through: %+v", d)
	}
	if d.RiskLevel != domain.RiskHigh {
		t.Errorf("risk = %s, expected HIGH", d.RiskLevel)
	}
}

func TestParseDecisionStripsLeadingProse(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n" + validResponse

	d, err := ParseDecision(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Verdict != domain.VerdictOrderNow {
		t.Errorf("verdict = %s, expected ORDER_NOW", d.Verdict)
	}
}

func TestParseDecisionRejectsUnknownVerdict(t *testing.T) {
	raw := strings.Replace(validResponse, "ORDER_NOW", "ORDER_SOON", 1)

	_, err := ParseDecision(raw)
	if err == nil {
		t.Fatal("expected parse failure for unknown verdict")
	}
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("error %v should classify as malformed response", err)
	}

	var malformed *domain.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatal("expected *MalformedResponseError")
	}
	if malformed.Raw != raw {
		t.Error("raw oracle text must be attached for diagnostics")
	}
}

func TestParseDecisionRejectsNonJSON(t *testing.T) {
	for _, raw := range []string{"", "no json here", "[1,2,3]"} {
		if _, err := ParseDecision(raw); !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("ParseDecision(%q) expected malformed response error, got %v", raw, err)
		}
	}
}

func TestParseDecisionUnknownRiskDefaultsToMedium(t *testing.T) {
	raw := strings.Replace(validResponse, `"HIGH"`, `"EXTREME"`, 1)

	d, err := ParseDecision(raw)
	if err != nil {
		t.Fatalf("unknown risk must not fail parsing: %v", err)
	}
	if d.RiskLevel != domain.RiskMedium {
		t.Errorf("risk = %s, expected MEDIUM fallback", d.RiskLevel)
	}
}

func TestParseDecisionRejectsNegativeQuantities(t *testing.T) {
	raw := strings.Replace(validResponse, `"expectedDemand": 50`, `"expectedDemand": -5`, 1)
	if _, err := ParseDecision(raw); !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("negative demand should be rejected, got %v", err)
	}

	raw = strings.Replace(validResponse, `"recommendedOrderQty": 45`, `"recommendedOrderQty": -1`, 1)
	if _, err := ParseDecision(raw); !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("negative order quantity should be rejected, got %v", err)
	}
}
