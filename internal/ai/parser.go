package ai

import (
	"encoding/json"
	"strings"

	"github.com/smartshelfx/backend-go/internal/domain"
)

// decisionPayload mirrors the JSON schema the prompt demands.
type decisionPayload struct {
	Decision                   string `json:"decision"`
	ExpectedDemand             int    `json:"expectedDemand"`
	ForecastPeriodDays         int    `json:"forecastPeriodDays"`
	RecommendedReorderQuantity int    `json:"recommendedReorderQuantity"`
	RecommendedOrderQty        int    `json:"recommendedOrderQty"`
	RiskLevel                  string `json:"riskLevel"`
	Explanation                string `json:"explanation"`
	ManagerSummary             string `json:"managerSummary"`
}

// ParseDecision turns raw oracle text into a validated decision. Leading
// prose before the first '{' is stripped; everything else is strict. A decision is either fully valid or rejected with the raw text
// attached, never partially trusted.
func ParseDecision(raw string) (*domain.Decision, error) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return nil, &domain.MalformedResponseError{Reason: "no JSON object found", Raw: raw}
	}

	var payload decisionPayload
	dec := json.NewDecoder(strings.NewReader(raw[start:]))
	if err := dec.Decode(&payload); err != nil {
		return nil, &domain.MalformedResponseError{Reason: "invalid JSON: " + err.Error(), Raw: raw}
	}

	verdict, ok := domain.ParseVerdict(payload.Decision)
	if !ok {
		return nil, &domain.MalformedResponseError{Reason: "unknown decision value " + quoteTrunc(payload.Decision), Raw: raw}
	}

	if payload.ExpectedDemand < 0 {
		return nil, &domain.MalformedResponseError{Reason: "negative expected demand", Raw: raw}
	}
	if payload.RecommendedOrderQty < 0 || payload.RecommendedReorderQuantity < 0 {
		return nil, &domain.MalformedResponseError{Reason: "negative recommended quantity", Raw: raw}
	}

	return &domain.Decision{
		Verdict:                    verdict,
		ExpectedDemand:             payload.ExpectedDemand,
		ForecastPeriodDays:         payload.ForecastPeriodDays,
		RecommendedReorderQuantity: payload.RecommendedReorderQuantity,
		RecommendedOrderQty:        payload.RecommendedOrderQty,
		// Risk only shapes alert priority; unknown values degrade to
		// MEDIUM instead of failing the run.
		RiskLevel:      domain.ParseRiskLevel(payload.RiskLevel),
		Explanation:    payload.Explanation,
		ManagerSummary: payload.ManagerSummary,
	}, nil
}

func quoteTrunc(s string) string {
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return `"` + s + `"`
}
