// backend-go/cmd/oracle-stub/main.go
//
// oracle-stub is a local stand-in for the decision oracle's chat-completions
// endpoint. It answers every request with a canned strict-JSON decision, so
// the server can be exercised end to end without an API key. Optionally the
// verdict can be forced via the VERDICT env var (ORDER_NOW | WAIT | MONITOR).
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
)

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const orderNowDecision = `{
  "decision": "ORDER_NOW",
  "expectedDemand": 120,
  "forecastPeriodDays": 14,
  "recommendedReorderQuantity": 45,
  "recommendedOrderQty": 45,
  "riskLevel": "HIGH",
  "explanation": "Current stock covers roughly 6 days at the observed sales velocity, which is inside the vendor lead time.",
  "managerSummary": "Stock is running out faster than it can be replenished. Order 45 units now."
}`

const waitDecision = `{
  "decision": "WAIT",
  "expectedDemand": 30,
  "forecastPeriodDays": 14,
  "recommendedReorderQuantity": 0,
  "recommendedOrderQty": 0,
  "riskLevel": "LOW",
  "explanation": "Stock on hand plus inbound orders comfortably cover projected demand.",
  "managerSummary": "No action needed this cycle."
}`

const monitorDecision = `{
  "decision": "MONITOR",
  "expectedDemand": 60,
  "forecastPeriodDays": 14,
  "recommendedReorderQuantity": 20,
  "recommendedOrderQty": 0,
  "riskLevel": "MEDIUM",
  "explanation": "Demand is trending up; stock is adequate for now but the margin is shrinking.",
  "managerSummary": "Watch this product. Reassess within a week."
}`

func decisionFor(verdict string) string {
	switch verdict {
	case "WAIT":
		return waitDecision
	case "MONITOR":
		return monitorDecision
	default:
		return orderNowDecision
	}
}

func main() {
	verdict := os.Getenv("VERDICT")
	if verdict == "" {
		verdict = "ORDER_NOW"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	r := mux.NewRouter()
	r.HandleFunc("/chat/completions", func(w http.ResponseWriter, req *http.Request) {
		var resp chatResponse
		resp.Choices = make([]struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}, 1)
		resp.Choices[0].Message.Content = decisionFor(verdict)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("encode response: %v", err)
		}
	}).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("oracle-stub listening on :%s (verdict=%s)", port, verdict)
	log.Fatal(srv.ListenAndServe())
}
