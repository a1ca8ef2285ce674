package ai

import (
	"fmt"
	"strings"

	"github.com/smartshelfx/backend-go/internal/domain"
)

// BuildDecisionPrompt renders the decision request for one orchestration
// run. The schema block is a contract with ParseDecision: the oracle must
// answer with exactly this JSON shape.
func BuildDecisionPrompt(snap *domain.InventorySnapshot, periodDays int) string {
	var b strings.Builder

	b.WriteString("You are an AI inventory planner for a warehouse system.\n\n")

	b.WriteString("PRODUCT SNAPSHOT:\n")
	fmt.Fprintf(&b, "- Name: %s\n", snap.ProductName)
	fmt.Fprintf(&b, "- SKU: %s\n", snap.SKU)
	fmt.Fprintf(&b, "- Category: %s\n", snap.Category)
	fmt.Fprintf(&b, "- Current stock: %d\n", snap.CurrentStock)
	fmt.Fprintf(&b, "- Reorder level: %d\n", snap.ReorderLevel)
	fmt.Fprintf(&b, "- Safety stock: %d\n", snap.SafetyStock)
	fmt.Fprintf(&b, "- Lead time (days): %d\n", snap.LeadTimeDays)
	fmt.Fprintf(&b, "- Price: %s\n\n", snap.Price.StringFixed(2))

	fmt.Fprintf(&b, "SALES SNAPSHOT (last %d days):\n", snap.ShortWindowDays)
	fmt.Fprintf(&b, "- Total units sold: %d\n", snap.UnitsSoldShort)
	fmt.Fprintf(&b, "- Average daily sales: %.2f\n", snap.AvgDailySales())
	fmt.Fprintf(&b, "- Total units sold last %d days: %d\n", snap.LongWindowDays, snap.UnitsSoldLong)
	fmt.Fprintf(&b, "- Number of sales transactions: %d\n\n", snap.SalesTxCount)

	b.WriteString("PURCHASE ORDERS PIPELINE:\n")
	fmt.Fprintf(&b, "- Total quantity already on order: %d\n", snap.OnOrderQty)
	fmt.Fprintf(&b, "- Number of open purchase orders: %d\n\n", snap.OpenPOCount)

	b.WriteString("TASK:\n")
	fmt.Fprintf(&b, "1) Forecast demand for the next %d days.\n", periodDays)
	b.WriteString("2) Decide if we should \"ORDER_NOW\", \"WAIT\", or \"MONITOR\".\n")
	b.WriteString("3) Suggest how many units to order now if needed.\n")
	b.WriteString("4) Assess risk level (\"LOW\", \"MEDIUM\", \"HIGH\", \"CRITICAL\").\n")
	b.WriteString("5) Provide a brief explanation and a manager-friendly summary.\n\n")

	b.WriteString("VERY IMPORTANT:\n")
	b.WriteString("- Respond ONLY in strict JSON.\n")
	b.WriteString("- Do NOT include markdown, comments, or extra text.\n")
	b.WriteString("- Use exactly this JSON schema:\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"decision\": \"ORDER_NOW | WAIT | MONITOR\",\n")
	b.WriteString("  \"expectedDemand\": 0,\n")
	fmt.Fprintf(&b, "  \"forecastPeriodDays\": %d,\n", periodDays)
	b.WriteString("  \"recommendedReorderQuantity\": 0,\n")
	b.WriteString("  \"recommendedOrderQty\": 0,\n")
	b.WriteString("  \"riskLevel\": \"LOW | MEDIUM | HIGH | CRITICAL\",\n")
	b.WriteString("  \"explanation\": \"string\",\n")
	b.WriteString("  \"managerSummary\": \"string\"\n")
	b.WriteString("}\n")

	return b.String()
}
