package report

import (
	"fmt"
	"strings"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// Render formats the report as plain text
func Render(r *Report) string {
	var b strings.Builder
	b.WriteString("=========== WALLET REPORT ===========\n\n")

	if len(r.Active) > 0 {
		b.WriteString("> Active Investments:\n")
		writeInvestments(&b, r.Active)
		b.WriteString("\n")
	}

	if len(r.History) > 0 {
		b.WriteString("> Historical Investments:\n")
		writeInvestments(&b, r.History)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "> Current Total Balance: R$ %s\n", r.TotalBalance.StringFixed(2))
	fmt.Fprintf(&b, "> Future Investments Balance: R$ %s\n\n", r.FutureBalance.StringFixed(2))

	b.WriteString("> Investment by Type: \n")
	if len(r.Active) > 0 {
		b.WriteString("- Active investments by type: \n")
		writeBreakdown(&b, r.ActiveByCategory)
		b.WriteString("\n")
	}
	if len(r.History) > 0 {
		b.WriteString("- Historical investments by type: \n")
		writeBreakdown(&b, r.HistoryByCategory)
	}

	return b.String()
}

func writeInvestments(b *strings.Builder, investments []InvestmentSummary) {
	for _, inv := range investments {
		fmt.Fprintf(b, "- %s\n", inv.Description)
	}
}

// writeBreakdown writes every category in canonical order
func writeBreakdown(b *strings.Builder, breakdown map[domain.AssetType]float64) {
	for _, t := range domain.AssetTypes() {
		fmt.Fprintf(b, " | %s: %.2f%%", t, breakdown[t])
	}
}
