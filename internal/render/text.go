package render

import (
	"fmt"
	"strings"

	"github.com/phinics77/back-tracking/internal/model"
)

// FormatReport formats the evaluation into an HTML message for Telegram.
func FormatReport(rep *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>定投回看</b> %s | %s\n\n",
		rep.Symbol, rep.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("当前价格: %.2f\n", rep.CurrentPrice))
	b.WriteString(fmt.Sprintf("投入金额: %.2f\n\n", rep.Investment))

	if len(rep.Results) == 0 {
		b.WriteString("无可计算的周期（数据不足）\n")
		return b.String()
	}

	for _, r := range rep.Results {
		mark := "📈"
		if !r.IsProfit {
			mark = "📉"
		}
		b.WriteString(fmt.Sprintf("%s %s 买入价 %.2f → 现值 %.2f (%+.2f%%)\n",
			mark, r.Label, r.BaselinePrice, r.CurrentValue, r.ProfitRatePercent))
	}
	return b.String()
}
