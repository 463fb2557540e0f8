package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/phinics77/back-tracking/internal/model"
)

var (
	profitColor = color.New(color.FgRed)   // CN market convention: red = up
	lossColor   = color.New(color.FgGreen) // green = down
)

// WriteReport renders the evaluation as a terminal table, one row per
// resolved period.
func WriteReport(w io.Writer, rep *model.Report) error {
	fmt.Fprintf(w, "%s  现价 %.2f  投入 %.2f  (%s)\n",
		rep.Symbol, rep.CurrentPrice, rep.Investment,
		rep.GeneratedAt.Format("2006-01-02 15:04"))

	if len(rep.Results) == 0 {
		fmt.Fprintln(w, "无可计算的周期（数据不足）")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"周期", "基准价", "份额", "现值", "盈亏", "收益率"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rep.Results {
		c := lossColor
		if r.IsProfit {
			c = profitColor
		}
		data = append(data, []string{
			r.Label,
			fmt.Sprintf("%.2f", r.BaselinePrice),
			fmt.Sprintf("%.4f", r.ImpliedShares),
			fmt.Sprintf("%.2f", r.CurrentValue),
			c.Sprintf("%+.2f", r.Profit),
			c.Sprintf("%+.2f%%", r.ProfitRatePercent),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
