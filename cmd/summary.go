package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/model"
	"github.com/theirongolddev/costbook/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print the per-component cost summary of a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	book, err := loadBook(args[0])
	if err != nil {
		return err
	}

	if book.Empty() {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No budgets or detail lines in this file."))
		return nil
	}

	rows := book.Summary()
	tot := summary.Totals(rows)
	spent := tot.Incurred.Add(tot.Forecast)

	fmt.Println()
	fmt.Println(cli.RenderTitle("COST SUMMARY  " + filepath.Base(args[0])))
	fmt.Println()
	fmt.Print(cli.RenderTable(summaryTable(rows, money(), "By component")))
	fmt.Println(cli.RenderMuted(fmt.Sprintf("  %s budgets, %s detail lines, %s of covered spent",
		cli.FormatNumber(int64(len(book.Budgets()))),
		cli.FormatNumber(int64(len(book.Details()))),
		cli.FormatPercent(cli.Ratio(spent, tot.Covered)))))
	return nil
}

func summaryTable(rows []model.CostSummaryRow, m cli.Money, title string) cli.Table {
	t := cli.Table{
		Title:   title,
		Headers: []string{"Component", "Covered", "Incurred", "Forecast", "Profit/Loss", "Standing"},
	}
	for _, r := range rows {
		standing := summary.Classify(r)
		t.Rows = append(t.Rows, []string{
			r.Component,
			m.Format(r.Covered),
			m.Format(r.Incurred),
			m.Format(r.Forecast),
			m.Format(r.ProfitLoss),
			standing.String(),
		})
		t.RowColors = append(t.RowColors, standingColor(standing))
	}

	tot := summary.Totals(rows)
	t.Rows = append(t.Rows, []string{"---"}, []string{
		"Total",
		m.Format(tot.Covered),
		m.Format(tot.Incurred),
		m.Format(tot.Forecast),
		m.Format(tot.ProfitLoss),
		model.CostSummaryRow{ProfitLoss: tot.ProfitLoss}.Standing().String(),
	})
	return t
}

func standingColor(s model.Standing) lipgloss.Color {
	if s == model.StandingSurplus {
		return cli.ColorGreen
	}
	return cli.ColorRed
}
