package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/model"
)

var flagComponent string

var detailsCmd = &cobra.Command{
	Use:   "details FILE",
	Short: "List the detail lines of one component",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func init() {
	detailsCmd.Flags().StringVarP(&flagComponent, "component", "c", "", "Component name (exact match)")
	_ = detailsCmd.MarkFlagRequired("component")
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(_ *cobra.Command, args []string) error {
	book, err := loadBook(args[0])
	if err != nil {
		return err
	}

	details := book.DetailsForComponent(flagComponent)
	if len(details) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  No detail lines for %q.", flagComponent)))
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(detailsTable(details, money(), flagComponent)))
	return nil
}

func detailsTable(details []model.DetailRecord, m cli.Money, component string) cli.Table {
	t := cli.Table{
		Title:   "Details  " + component,
		Headers: []string{"ID", "Kind", "Amount", "Description", "Created"},
	}
	for _, d := range details {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(d.ID),
			d.Kind.String(),
			m.Format(d.Amount),
			d.Description,
			d.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return t
}
