package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tablebook/shared/timezone"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample booking session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDemo(cmd)
		},
	}
}

func (c *CLI) runDemo(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	c.Service.AddRestaurant(ctx, "A", 10)
	c.Service.AddRestaurant(ctx, "B", 5)

	date := timezone.Date(2023, time.December, 25)

	fmt.Fprintln(out, c.Service.BookTable(ctx, "A", date, 3))
	fmt.Fprintln(out, c.Service.BookTable(ctx, "A", date, 3))

	c.printReport(ctx, out, date)

	return nil
}
