package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/service"
	"tablebook/shared/constant"
)

const shutdownTimeout = 5 * time.Second

type CLI struct {
	Config  *config.Config
	Service service.Reservation
	Otel    otel.Otel
	root    *cobra.Command
}

func New(cfg *config.Config, svc service.Reservation, ot otel.Otel) *CLI {
	c := &CLI{
		Config:  cfg,
		Service: svc,
		Otel:    ot,
	}

	c.root = c.newRootCmd()

	return c
}

// Command exposes the root command so callers can override args and output.
func (c *CLI) Command() *cobra.Command {
	return c.root
}

func (c *CLI) Execute() error {
	defer c.shutdown()

	if err := c.root.ExecuteContext(context.Background()); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func (c *CLI) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := c.Otel.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           c.Config.App.Name,
		Short:         "In-memory restaurant table booking tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDemo(cmd)
		},
	}

	root.AddCommand(c.newDemoCmd())
	root.AddCommand(c.newLoadCmd())
	root.AddCommand(c.newVersionCmd())

	return root
}

// printReport writes the free tables for date, then ranks restaurants by availability.
func (c *CLI) printReport(ctx context.Context, out io.Writer, date time.Time) {
	ctx, scope := c.Otel.NewScope(ctx, constant.OtelCLIScopeName, constant.OtelCLIScopeName+".Report")
	defer scope.End()

	fmt.Fprintf(out, "Free Tables on %s:\n", date.Format(constant.DateLayout))

	for _, label := range c.Service.FindAllFreeTables(ctx, date) {
		fmt.Fprintln(out, label)
	}

	c.Service.SortRestaurantsByAvailability(ctx, date)

	fmt.Fprintln(out, "Sorted Restaurants by Availability:")

	for _, availability := range c.Service.Availability(ctx, date) {
		fmt.Fprintln(out, availability.String())
	}
}
