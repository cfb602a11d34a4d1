package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tablebook/shared/constant"
	"tablebook/shared/timezone"
)

type booking struct {
	restaurant string
	tableIndex int
}

func (c *CLI) newLoadCmd() *cobra.Command {
	var (
		file     string
		date     string
		bookings []string
	)

	cmd := &cobra.Command{
		Use:     "load",
		Short:   "Load restaurants from a CSV file, apply bookings and report availability",
		Example: "  tablebook load --file restaurants.csv --date 2023-12-25 --book A:3 --book B:0",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == constant.Empty {
				return errors.New("no restaurant file: set --file or RESERVATION_SEED_FILE")
			}

			day, err := parseDay(date)
			if err != nil {
				return err
			}

			parsed := make([]booking, 0, len(bookings))
			for _, value := range bookings {
				b, err := parseBooking(value)
				if err != nil {
					return err
				}

				parsed = append(parsed, b)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			added := c.Service.LoadRestaurantsFromFile(ctx, file)
			log.Info().Str("file", file).Int("restaurants", added).Msg("Restaurants loaded")

			for _, b := range parsed {
				ok := c.Service.BookTable(ctx, b.restaurant, day, b.tableIndex)
				fmt.Fprintf(out, "Book %s table %d: %t\n", b.restaurant, b.tableIndex, ok)
			}

			c.printReport(ctx, out, day)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", c.Config.Reservation.SeedFile, "CSV file with name,tableCount lines")
	cmd.Flags().StringVarP(&date, "date", "d", constant.Empty, "booking day as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringArrayVarP(&bookings, "book", "b", nil, "booking as restaurant:tableIndex, repeatable")

	return cmd
}

func parseDay(value string) (time.Time, error) {
	if value == constant.Empty {
		now := timezone.Now()

		return timezone.Date(now.Year(), now.Month(), now.Day()), nil
	}

	day, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", value, err)
	}

	return day, nil
}

// parseBooking splits on the last separator so restaurant names may contain it.
func parseBooking(value string) (booking, error) {
	idx := strings.LastIndex(value, constant.BookingSepChar)
	if idx <= 0 {
		return booking{}, fmt.Errorf("invalid --book %q: expected restaurant%stableIndex", value, constant.BookingSepChar)
	}

	tableIndex, err := strconv.Atoi(strings.TrimSpace(value[idx+1:]))
	if err != nil {
		return booking{}, fmt.Errorf("invalid --book %q: %w", value, err)
	}

	return booking{
		restaurant: strings.TrimSpace(value[:idx]),
		tableIndex: tableIndex,
	}, nil
}
