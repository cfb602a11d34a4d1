package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"tablebook/shared/failure"
	"tablebook/shared/timezone"
)

const (
	EntityName = "restaurant"
)

// Table is one bookable slot of a restaurant. Bookings are whole calendar days.
type Table struct {
	Number      int
	bookedDates map[string]time.Time
}

func newTable(number int) *Table {
	return &Table{
		Number:      number,
		bookedDates: make(map[string]time.Time),
	}
}

// Book reserves the table for the calendar day of date. It reports false,
// leaving the table untouched, when that day is already booked.
func (t *Table) Book(date time.Time) bool {
	key := timezone.DayKey(date)
	if _, ok := t.bookedDates[key]; ok {
		return false
	}

	t.bookedDates[key] = date

	return true
}

func (t *Table) IsBooked(date time.Time) bool {
	_, ok := t.bookedDates[timezone.DayKey(date)]

	return ok
}

// BookedDates returns the booked days in ascending order.
func (t *Table) BookedDates() []time.Time {
	dates := make([]time.Time, 0, len(t.bookedDates))
	for _, d := range t.bookedDates {
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool {
		return timezone.DayKey(dates[i]) < timezone.DayKey(dates[j])
	})

	return dates
}

// Restaurant owns a fixed set of tables; the table at index i is numbered i+1.
type Restaurant struct {
	ID        string
	Name      string
	Tables    []*Table
	CreatedAt time.Time
}

func NewRestaurant(name string, tableCount int) (*Restaurant, error) {
	if tableCount < 0 {
		return nil, fmt.Errorf("restaurant %q with %d tables: %w", name, tableCount, failure.InvalidTableCount)
	}

	tables := make([]*Table, tableCount)
	for i := range tables {
		tables[i] = newTable(i + 1)
	}

	return &Restaurant{
		ID:        uuid.NewString(),
		Name:      name,
		Tables:    tables,
		CreatedAt: timezone.Now(),
	}, nil
}

func (r *Restaurant) TableCount() int {
	return len(r.Tables)
}
