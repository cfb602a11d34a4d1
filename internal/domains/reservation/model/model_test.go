package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/internal/domains/reservation/model"
	"tablebook/shared/failure"
)

var christmas = time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)

func newTable(t *testing.T) *model.Table {
	t.Helper()

	r, err := model.NewRestaurant("A", 1)
	require.NoError(t, err)

	return r.Tables[0]
}

func TestTable_FreshTableIsNeverBooked(t *testing.T) {
	table := newTable(t)

	for _, d := range []time.Time{christmas, christmas.AddDate(0, 0, 1), time.Time{}, christmas.AddDate(-50, 0, 0)} {
		assert.False(t, table.IsBooked(d), "fresh table booked on %s", d)
	}
}

func TestTable_Book(t *testing.T) {
	table := newTable(t)

	assert.True(t, table.Book(christmas))
	assert.True(t, table.IsBooked(christmas))

	assert.False(t, table.Book(christmas), "second booking of the same day must fail")
	assert.True(t, table.IsBooked(christmas))
	assert.Len(t, table.BookedDates(), 1)

	assert.False(t, table.IsBooked(christmas.AddDate(0, 0, 1)))
}

func TestTable_BookIgnoresTimeOfDay(t *testing.T) {
	table := newTable(t)

	assert.True(t, table.Book(christmas.Add(19*time.Hour)))
	assert.True(t, table.IsBooked(christmas))
	assert.False(t, table.Book(christmas.Add(8*time.Hour)))
}

func TestTable_BookedDatesSorted(t *testing.T) {
	table := newTable(t)

	newYear := christmas.AddDate(0, 0, 7)
	eve := christmas.AddDate(0, 0, -1)

	table.Book(newYear)
	table.Book(christmas)
	table.Book(eve)

	assert.Equal(t, []time.Time{eve, christmas, newYear}, table.BookedDates())
}

func TestNewRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		tableCount int
		wantErr    error
	}{
		{name: "ten tables", tableCount: 10},
		{name: "no tables", tableCount: 0},
		{name: "negative table count", tableCount: -1, wantErr: failure.InvalidTableCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := model.NewRestaurant("A", tt.tableCount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, "A", r.Name)
			assert.Equal(t, tt.tableCount, r.TableCount())
			assert.False(t, r.CreatedAt.IsZero())

			for i, table := range r.Tables {
				assert.Equal(t, i+1, table.Number)
			}
		})
	}
}
