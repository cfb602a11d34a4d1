package dto

import (
	"fmt"
	"time"

	"tablebook/internal/domains/reservation/model"
)

type AddRestaurantRequest struct {
	Name       string `json:"name"        validate:"required,notblank"`
	TableCount int    `json:"table_count" validate:"gte=0"`
}

func (r *AddRestaurantRequest) ToModel() (*model.Restaurant, error) {
	restaurant, err := model.NewRestaurant(r.Name, r.TableCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build restaurant: %w", err)
	}

	return restaurant, nil
}

type BookTableRequest struct {
	RestaurantName string    `json:"restaurant_name" validate:"required"`
	Date           time.Time `json:"date"`
	TableIndex     int       `json:"table_index"`
}

// FreeTable is one table without a booking on the queried date.
type FreeTable struct {
	Restaurant  string
	TableNumber int
}

func (f FreeTable) Label() string {
	return fmt.Sprintf("%s - Table %d", f.Restaurant, f.TableNumber)
}

// Labels renders free tables in the given order.
func Labels(tables []FreeTable) []string {
	labels := make([]string, len(tables))
	for i, table := range tables {
		labels[i] = table.Label()
	}

	return labels
}

type RestaurantAvailabilityResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AvailableTables int    `json:"available_tables"`
	TotalTables     int    `json:"total_tables"`
}

func (r *RestaurantAvailabilityResponse) FromModel(restaurant *model.Restaurant, available int) {
	r.ID = restaurant.ID
	r.Name = restaurant.Name
	r.AvailableTables = available
	r.TotalTables = restaurant.TableCount()
}

func (r RestaurantAvailabilityResponse) String() string {
	return fmt.Sprintf("%s - Available Tables: %d", r.Name, r.AvailableTables)
}
