package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/model/dto"
	"tablebook/internal/domains/reservation/repository"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
	"tablebook/shared/logger"
	"tablebook/shared/validator"
)

// Reservation manages restaurants and their table bookings.
//
// Operations never return errors: failures are logged and the caller gets false, 0 or an
// empty slice. An implementation is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Reservation interface {
	AddRestaurant(ctx context.Context, name string, tableCount int)
	BookTable(ctx context.Context, restaurantName string, date time.Time, tableIndex int) bool
	FindAllFreeTables(ctx context.Context, date time.Time) []string
	SortRestaurantsByAvailability(ctx context.Context, date time.Time)
	CountAvailableTables(ctx context.Context, restaurant *model.Restaurant, date time.Time) int
	CountBookedTables(ctx context.Context, restaurant *model.Restaurant, date time.Time) int
	Restaurants(ctx context.Context) []*model.Restaurant
	Availability(ctx context.Context, date time.Time) []dto.RestaurantAvailabilityResponse
	LoadRestaurants(ctx context.Context, source io.Reader) int
	LoadRestaurantsFromFile(ctx context.Context, path string) int
}

type serviceImpl struct {
	repo repository.Restaurant
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Restaurant, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) AddRestaurant(ctx context.Context, name string, tableCount int) {
	err := s.addRestaurant(ctx, dto.AddRestaurantRequest{Name: name, TableCount: tableCount})
	if err != nil {
		logFailure("AddRestaurant", err)
	}
}

func (s *serviceImpl) addRestaurant(ctx context.Context, req dto.AddRestaurantRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRestaurant")
	defer scope.Finish(&err)
	defer recoverFailure("AddRestaurant", &err)

	scope.SetAttribute(constant.OtelRestaurantAttributeKey, req.Name)

	if err = validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("invalid restaurant: %w", err)
	}

	restaurant, err := req.ToModel()
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, restaurant); err != nil {
		return fmt.Errorf("failed to store restaurant: %w", err)
	}

	log.Debug().
		Str("id", restaurant.ID).
		Str("name", restaurant.Name).
		Int("tables", restaurant.TableCount()).
		Msg("restaurant added")

	return nil
}

func (s *serviceImpl) BookTable(ctx context.Context, restaurantName string, date time.Time, tableIndex int) bool {
	booked, err := s.bookTable(ctx, dto.BookTableRequest{
		RestaurantName: restaurantName,
		Date:           date,
		TableIndex:     tableIndex,
	})
	if err != nil {
		logFailure("BookTable", err)

		return false
	}

	return booked
}

func (s *serviceImpl) bookTable(ctx context.Context, req dto.BookTableRequest) (booked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookTable")
	defer scope.Finish(&err)
	defer recoverFailure("BookTable", &err)

	scope.SetAttribute(constant.OtelRestaurantAttributeKey, req.RestaurantName)
	scope.SetAttribute(constant.OtelDateAttributeKey, req.Date)
	scope.SetAttribute(constant.OtelTableAttributeKey, req.TableIndex)

	if err = validator.ValidateStruct(&req); err != nil {
		return false, fmt.Errorf("invalid booking: %w", err)
	}

	restaurant, err := s.repo.GetByName(ctx, req.RestaurantName)
	if err != nil {
		return false, fmt.Errorf("failed to find restaurant: %w", err)
	}

	if req.TableIndex < 0 || req.TableIndex >= restaurant.TableCount() {
		return false, fmt.Errorf("table index %d for %q with %d tables: %w",
			req.TableIndex, restaurant.Name, restaurant.TableCount(), failure.TableIndexOutOfRange)
	}

	if !restaurant.Tables[req.TableIndex].Book(req.Date) {
		log.Debug().
			Err(failure.TableAlreadyBooked).
			Str("restaurant", restaurant.Name).
			Int("table_index", req.TableIndex).
			Time("date", req.Date).
			Msg("booking rejected")

		return false, nil
	}

	scope.AddEvent("table booked")

	return true, nil
}

func (s *serviceImpl) FindAllFreeTables(ctx context.Context, date time.Time) []string {
	tables, err := s.findFreeTables(ctx, date)
	if err != nil {
		logFailure("FindAllFreeTables", err)

		return []string{}
	}

	return dto.Labels(tables)
}

func (s *serviceImpl) findFreeTables(ctx context.Context, date time.Time) (res []dto.FreeTable, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAllFreeTables")
	defer scope.Finish(&err)
	defer recoverFailure("FindAllFreeTables", &err)

	scope.SetAttribute(constant.OtelDateAttributeKey, date)

	restaurants, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurants: %w", err)
	}

	res = []dto.FreeTable{}

	for _, restaurant := range restaurants {
		for _, table := range restaurant.Tables {
			if table.IsBooked(date) {
				continue
			}

			res = append(res, dto.FreeTable{
				Restaurant:  restaurant.Name,
				TableNumber: s.labelNumber(table),
			})
		}
	}

	return res, nil
}

// labelNumber is the table number shown to users. Legacy mode keeps the historical
// Number+1 labels, which sit two above the storage index.
func (s *serviceImpl) labelNumber(table *model.Table) int {
	if s.cfg.Reservation.LegacyTableLabels {
		return table.Number + 1
	}

	return table.Number
}

func (s *serviceImpl) SortRestaurantsByAvailability(ctx context.Context, date time.Time) {
	if err := s.sortByAvailability(ctx, date); err != nil {
		logFailure("SortRestaurantsByAvailability", err)
	}
}

func (s *serviceImpl) sortByAvailability(ctx context.Context, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SortRestaurantsByAvailability")
	defer scope.Finish(&err)
	defer recoverFailure("SortRestaurantsByAvailability", &err)

	scope.SetAttribute(constant.OtelDateAttributeKey, date)

	restaurants, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get restaurants: %w", err)
	}

	available := make(map[*model.Restaurant]int, len(restaurants))
	for _, restaurant := range restaurants {
		available[restaurant] = countAvailable(restaurant, date)
	}

	slices.SortStableFunc(restaurants, func(a, b *model.Restaurant) int {
		return cmp.Compare(available[b], available[a])
	})

	if err = s.repo.Reorder(ctx, restaurants); err != nil {
		return fmt.Errorf("failed to reorder restaurants: %w", err)
	}

	return nil
}

func (s *serviceImpl) CountAvailableTables(_ context.Context, restaurant *model.Restaurant, date time.Time) int {
	if restaurant == nil {
		logFailure("CountAvailableTables", failure.RestaurantMissing)

		return 0
	}

	return countAvailable(restaurant, date)
}

func (s *serviceImpl) CountBookedTables(_ context.Context, restaurant *model.Restaurant, date time.Time) int {
	if restaurant == nil {
		logFailure("CountBookedTables", failure.RestaurantMissing)

		return 0
	}

	return restaurant.TableCount() - countAvailable(restaurant, date)
}

func countAvailable(restaurant *model.Restaurant, date time.Time) int {
	count := 0

	for _, table := range restaurant.Tables {
		if !table.IsBooked(date) {
			count++
		}
	}

	return count
}

func (s *serviceImpl) Restaurants(ctx context.Context) []*model.Restaurant {
	restaurants, err := s.repo.GetAll(ctx)
	if err != nil {
		logFailure("Restaurants", err)

		return []*model.Restaurant{}
	}

	return restaurants
}

func (s *serviceImpl) Availability(ctx context.Context, date time.Time) []dto.RestaurantAvailabilityResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()

	restaurants := s.Restaurants(ctx)

	res := make([]dto.RestaurantAvailabilityResponse, len(restaurants))
	for i, restaurant := range restaurants {
		res[i].FromModel(restaurant, countAvailable(restaurant, date))
	}

	return res
}

// recoverFailure converts a panic in an operation into an internal failure.
// It must be deferred directly by the operation.
func recoverFailure(op string, errp *error) {
	if r := recover(); r != nil {
		*errp = failure.InternalError(fmt.Errorf("%s: unexpected panic: %v", op, r))
	}
}

func logFailure(op string, err error) {
	code := failure.GetCode(err)

	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(fmt.Errorf("%s: %w", op, err))

		return
	}

	log.Error().
		Err(err).
		Str("operation", op).
		Int("code", code).
		Msg("reservation operation failed")
}
