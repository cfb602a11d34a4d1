package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/model"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
)

// Restaurant stores restaurants in insertion order until reordered. Names are not unique.
type Restaurant interface {
	Insert(ctx context.Context, restaurant *model.Restaurant) error
	// GetByName returns the first restaurant whose name matches exactly.
	GetByName(ctx context.Context, name string) (*model.Restaurant, error)
	GetAll(ctx context.Context) ([]*model.Restaurant, error)
	Count(ctx context.Context) (int, error)
	// Reorder replaces the stored order. restaurants must be a permutation of the stored ones.
	Reorder(ctx context.Context, restaurants []*model.Restaurant) error
}

// repositoryImpl keeps everything in memory and is not safe for concurrent use.
type repositoryImpl struct {
	restaurants []*model.Restaurant
	otel        otel.Otel
}

func New(otel otel.Otel) Restaurant {
	return &repositoryImpl{
		otel: otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, restaurant *model.Restaurant) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.Finish(&err)

	if restaurant == nil {
		return failure.RestaurantMissing
	}

	scope.SetAttribute(constant.OtelRestaurantAttributeKey, restaurant.Name)

	r.restaurants = append(r.restaurants, restaurant)

	return nil
}

func (r *repositoryImpl) GetByName(ctx context.Context, name string) (res *model.Restaurant, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByName")
	defer scope.Finish(&err)

	scope.SetAttribute(constant.OtelRestaurantAttributeKey, name)

	for _, restaurant := range r.restaurants {
		if restaurant.Name == name {
			return restaurant, nil
		}
	}

	return nil, fmt.Errorf("%s %q: %w", model.EntityName, name, failure.RestaurantNotFound)
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]*model.Restaurant, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	res := make([]*model.Restaurant, len(r.restaurants))
	copy(res, r.restaurants)

	return res, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()

	return len(r.restaurants), nil
}

func (r *repositoryImpl) Reorder(ctx context.Context, restaurants []*model.Restaurant) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Reorder")
	defer scope.Finish(&err)

	if len(restaurants) != len(r.restaurants) {
		return failure.InternalError(fmt.Errorf("reorder with %d restaurants, %d stored", len(restaurants), len(r.restaurants)))
	}

	stored := make(map[*model.Restaurant]int, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		stored[restaurant]++
	}

	for _, restaurant := range restaurants {
		if stored[restaurant] == 0 {
			return failure.InternalError(fmt.Errorf("reorder with unknown %s", model.EntityName))
		}

		stored[restaurant]--
	}

	ordered := make([]*model.Restaurant, len(restaurants))
	copy(ordered, restaurants)
	r.restaurants = ordered

	return nil
}
