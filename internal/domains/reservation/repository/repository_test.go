package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/infras/otel/mocks"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/repository"
	"tablebook/shared/failure"
)

func mustRestaurant(t *testing.T, name string, tables int) *model.Restaurant {
	t.Helper()

	r, err := model.NewRestaurant(name, tables)
	require.NoError(t, err)

	return r
}

func TestRepository_InsertAndGetAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	a := mustRestaurant(t, "A", 10)
	b := mustRestaurant(t, "B", 5)

	require.NoError(t, repo.Insert(ctx, a))
	require.NoError(t, repo.Insert(ctx, b))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*model.Restaurant{a, b}, all)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.ErrorIs(t, repo.Insert(ctx, nil), failure.RestaurantMissing)
}

func TestRepository_GetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	a := mustRestaurant(t, "A", 1)
	require.NoError(t, repo.Insert(ctx, a))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0] = nil

	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Same(t, a, again[0])
}

func TestRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	first := mustRestaurant(t, "A", 2)
	duplicate := mustRestaurant(t, "A", 7)

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, duplicate))

	tests := []struct {
		name    string
		lookup  string
		want    *model.Restaurant
		wantErr error
	}{
		{name: "first match wins", lookup: "A", want: first},
		{name: "case sensitive", lookup: "a", wantErr: failure.RestaurantNotFound},
		{name: "missing", lookup: "Nonexistent", wantErr: failure.RestaurantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByName(ctx, tt.lookup)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestRepository_Reorder(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	a := mustRestaurant(t, "A", 1)
	b := mustRestaurant(t, "B", 1)
	c := mustRestaurant(t, "C", 1)

	for _, r := range []*model.Restaurant{a, b, c} {
		require.NoError(t, repo.Insert(ctx, r))
	}

	require.NoError(t, repo.Reorder(ctx, []*model.Restaurant{c, a, b}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*model.Restaurant{c, a, b}, all)

	stranger := mustRestaurant(t, "D", 1)

	assert.Error(t, repo.Reorder(ctx, []*model.Restaurant{a, b}), "shorter order")
	assert.Error(t, repo.Reorder(ctx, []*model.Restaurant{a, b, stranger}), "unknown restaurant")
	assert.Error(t, repo.Reorder(ctx, []*model.Restaurant{a, a, b}), "duplicated restaurant")

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*model.Restaurant{c, a, b}, all, "failed reorder must not change the order")
}
