package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tablebook/internal/domains/reservation/model/dto"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
	"tablebook/shared/validator"
)

// LoadRestaurants adds one restaurant per "name,tableCount" line and returns how many were added.
// Blank lines are ignored; malformed lines are logged and skipped.
func (s *serviceImpl) LoadRestaurants(ctx context.Context, source io.Reader) int {
	added, err := s.loadRestaurants(ctx, source)
	if err != nil {
		logFailure("LoadRestaurants", err)
	}

	return added
}

func (s *serviceImpl) LoadRestaurantsFromFile(ctx context.Context, path string) int {
	if err := validator.ValidateVar(path, "required,notblank"); err != nil {
		logFailure("LoadRestaurantsFromFile", fmt.Errorf("path: %w", err))

		return 0
	}

	file, err := os.Open(path)
	if err != nil {
		logFailure("LoadRestaurantsFromFile", failure.BadRequest(err))

		return 0
	}
	defer file.Close()

	log.Debug().Str("path", path).Msg("loading restaurants")

	return s.LoadRestaurants(ctx, file)
}

func (s *serviceImpl) loadRestaurants(ctx context.Context, source io.Reader) (added int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoadRestaurants")
	defer scope.Finish(&err)
	defer recoverFailure("LoadRestaurants", &err)

	reader := bufio.NewReader(source)
	lineNo := 0

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return added, fmt.Errorf("failed to read restaurants: %w", readErr)
		}

		if raw == constant.Empty && readErr != nil {
			break
		}

		lineNo++

		if s.loadLine(ctx, lineNo, raw) {
			added++
		}

		if readErr != nil {
			break
		}
	}

	scope.SetAttribute("restaurants.added", added)

	if total, countErr := s.repo.Count(ctx); countErr == nil {
		log.Debug().Int("added", added).Int("total", total).Msg("restaurants loaded")
	}

	return added, nil
}

// loadLine adds the restaurant described by one raw line and reports whether it was added.
func (s *serviceImpl) loadLine(ctx context.Context, lineNo int, raw string) bool {
	line := strings.TrimSpace(raw)
	if line == constant.Empty {
		return false
	}

	req, err := parseRestaurantLine(line)
	if err != nil {
		log.Warn().Err(err).Int("line", lineNo).Int("length", len(line)).Msg("skipping malformed restaurant line")

		return false
	}

	if err = s.addRestaurant(ctx, req); err != nil {
		logFailure("LoadRestaurants", fmt.Errorf("line %d: %w", lineNo, err))

		return false
	}

	return true
}

func parseRestaurantLine(line string) (dto.AddRestaurantRequest, error) {
	parts := strings.Split(line, constant.CSVSeparator)
	if len(parts) != constant.CSVFieldCount {
		return dto.AddRestaurantRequest{}, failure.BadRequestFromString(
			fmt.Sprintf("expected %d comma-separated fields, got %d", constant.CSVFieldCount, len(parts)))
	}

	tableCount, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return dto.AddRestaurantRequest{}, failure.BadRequest(fmt.Errorf("table count: %w", err))
	}

	return dto.AddRestaurantRequest{
		Name:       strings.TrimSpace(parts[0]),
		TableCount: tableCount,
	}, nil
}
