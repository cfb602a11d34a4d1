//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/transport/cli"

	reservationRepository "tablebook/internal/domains/reservation/repository"
	reservationService "tablebook/internal/domains/reservation/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	reservationDomain,
)

func InitializeCLI() *cli.CLI {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		cli.New,
	)

	return &cli.CLI{}
}
