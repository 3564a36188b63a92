package components

import (
	"dealer-portal/internal/infra/gateway"
	repo_impl "dealer-portal/internal/infra/repository"
	"dealer-portal/internal/infra/sessionstore"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			repo_impl.NewDebtRepository,
			fx.As(new(commands.DebtRepository)),
		),
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
			fx.As(new(queries.AppointmentReadStore)),
		),
		gateway.NewVNPayClient,
		fx.Annotate(
			gateway.NewCommandAdapter,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			sessionstore.NewRedisSessionStore,
			fx.As(new(commands.GatewaySessionStore)),
		),
	),
)
