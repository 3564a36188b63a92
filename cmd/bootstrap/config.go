package bootstrap

import (
	"dealer-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.VNPayConfig { return cfg.VNPay },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
	),
)
