package analytics

import (
	"github.com/shopsight/shopsight/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics",
	fx.Provide(service.New),
)
