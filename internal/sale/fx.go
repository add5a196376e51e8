package sale

import (
	"github.com/shopsight/shopsight/internal/sale/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("sale",
	fx.Provide(repository.Provide),
)
