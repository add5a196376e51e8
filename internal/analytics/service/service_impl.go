package service

import (
	"github.com/shopsight/shopsight/internal/analytics/domain"
	"github.com/shopsight/shopsight/internal/clock"
	"github.com/shopsight/shopsight/internal/config"
	customerdomain "github.com/shopsight/shopsight/internal/customer/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	productdomain "github.com/shopsight/shopsight/internal/product/domain"
	saledomain "github.com/shopsight/shopsight/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Insights *config.InsightsHolder

	Customers customerdomain.Repository
	Orders    orderdomain.Repository
	Products  productdomain.Repository
	Sales     saledomain.Repository
}

// Service computes dashboard metrics as pure folds over repository
// snapshots. It holds no mutable state; the store handle is injected so
// concurrent requests never interfere.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	insights *config.InsightsHolder

	customers customerdomain.Repository
	orders    orderdomain.Repository
	products  productdomain.Repository
	sales     saledomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("analytics.service"),
		clock:     p.Clock,
		insights:  p.Insights,
		customers: p.Customers,
		orders:    p.Orders,
		products:  p.Products,
		sales:     p.Sales,
	}
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return domain.DefaultLimit
	}
	return limit
}
