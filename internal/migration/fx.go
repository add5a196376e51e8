package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopsight/shopsight/internal/config"
	customerdomain "github.com/shopsight/shopsight/internal/customer/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	productdomain "github.com/shopsight/shopsight/internal/product/domain"
	saledomain "github.com/shopsight/shopsight/internal/sale/domain"
	"github.com/shopsight/shopsight/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql installs lean on gorm's schema sync.
			if err := conn.AutoMigrate(
				&customerdomain.Customer{},
				&productdomain.Product{},
				&orderdomain.Order{},
				&orderdomain.OrderItem{},
				&saledomain.SaleEvent{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureSampleData(conn, node)
		}
		return nil
	}),
)
