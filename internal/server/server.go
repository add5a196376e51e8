package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopsight/shopsight/internal/analytics"
	analyticsdomain "github.com/shopsight/shopsight/internal/analytics/domain"
	"github.com/shopsight/shopsight/internal/config"
	"github.com/shopsight/shopsight/internal/customer"
	"github.com/shopsight/shopsight/internal/observability"
	obsmiddleware "github.com/shopsight/shopsight/internal/observability/logger"
	obsmetrics "github.com/shopsight/shopsight/internal/observability/metrics"
	"github.com/shopsight/shopsight/internal/order"
	"github.com/shopsight/shopsight/internal/product"
	"github.com/shopsight/shopsight/internal/sale"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	customer.Module,
	product.Module,
	order.Module,
	sale.Module,
	analytics.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)

func NewEngine(cfg config.Config, obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{Debug: obsCfg.Debug()}))
	r.Use(CORS(cfg.CORSAllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	AnalyticsSvc analyticsdomain.Service
	ObsMetrics   *obsmetrics.Metrics `optional:"true"`
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	analyticsSvc analyticsdomain.Service
	obsMetrics   *obsmetrics.Metrics
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("http.server"),
		analyticsSvc: p.AnalyticsSvc,
		obsMetrics:   p.ObsMetrics,
	}

	svc.registerDashboardRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerDashboardRoutes() {
	dashboard := s.engine.Group("/api/dashboard")

	dashboard.GET("/stats", s.GetDashboardStats)
	dashboard.GET("/sales-time-series", s.GetSalesTimeSeries)
	dashboard.GET("/products", s.GetTopProducts)
	dashboard.GET("/orders", s.GetRecentOrders)
	dashboard.GET("/customers", s.GetTopCustomers)
	dashboard.GET("/ai-insights", s.GetInsights)
}

func RunHTTP(lc fx.Lifecycle, s *Server, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: s.Engine(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
