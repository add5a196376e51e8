package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopsight/shopsight/internal/clock"
	"github.com/shopsight/shopsight/internal/config"
	"github.com/shopsight/shopsight/internal/migration"
	"github.com/shopsight/shopsight/internal/observability"
	"github.com/shopsight/shopsight/internal/server"
	"github.com/shopsight/shopsight/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
