package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"order-hub/core/config"
	"order-hub/core/loader"
	"order-hub/core/logger"
	"order-hub/core/metrics"
	"order-hub/core/middleware/rayid"
	"order-hub/core/server"
	"order-hub/feature/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "order-hub/docs/swagger"
)

// @title Order Hub API
// @version 1.0
// @description Read-only API over orders reconciled from System A and System B exports.
// @host localhost:8080
// @BasePath /api/order-hub

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the order hub server",
	Long:  `Loads both order exports into a unified snapshot and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build and load the reconciliation engine
		ctx := context.Background()
		engine, err := newEngine(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize order sources", zap.Error(err))
		}

		reg := metrics.NewRegistry()
		engine.SetObserver(reg)

		// A malformed export halts startup
		if _, err := engine.Load(ctx); err != nil {
			logg.Fatal("Failed to load orders", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          server.ErrorHandler(logg),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(orders.NewFeature(engine, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())
		app.Use(recover.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowOrigins(),
			AllowMethods: "GET,OPTIONS",
		}))

		// Public documentation and metrics
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

		// 6. Load Features
		if err := mgr.LoadAll(app.Group(cfg.Server.Prefix())); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Optional browser front-end
		if cfg.Server.StaticDir != "" {
			app.Static("/", cfg.Server.StaticDir)
			logg.Info("Serving static front-end", zap.String("dir", cfg.Server.StaticDir))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base_path", cfg.Server.Prefix()),
				zap.Int("orders", engine.Snapshot().Len()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
