package cmd

import (
	"context"
	"log"

	"github.com/fleetsimhq/fleetsim/internal/factories"
	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/fleetsimhq/fleetsim/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generates a demo fleet and loads it into postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		ctx := context.Background()
		pool, err := connectPool(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := postgres.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		total := cfg.SeedDrivers + cfg.SeedRoutes + cfg.SeedOrders
		bar := progressbar.Default(int64(total), "seeding")

		driverFactory := &factories.DriverFactory{}
		drivers := make([]*models.Driver, cfg.SeedDrivers)
		for i := range drivers {
			drivers[i] = driverFactory.CreateDriver()
			bar.Add(1)
		}

		routeFactory := &factories.RouteFactory{}
		routes := make([]*models.Route, cfg.SeedRoutes)
		for i := range routes {
			routes[i] = routeFactory.CreateRoute(i + 1)
			bar.Add(1)
		}

		orderFactory := &factories.OrderFactory{}
		orders := make([]*models.Order, cfg.SeedOrders)
		for i := range orders {
			orders[i] = orderFactory.CreateOrder(i+1, cfg.SeedRoutes)
			bar.Add(1)
		}

		if err := postgres.NewDriverRepository(pool).ReplaceAll(ctx, drivers); err != nil {
			log.Fatalf("Failed to seed drivers: %v", err)
		}
		if err := postgres.NewRouteRepository(pool).ReplaceAll(ctx, routes); err != nil {
			log.Fatalf("Failed to seed routes: %v", err)
		}
		if err := postgres.NewOrderRepository(pool).ReplaceAll(ctx, orders); err != nil {
			log.Fatalf("Failed to seed orders: %v", err)
		}

		log.Printf("Seeded %d drivers, %d routes, %d orders", cfg.SeedDrivers, cfg.SeedRoutes, cfg.SeedOrders)
	},
}

func init() {
	seedCmd.Flags().Int("seed-drivers", 20, "Number of demo drivers")
	seedCmd.Flags().Int("seed-routes", 15, "Number of demo routes")
	seedCmd.Flags().Int("seed-orders", 100, "Number of demo orders")

	viper.BindPFlag("seed_drivers", seedCmd.Flags().Lookup("seed-drivers"))
	viper.BindPFlag("seed_routes", seedCmd.Flags().Lookup("seed-routes"))
	viper.BindPFlag("seed_orders", seedCmd.Flags().Lookup("seed-orders"))

	rootCmd.AddCommand(seedCmd)
}
