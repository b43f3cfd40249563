package cmd

import (
	"context"
	"log"

	"github.com/fleetsimhq/fleetsim/internal/importer"
	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/fleetsimhq/fleetsim/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var (
	driversFile string
	routesFile  string
	ordersFile  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Imports drivers, routes and orders from CSV files",
	Long: `Replaces the stored fleet with the contents of the given CSV files.
Drivers use name,shift_hours,past_week_hours (past week pipe-separated);
routes use route_id,distance_km,traffic_level,base_time_min;
orders use order_id,value_rs,route_id,delivery_time.`,
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

		if driversFile != "" {
			drivers, err := importer.ReadDrivers(driversFile)
			if err != nil {
				log.Fatalf("Failed to import drivers: %v", err)
			}
			if err := postgres.NewDriverRepository(pool).ReplaceAll(ctx, drivers); err != nil {
				log.Fatalf("Failed to store drivers: %v", err)
			}
			log.Printf("Imported %d drivers", len(drivers))
		}

		if routesFile != "" {
			routes, err := importer.ReadRoutes(routesFile)
			if err != nil {
				log.Fatalf("Failed to import routes: %v", err)
			}
			if err := postgres.NewRouteRepository(pool).ReplaceAll(ctx, routes); err != nil {
				log.Fatalf("Failed to store routes: %v", err)
			}
			log.Printf("Imported %d routes", len(routes))
		}

		if ordersFile != "" {
			orders, err := importer.ReadOrders(ordersFile)
			if err != nil {
				log.Fatalf("Failed to import orders: %v", err)
			}
			if err := postgres.NewOrderRepository(pool).ReplaceAll(ctx, orders); err != nil {
				log.Fatalf("Failed to store orders: %v", err)
			}
			log.Printf("Imported %d orders", len(orders))
		}
	},
}

func init() {
	importCmd.Flags().StringVar(&driversFile, "drivers-file", "", "Drivers CSV path")
	importCmd.Flags().StringVar(&routesFile, "routes-file", "", "Routes CSV path")
	importCmd.Flags().StringVar(&ordersFile, "orders-file", "", "Orders CSV path")

	rootCmd.AddCommand(importCmd)
}
