package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fleetsimhq/fleetsim/internal/metrics"
	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/fleetsimhq/fleetsim/internal/repositories/postgres"
	"github.com/fleetsimhq/fleetsim/internal/simulator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fleetsim",
	Short: "Runs fleet-logistics delivery simulations",
	Long: `fleetsim assigns pending orders to a driver roster under capacity and
fatigue constraints, derives per-order financial outcomes and commits
fleet-wide KPIs as one immutable simulation run record.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := connectPool(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if cfg.MetricsAddr != "" {
			metrics.Register()
			go serveMetrics(cfg.MetricsAddr)
		}

		sim := simulator.NewSimulator(
			cfg,
			postgres.NewDriverRepository(pool),
			postgres.NewRouteRepository(pool),
			postgres.NewOrderRepository(pool),
			postgres.NewSimulationRepository(pool),
		)

		run, err := sim.Run(ctx)
		if err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}

		log.Printf(
			"Run %s committed: %d deliveries (%d on time, %d late, %d unassigned), profit ₹%.0f, efficiency %d%%, took %dms",
			run.ID,
			run.Results.TotalDeliveries,
			run.Results.OnTimeDeliveries,
			run.Results.LateDeliveries,
			run.Results.UnassignedOrders,
			run.Results.TotalProfit,
			run.Results.EfficiencyScore,
			run.ExecutionTimeMS,
		)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("drivers", 5, "Number of drivers to include in the run (1-50)")
	rootCmd.Flags().String("start-time", "09:00", "Shift start time, HH:MM 24-hour")
	rootCmd.Flags().Int("max-hours", 8, "Daily hour cap per driver (1-12)")
	rootCmd.Flags().Duration("run-timeout", 0, "Upper bound on one run's computation")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish run records to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-folder", "", "Folder for JSON and parquet run output")
	rootCmd.Flags().Bool("export-parquet", false, "Export per-order outcomes as parquet")
	rootCmd.Flags().String("metrics-addr", "", "Address for the Prometheus metrics endpoint")

	viper.BindPFlag("number_of_drivers", rootCmd.Flags().Lookup("drivers"))
	viper.BindPFlag("start_time", rootCmd.Flags().Lookup("start-time"))
	viper.BindPFlag("max_hours_per_day", rootCmd.Flags().Lookup("max-hours"))
	viper.BindPFlag("run_timeout", rootCmd.Flags().Lookup("run-timeout"))
	viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_folder", rootCmd.Flags().Lookup("output-folder"))
	viper.BindPFlag("export_parquet", rootCmd.Flags().Lookup("export-parquet"))
	viper.BindPFlag("metrics_addr", rootCmd.Flags().Lookup("metrics-addr"))
}

func connectPool(ctx context.Context, cfg *models.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Metrics endpoint stopped: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
