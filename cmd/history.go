package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/fleetsimhq/fleetsim/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists recent simulation runs, most recent first",
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

		runs, err := postgres.NewSimulationRepository(pool).ListRecent(ctx, historyLimit)
		if err != nil {
			log.Fatalf("Failed to fetch simulation history: %v", err)
		}

		if historyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(runs); err != nil {
				log.Fatalf("Failed to encode runs: %v", err)
			}
			return
		}

		for _, run := range runs {
			fmt.Printf(
				"%s  %s  drivers=%d  deliveries=%d  on_time=%d  late=%d  profit=₹%.0f  efficiency=%d%%\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.ID,
				run.InputParameters.NumberOfDrivers,
				run.Results.TotalDeliveries,
				run.Results.OnTimeDeliveries,
				run.Results.LateDeliveries,
				run.Results.TotalProfit,
				run.Results.EfficiencyScore,
			)
		}
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum runs to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Emit runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
