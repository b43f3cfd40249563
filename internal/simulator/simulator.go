// Package simulator wires the pure allocation engine to its collaborators:
// the postgres repositories at the boundaries, the run-record outputs, and
// the metrics. One Simulator executes one run at a time.
package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fleetsimhq/fleetsim/internal/cloudwriter"
	"github.com/fleetsimhq/fleetsim/internal/engine"
	"github.com/fleetsimhq/fleetsim/internal/metrics"
	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/fleetsimhq/fleetsim/internal/repositories"
	"github.com/lucsky/cuid"
)

type Simulator struct {
	Config      *models.Config
	Drivers     repositories.DriverRepository
	Routes      repositories.RouteRepository
	Orders      repositories.OrderRepository
	Simulations repositories.SimulationRepository

	cloudFactory cloudwriter.CloudWriterFactory
}

func NewSimulator(
	cfg *models.Config,
	drivers repositories.DriverRepository,
	routes repositories.RouteRepository,
	orders repositories.OrderRepository,
	simulations repositories.SimulationRepository,
) *Simulator {
	return &Simulator{
		Config:      cfg,
		Drivers:     drivers,
		Routes:      routes,
		Orders:      orders,
		Simulations: simulations,
	}
}

// Run executes one full simulation: load snapshots, run the engine under a
// deadline, commit everything in one transaction, then publish the record.
// The engine never touches storage; all I/O happens here at the edges.
func (s *Simulator) Run(ctx context.Context) (*models.SimulationRun, error) {
	started := time.Now()
	metrics.SimulationRunsTotal.Inc()

	drivers, err := s.Drivers.GetAvailable(ctx, s.Config.NumberOfDrivers)
	if err != nil {
		metrics.SimulationRunsAbortedTotal.Inc()
		return nil, fmt.Errorf("load drivers: %w", err)
	}
	routes, err := s.Routes.GetAll(ctx)
	if err != nil {
		metrics.SimulationRunsAbortedTotal.Inc()
		return nil, fmt.Errorf("load routes: %w", err)
	}
	orders, err := s.Orders.GetPending(ctx)
	if err != nil {
		metrics.SimulationRunsAbortedTotal.Inc()
		return nil, fmt.Errorf("load orders: %w", err)
	}

	runCtx := ctx
	if s.Config.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.Config.RunTimeout)
		defer cancel()
	}

	params := engine.Params{
		NumberOfDrivers: s.Config.NumberOfDrivers,
		StartTime:       s.Config.StartTime,
		MaxHoursPerDay:  s.Config.MaxHoursPerDay,
	}

	result, err := engine.Run(runCtx, params, drivers, routes, orders)
	if err != nil {
		metrics.SimulationRunsAbortedTotal.Inc()
		return nil, err
	}

	run := &models.SimulationRun{
		ID:              "sim_" + cuid.New(),
		InputParameters: s.Config.SimulationInput(),
		Results:         result.Results,
		ExecutionTimeMS: time.Since(started).Milliseconds(),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Simulations.CommitRun(ctx, run, decidedOrders(result.Outcomes)); err != nil {
		metrics.SimulationRunsAbortedTotal.Inc()
		return nil, fmt.Errorf("commit run %s: %w", run.ID, err)
	}

	metrics.OrdersDecidedTotal.Add(float64(len(result.Outcomes)))
	metrics.OrdersUnassignedTotal.Add(float64(result.Results.UnassignedOrders))
	metrics.OrdersSkippedTotal.Add(float64(result.Results.SkippedOrders))
	metrics.RunDuration.Observe(time.Since(started).Seconds())

	s.publish(run, result)
	return run, nil
}

// decidedOrders materializes the order-state updates the commit writes back.
// Unassigned and skipped orders stay pending and are not written.
func decidedOrders(outcomes []engine.Outcome) []models.Order {
	orders := make([]models.Order, len(outcomes))
	for i, out := range outcomes {
		orders[i] = models.Order{
			ID:                 out.OrderID,
			ValueRs:            out.Value,
			RouteID:            out.RouteID,
			AssignedDriverID:   out.DriverID,
			Status:             out.Status,
			ActualDeliveryTime: out.DeliveryMinutes,
			PenaltyApplied:     out.Penalty,
			BonusApplied:       out.Bonus,
		}
	}
	return orders
}

// publish fans the committed run record out to the configured destinations.
// Publishing is best-effort: the run is already durable, so output failures
// are logged and do not fail the run.
func (s *Simulator) publish(run *models.SimulationRun, result *engine.Result) {
	msg, err := json.Marshal(run)
	if err != nil {
		log.Printf("Error serializing run %s: %v", run.ID, err)
		return
	}

	for _, output := range s.determineOutputDestinations() {
		if err := output.WriteMessage(s.Config.KafkaTopic, msg); err != nil {
			log.Printf("Failed to write run %s: %v", run.ID, err)
		}
		if err := output.Close(); err != nil {
			log.Printf("Failed to close output for run %s: %v", run.ID, err)
		}
	}

	if s.Config.ExportParquet && s.Config.OutputFolder != "" {
		path, err := ExportOutcomesParquet(s.Config.OutputFolder, run.ID, result.Outcomes)
		if err != nil {
			log.Printf("Failed to export parquet for run %s: %v", run.ID, err)
		} else {
			log.Printf("Exported order outcomes to %s", path)
		}
	}

	if s.Config.S3Bucket != "" {
		if err := s.uploadRunReport(run, msg); err != nil {
			log.Printf("Failed to upload run report %s: %v", run.ID, err)
		}
	}
}

func (s *Simulator) determineOutputDestinations() []OutputDestination {
	outputs := []OutputDestination{&ConsoleOutput{}}

	if s.Config.OutputFolder != "" {
		outputs = append(outputs, NewJSONOutput(s.Config.OutputFolder))
	}
	if s.Config.KafkaEnabled {
		kafka, err := NewKafkaOutput(s.Config)
		if err != nil {
			log.Printf("Failed to create Kafka output: %v", err)
		} else {
			outputs = append(outputs, kafka)
		}
	}

	return outputs
}

func (s *Simulator) uploadRunReport(run *models.SimulationRun, report []byte) error {
	if s.cloudFactory == nil {
		factory, err := cloudwriter.NewS3WriterFactory(s.Config.S3Region)
		if err != nil {
			return err
		}
		s.cloudFactory = factory
	}

	w, err := s.cloudFactory.NewWriter(s.Config.S3Bucket, fmt.Sprintf("reports/%s.json", run.ID))
	if err != nil {
		return err
	}
	if _, err := w.Write(report); err != nil {
		return err
	}
	return w.Close()
}
