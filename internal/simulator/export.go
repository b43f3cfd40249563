package simulator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleetsimhq/fleetsim/internal/engine"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type outcomeRow struct {
	RunID           string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderID         int32   `parquet:"name=order_id, type=INT32"`
	RouteID         int32   `parquet:"name=route_id, type=INT32"`
	DriverID        string  `parquet:"name=driver_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	DriverName      string  `parquet:"name=driver_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status          string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryMinutes int32   `parquet:"name=actual_delivery_time, type=INT32"`
	ValueRs         float64 `parquet:"name=value_rs, type=DOUBLE"`
	Penalty         float64 `parquet:"name=penalty_applied, type=DOUBLE"`
	Bonus           float64 `parquet:"name=bonus_applied, type=DOUBLE"`
	FuelCost        float64 `parquet:"name=fuel_cost, type=DOUBLE"`
	Profit          float64 `parquet:"name=profit, type=DOUBLE"`
}

// ExportOutcomesParquet writes one parquet file with every decided order of a
// run, for downstream analytics. Returns the written file path.
func ExportOutcomesParquet(basePath, runID string, outcomes []engine.Outcome) (string, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}

	filePath := filepath.Join(basePath, fmt.Sprintf("orders_%s.parquet", runID))
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(outcomeRow), 2)
	if err != nil {
		fw.Close()
		return "", fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, out := range outcomes {
		row := outcomeRow{
			RunID:           runID,
			OrderID:         int32(out.OrderID),
			RouteID:         int32(out.RouteID),
			DriverID:        out.DriverID,
			DriverName:      out.DriverName,
			Status:          out.Status,
			DeliveryMinutes: int32(out.DeliveryMinutes),
			ValueRs:         out.Value,
			Penalty:         out.Penalty,
			Bonus:           out.Bonus,
			FuelCost:        out.FuelCost,
			Profit:          out.Profit,
		}
		if err := pw.Write(row); err != nil {
			pw.WriteStop()
			fw.Close()
			return "", fmt.Errorf("failed to write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("failed to close parquet file: %w", err)
	}

	return filePath, nil
}
