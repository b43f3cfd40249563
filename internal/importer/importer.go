// Package importer loads drivers, routes and orders from CSV files into the
// domain records the repositories persist.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/lucsky/cuid"
)

// ReadDrivers parses a drivers CSV with columns
// name,shift_hours,past_week_hours where past_week_hours is pipe-separated.
func ReadDrivers(filePath string) ([]*models.Driver, error) {
	var drivers []*models.Driver

	err := readCSV(filePath, func(record map[string]string, line int) error {
		shiftHours, err := strconv.Atoi(record["shift_hours"])
		if err != nil {
			return fmt.Errorf("shift_hours: %w", err)
		}

		parts := strings.Split(record["past_week_hours"], "|")
		if len(parts) != models.PastWeekDays {
			return fmt.Errorf("past_week_hours: expected %d values, got %d", models.PastWeekDays, len(parts))
		}
		pastWeek := make([]float64, len(parts))
		for i, p := range parts {
			h, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return fmt.Errorf("past_week_hours: %w", err)
			}
			pastWeek[i] = h
		}

		drivers = append(drivers, &models.Driver{
			ID:            cuid.New(),
			Name:          record["name"],
			ShiftHours:    shiftHours,
			PastWeekHours: pastWeek,
			CreatedAt:     time.Now().UTC(),
		})
		return nil
	})

	return drivers, err
}

// ReadRoutes parses a routes CSV with columns
// route_id,distance_km,traffic_level,base_time_min.
func ReadRoutes(filePath string) ([]*models.Route, error) {
	var routes []*models.Route

	err := readCSV(filePath, func(record map[string]string, line int) error {
		id, err := strconv.Atoi(record["route_id"])
		if err != nil {
			return fmt.Errorf("route_id: %w", err)
		}
		distance, err := strconv.ParseFloat(record["distance_km"], 64)
		if err != nil {
			return fmt.Errorf("distance_km: %w", err)
		}
		baseTime, err := strconv.Atoi(record["base_time_min"])
		if err != nil {
			return fmt.Errorf("base_time_min: %w", err)
		}

		traffic := record["traffic_level"]
		switch traffic {
		case models.TrafficLevelLow, models.TrafficLevelMedium, models.TrafficLevelHigh:
		default:
			return fmt.Errorf("traffic_level: unknown level %q", traffic)
		}

		routes = append(routes, &models.Route{
			ID:           id,
			DistanceKM:   distance,
			TrafficLevel: traffic,
			BaseTimeMin:  baseTime,
		})
		return nil
	})

	return routes, err
}

// ReadOrders parses an orders CSV with columns
// order_id,value_rs,route_id,delivery_time. Imported orders start pending.
func ReadOrders(filePath string) ([]*models.Order, error) {
	var orders []*models.Order

	err := readCSV(filePath, func(record map[string]string, line int) error {
		id, err := strconv.Atoi(record["order_id"])
		if err != nil {
			return fmt.Errorf("order_id: %w", err)
		}
		value, err := strconv.ParseFloat(record["value_rs"], 64)
		if err != nil {
			return fmt.Errorf("value_rs: %w", err)
		}
		routeID, err := strconv.Atoi(record["route_id"])
		if err != nil {
			return fmt.Errorf("route_id: %w", err)
		}

		deadline := record["delivery_time"]
		if _, err := models.ParseClockMinutes(deadline); err != nil {
			return fmt.Errorf("delivery_time: %w", err)
		}

		orders = append(orders, &models.Order{
			ID:               id,
			ValueRs:          value,
			RouteID:          routeID,
			DeliveryDeadline: deadline,
			Status:           models.OrderStatusPending,
		})
		return nil
	})

	return orders, err
}

// readCSV streams a header-keyed CSV, calling fn once per data row.
func readCSV(filePath string, fn func(record map[string]string, line int) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", filePath, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filePath, err)
		}
		line++

		record := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = strings.TrimSpace(row[i])
			}
		}

		if err := fn(record, line); err != nil {
			return fmt.Errorf("%s line %d: %w", filePath, line, err)
		}
	}

	return nil
}
