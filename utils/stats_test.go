package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 100, 100*time.Millisecond)
	if stats.AveragePopulation != 100 {
		t.Errorf("Expected first sample to seed the average, got %v", stats.AveragePopulation)
	}
	if math.Abs(stats.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("Expected 10 gen/sec, got %v", stats.GenerationsPerSecond)
	}

	stats.Update(2, 200, 0)
	if math.Abs(stats.AveragePopulation-110) > 1e-9 {
		t.Errorf("Expected moving average 110, got %v", stats.AveragePopulation)
	}
	if math.Abs(stats.GenerationsPerSecond-10) > 1e-9 {
		t.Error("Expected zero duration to keep the previous rate")
	}
	if stats.TotalGenerations != 2 || stats.LiveCells != 200 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
}
