package charts

import (
	"bytes"
	"testing"
	"time"

	"komoralink.backend/internal/domain/entities"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestRenderRevenueChart_TooFewPointsRendersNothing(t *testing.T) {
	r := NewRenderer()

	png, err := r.RenderRevenueChart(nil, "CDF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if png != nil {
		t.Fatalf("expected nil output for empty input, got %d bytes", len(png))
	}

	png, err = r.RenderRevenueChart([]entities.RevenuePoint{
		{Day: time.Now(), Amount: 100},
	}, "CDF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if png != nil {
		t.Fatalf("expected nil output for a single point, got %d bytes", len(png))
	}
}

func TestRenderRevenueChart_ProducesPNG(t *testing.T) {
	r := NewRenderer()

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	points := []entities.RevenuePoint{
		{Day: day, Amount: 1500},
		{Day: day.AddDate(0, 0, 1), Amount: 900},
		{Day: day.AddDate(0, 0, 2), Amount: 2300},
	}

	png, err := r.RenderRevenueChart(points, "CDF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected PNG bytes")
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Fatalf("output does not look like a PNG: % x", png[:8])
	}
}
