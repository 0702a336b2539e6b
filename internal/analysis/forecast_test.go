package analysis

import (
	"errors"
	"math"
	"testing"
	"time"

	"FinSight/internal/domain/models"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func scoreHistory(scores ...float64) []models.ScoreRecord {
	out := make([]models.ScoreRecord, 0, len(scores))
	at := fixedClock()
	for _, s := range scores {
		out = append(out, models.ScoreRecord{Score: s, At: at})
		at = at.AddDate(0, -1, 0)
	}
	return out
}

func TestGenerateForecastInsufficientData(t *testing.T) {
	g := NewForecastGeneratorAt(fixedClock)
	for n := 0; n < 3; n++ {
		_, err := g.GenerateForecast(scoreHistory(make([]float64, n)...), 6)
		if !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("history of %d: got err %v", n, err)
		}
	}
}

func TestGenerateForecastImproving(t *testing.T) {
	g := NewForecastGeneratorAt(fixedClock)
	// most recent first: 80, 74, 68 -> trend (80-68)/3 = 4 per month
	f, err := g.GenerateForecast(scoreHistory(80, 74, 68), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Trend != "improving" {
		t.Fatalf("trend: got %s want improving", f.Trend)
	}
	if f.Period != "6 months" {
		t.Fatalf("period: got %s", f.Period)
	}
	if len(f.Points) != 6 {
		t.Fatalf("points: got %d want 6", len(f.Points))
	}
	if f.Points[0].Month != "2026-09" {
		t.Fatalf("first month: got %s want 2026-09", f.Points[0].Month)
	}
	if f.Points[5].Month != "2027-02" {
		t.Fatalf("last month: got %s want 2027-02", f.Points[5].Month)
	}
	if math.Abs(f.Points[0].ProjectedScore-84) > 1e-9 {
		t.Fatalf("first projection: got %v want 84", f.Points[0].ProjectedScore)
	}
	if math.Abs(f.Points[1].ProjectedScore-88) > 1e-9 {
		t.Fatalf("second projection: got %v want 88", f.Points[1].ProjectedScore)
	}
}

func TestGenerateForecastClampsTo100(t *testing.T) {
	g := NewForecastGeneratorAt(fixedClock)
	f, err := g.GenerateForecast(scoreHistory(95, 80, 65), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range f.Points {
		if p.ProjectedScore < 0 || p.ProjectedScore > 100 {
			t.Fatalf("projection out of range at %s: %v", p.Month, p.ProjectedScore)
		}
	}
	if last := f.Points[len(f.Points)-1].ProjectedScore; last != 100 {
		t.Fatalf("steep trend should saturate at 100, got %v", last)
	}
}

func TestGenerateForecastConfidenceDecay(t *testing.T) {
	g := NewForecastGeneratorAt(fixedClock)
	f, err := g.GenerateForecast(scoreHistory(70, 70, 70), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Trend != "stable" {
		t.Fatalf("flat history trend: got %s want stable", f.Trend)
	}
	if f.Points[0].Confidence != 0.9 {
		t.Fatalf("first confidence: got %v want 0.9", f.Points[0].Confidence)
	}
	for i := 1; i < len(f.Points); i++ {
		prev, cur := f.Points[i-1].Confidence, f.Points[i].Confidence
		if cur > prev {
			t.Fatalf("confidence must not rise: month %d %v -> %v", i, prev, cur)
		}
		if cur < 0.5 {
			t.Fatalf("confidence floor is 0.5, got %v", cur)
		}
	}
	if f.Points[11].Confidence != 0.5 {
		t.Fatalf("late confidence should sit on the floor, got %v", f.Points[11].Confidence)
	}
}

func TestGenerateForecastDeclining(t *testing.T) {
	g := NewForecastGeneratorAt(fixedClock)
	f, err := g.GenerateForecast(scoreHistory(50, 60, 70), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Trend != "declining" {
		t.Fatalf("trend: got %s want declining", f.Trend)
	}
	if f.Points[0].ProjectedScore >= 50 {
		t.Fatalf("declining projection should fall below newest score: %v", f.Points[0].ProjectedScore)
	}
}
