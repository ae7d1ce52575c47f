package cycle

import (
	"math"
	"testing"

	"envlogger-go/types"
)

func TestAggregateExcludesInvalidSamples(t *testing.T) {
	g := NewAggregate(types.VariantTPH)

	if !g.Add(Sample{Temperature: 20, Pressure: 1000, Humidity: 50}) {
		t.Fatal("valid sample rejected")
	}
	if g.Add(Sample{Temperature: math.NaN(), Pressure: 1000, Humidity: 50}) {
		t.Fatal("NaN temperature accepted")
	}
	if g.Add(Sample{Temperature: 20, Pressure: 1000, Humidity: math.NaN()}) {
		t.Fatal("NaN humidity accepted on humidity-capable variant")
	}
	if !g.Add(Sample{Temperature: 22, Pressure: 1002, Humidity: 54}) {
		t.Fatal("valid sample rejected")
	}

	if g.Count() != 2 {
		t.Fatalf("count = %d, want 2", g.Count())
	}
	if got := g.AvgTemperature(); got != 21 {
		t.Fatalf("avg temp = %v, want 21", got)
	}
	if got := g.AvgPressure(); got != 1001 {
		t.Fatalf("avg pressure = %v, want 1001", got)
	}
	if got := g.AvgHumidity(); got != 52 {
		t.Fatalf("avg humidity = %v, want 52", got)
	}
}

func TestAggregateIgnoresHumidityOnTPVariant(t *testing.T) {
	g := NewAggregate(types.VariantTP)
	if !g.Add(Sample{Temperature: 5, Pressure: 990, Humidity: math.NaN()}) {
		t.Fatal("TP sample with NaN humidity must be valid")
	}
	if g.Count() != 1 {
		t.Fatalf("count = %d", g.Count())
	}
	if got := g.AvgHumidity(); got != 0.0 {
		t.Fatalf("TP humidity average = %v, want 0.0", got)
	}
}

func TestAggregateZeroCountDefaults(t *testing.T) {
	g := NewAggregate(types.VariantTPH)
	if got := g.AvgTemperature(); got != 0.0 {
		t.Fatalf("empty avg temp = %v, want 0.0", got)
	}
	if got := g.AvgPressure(); got != 0.0 {
		t.Fatalf("empty avg pressure = %v, want 0.0", got)
	}
	if got := g.AvgHumidity(); got != 0.0 {
		t.Fatalf("empty avg humidity = %v, want 0.0", got)
	}
}
