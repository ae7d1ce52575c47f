package cycle

import (
	"math"

	"envlogger-go/types"
)

// Sample is one acquisition attempt. NaN marks an invalid field.
type Sample struct {
	Temperature float64
	Pressure    float64
	Humidity    float64
}

// valid reports whether every field the variant requires is a number.
// Humidity only counts for humidity-capable sensors.
func (s Sample) valid(v types.SensorVariant) bool {
	if math.IsNaN(s.Temperature) || math.IsNaN(s.Pressure) {
		return false
	}
	if v.HasHumidity() && math.IsNaN(s.Humidity) {
		return false
	}
	return true
}

// Aggregate folds valid samples into running sums. It is owned by the
// acquisition stage for exactly one cycle and carries the sensor
// variant so humidity handling is decided once.
type Aggregate struct {
	variant    types.SensorVariant
	tempSum    float64
	pressSum   float64
	humSum     float64
	validCount int
}

func NewAggregate(v types.SensorVariant) Aggregate {
	return Aggregate{variant: v}
}

// Add folds s in when it validates; invalid samples leave the sums and
// the count untouched. Reports whether the sample was counted.
func (g *Aggregate) Add(s Sample) bool {
	if !s.valid(g.variant) {
		return false
	}
	g.tempSum += s.Temperature
	g.pressSum += s.Pressure
	if g.variant.HasHumidity() {
		g.humSum += s.Humidity
	}
	g.validCount++
	return true
}

func (g Aggregate) Count() int                   { return g.validCount }
func (g Aggregate) Variant() types.SensorVariant { return g.variant }

// The average getters are the only place division happens; with no
// valid samples they return 0.0 rather than faulting.

func (g Aggregate) AvgTemperature() float64 { return g.avg(g.tempSum) }
func (g Aggregate) AvgPressure() float64    { return g.avg(g.pressSum) }

func (g Aggregate) AvgHumidity() float64 {
	if !g.variant.HasHumidity() {
		return 0.0
	}
	return g.avg(g.humSum)
}

func (g Aggregate) avg(sum float64) float64 {
	if g.validCount == 0 {
		return 0.0
	}
	return sum / float64(g.validCount)
}
