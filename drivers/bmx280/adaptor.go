package bmx280

import (
	"math"

	"tinygo.org/x/drivers"

	"envlogger-go/types"
	"envlogger-go/x/logx"
)

var log = logx.New("bmx280")

// device is the slice of Device the adaptor needs. Kept internal so
// tests can substitute a fake.
type device interface {
	Configure(addr uint16) error
	HasHumidity() bool
	ReadTemperature() (int32, error)
	ReadPressure() (int32, error)
	ReadHumidity() (int32, error)
}

// Adaptor converts the fixed-point driver into the float readings the
// acquisition stage consumes. Any driver error surfaces as NaN.
type Adaptor struct {
	dev     device
	variant types.SensorVariant
}

// NewAdaptor wraps a driver on bus. variant comes from device config
// and wins over what the chip reports: an indoor unit configured as
// temperature/pressure never publishes humidity even on a BME280.
func NewAdaptor(bus drivers.I2C, variant types.SensorVariant) *Adaptor {
	d := New(bus)
	return &Adaptor{dev: &d, variant: variant}
}

// Init probes and configures the sensor at addr.
func (a *Adaptor) Init(addr uint16) error {
	if err := a.dev.Configure(addr); err != nil {
		return err
	}
	if a.variant.HasHumidity() && !a.dev.HasHumidity() {
		log.Warnf("configured for humidity but part at %x has none", addr)
	}
	return nil
}

// ReadTemperature returns °C, NaN when the sample is unusable.
func (a *Adaptor) ReadTemperature() float64 {
	v, err := a.dev.ReadTemperature()
	if err != nil {
		return math.NaN()
	}
	return float64(v) / 100
}

// ReadPressure returns hPa, NaN when the sample is unusable.
func (a *Adaptor) ReadPressure() float64 {
	v, err := a.dev.ReadPressure()
	if err != nil {
		return math.NaN()
	}
	return float64(v) / 100
}

// ReadHumidity returns %RH, NaN when the sample is unusable or the
// part has no humidity sensor.
func (a *Adaptor) ReadHumidity() float64 {
	v, err := a.dev.ReadHumidity()
	if err != nil {
		return math.NaN()
	}
	return float64(v) / 100
}

// Variant reports the configured reading set.
func (a *Adaptor) Variant() types.SensorVariant { return a.variant }
