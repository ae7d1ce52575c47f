package cycle

import (
	"math"
	"time"

	"envlogger-go/errcode"
	"envlogger-go/x/logx"
	"envlogger-go/x/mathx"
)

// Default probe addresses for BMx280-class parts.
const (
	addrPrimary   = 0x76
	addrSecondary = 0x77
)

// AcquireConfig bounds the acquisition stage. Zero fields take the
// defaults below at construction.
type AcquireConfig struct {
	PrimaryAddr   uint16
	SecondaryAddr uint16
	InitAttempts  int           // probe ladder passes (default 3)
	InitRetry     time.Duration // delay between failed passes (default 1s)
	Warmup        time.Duration // settle time after init (default 2s)
	Readings      int           // samples per cycle (default 5)
	Interval      time.Duration // delay between samples (default 3s)
}

func (c AcquireConfig) withDefaults() AcquireConfig {
	if c.PrimaryAddr == 0 {
		c.PrimaryAddr = addrPrimary
	}
	if c.SecondaryAddr == 0 {
		c.SecondaryAddr = addrSecondary
	}
	c.InitAttempts = mathx.ClampDefault(c.InitAttempts, 3, 1, 10)
	c.Readings = mathx.ClampDefault(c.Readings, 5, 1, 60)
	if c.InitRetry <= 0 {
		c.InitRetry = time.Second
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	} else if c.Warmup == 0 {
		c.Warmup = 2 * time.Second
	}
	if c.Interval <= 0 {
		c.Interval = 3 * time.Second
	}
	return c
}

// Acquisition drives the sensor collaborator through bounded-retry
// initialization, a validation read, and multi-sample collection with
// running aggregation. A failed run is fatal to the cycle.
type Acquisition struct {
	sensor Sensor
	cfg    AcquireConfig
	yield  YieldFunc
	log    logx.Logger
}

func NewAcquisition(sensor Sensor, cfg AcquireConfig, yield YieldFunc) *Acquisition {
	return &Acquisition{
		sensor: sensor,
		cfg:    cfg.withDefaults(),
		yield:  yield,
		log:    logx.New("acquire"),
	}
}

// Run returns the cycle's aggregate, or a sensor_init error when the
// probe ladder is exhausted or the validation read produces NaN.
// Count may legitimately be any value in [0, Readings].
func (a *Acquisition) Run() (Aggregate, error) {
	agg := NewAggregate(a.sensor.Variant())

	if !a.probe() {
		return agg, &errcode.E{C: errcode.SensorInit, Op: "acquire",
			Msg: "sensor not found at either address"}
	}

	a.log.Infof("sensor up, warming for %v", a.cfg.Warmup)
	idleWait(a.cfg.Warmup, a.yield)

	// One validation read. NaN here means the part answered its
	// address but is not producing data; not worth retrying.
	t, p := a.sensor.ReadTemperature(), a.sensor.ReadPressure()
	if math.IsNaN(t) || math.IsNaN(p) {
		a.log.Errorf("validation read invalid")
		return agg, &errcode.E{C: errcode.SensorInit, Op: "acquire",
			Msg: "validation read returned NaN"}
	}

	a.collect(&agg)
	a.log.Infof("collected %d valid of %d readings", agg.Count(), a.cfg.Readings)
	return agg, nil
}

// probe tries the primary then the secondary address on each pass,
// with a fixed delay between failed passes.
func (a *Acquisition) probe() bool {
	for attempt := 1; attempt <= a.cfg.InitAttempts; attempt++ {
		if err := a.sensor.Init(a.cfg.PrimaryAddr); err == nil {
			a.log.Infof("sensor found at 0x%x (attempt %d)", a.cfg.PrimaryAddr, attempt)
			return true
		}
		if err := a.sensor.Init(a.cfg.SecondaryAddr); err == nil {
			a.log.Infof("sensor found at 0x%x (attempt %d)", a.cfg.SecondaryAddr, attempt)
			return true
		}
		if attempt < a.cfg.InitAttempts {
			a.log.Warnf("attempt %d failed, retrying", attempt)
			idleWait(a.cfg.InitRetry, a.yield)
		}
	}
	return false
}

func (a *Acquisition) collect(agg *Aggregate) {
	hasHum := a.sensor.Variant().HasHumidity()
	for i := 0; i < a.cfg.Readings; i++ {
		s := Sample{
			Temperature: a.sensor.ReadTemperature(),
			Pressure:    a.sensor.ReadPressure(),
			Humidity:    math.NaN(),
		}
		if hasHum {
			s.Humidity = a.sensor.ReadHumidity()
		}
		if agg.Add(s) {
			a.log.Infof("reading %d: %.1f C, %.1f hPa", i+1, s.Temperature, s.Pressure)
		} else {
			a.log.Warnf("reading %d: %s", i+1, errcode.SensorReadInvalid)
		}
		if i < a.cfg.Readings-1 {
			idleWait(a.cfg.Interval, a.yield)
		}
	}
}
