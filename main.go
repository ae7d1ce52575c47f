// Host harness: runs the full wake cycle on a development machine with
// a simulated sensor and radio, the real SNTP clock and the real
// uplink backends. Useful for exercising a server setup end to end
// before flashing a board.
package main

import (
	"os"

	"envlogger-go/services/clock"
	"envlogger-go/services/config"
	"envlogger-go/services/cycle"
	"envlogger-go/services/power"
	"envlogger-go/services/signal"
	"envlogger-go/services/sleep"
	"envlogger-go/services/uplink"
	"envlogger-go/types"
	"envlogger-go/x/logx"
)

func main() {
	log := logx.New("main")

	device := os.Getenv("ENVLOG_DEVICE")
	if device == "" {
		device = "indoor"
	}
	cfg, err := config.Load(device)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("device %q, sensor %s, sleep %dm", device, cfg.Sensor.SensorVariant(), cfg.SleepMinutes)

	var backends []cycle.Uploader
	backends = append(backends, uplink.NewFTP(cfg.FTP))
	if cfg.MQTT.Broker != "" {
		backends = append(backends, uplink.NewMQTT(cfg.MQTT, device))
	}

	co := cycle.Collaborators{
		Sensor:  newSimSensor(cfg.Sensor.SensorVariant()),
		Radio:   &simRadio{},
		Clock:   clock.NewSNTP(),
		Upload:  uplink.NewMulti(backends...),
		Power:   power.New(power.DefaultSteps()...),
		Signal:  signal.New(nil),
		Sleeper: sleep.New(),
	}

	orch := cycle.New(cycle.FromDeviceConfig(cfg), co)
	for {
		res := orch.RunCycle()
		log.Infof("cycle finished: %s", res.Outcome)
	}
}

// simSensor produces plausible shed readings with a slow wobble so
// consecutive records differ.
type simSensor struct {
	variant types.SensorVariant
	reads   int
}

func newSimSensor(variant types.SensorVariant) *simSensor {
	return &simSensor{variant: variant}
}

func (s *simSensor) Init(addr uint16) error { return nil }

func (s *simSensor) wobble() float64 {
	s.reads++
	return float64(s.reads%7) * 0.05
}

func (s *simSensor) ReadTemperature() float64 { return 21.5 + s.wobble() }
func (s *simSensor) ReadPressure() float64    { return 1009.2 + s.wobble() }
func (s *simSensor) ReadHumidity() float64    { return 52.0 + s.wobble() }

func (s *simSensor) Variant() types.SensorVariant { return s.variant }

// simRadio associates on the second status poll.
type simRadio struct {
	polls int
	up    bool
}

func (r *simRadio) BeginAssociation(ssid, password string) { r.up, r.polls = true, 0 }

func (r *simRadio) Status() types.WirelessStatus {
	if !r.up {
		return types.WirelessIdle
	}
	r.polls++
	if r.polls >= 2 {
		return types.WirelessConnected
	}
	return types.WirelessIdle
}

func (r *simRadio) DisconnectAndPowerDown() { r.up = false }
