//go:build rp2040 || rp2350

// Board entrypoint for the battery logger: BMx280 on I2C0, NINA radio,
// onboard LED as the indicator, logs over UART0. Every boot is one
// wake cycle; the sleep handoff resets the board.
package main

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"envlogger-go/drivers/bmx280"
	"envlogger-go/drivers/ninawifi"
	"envlogger-go/services/clock"
	"envlogger-go/services/config"
	"envlogger-go/services/cycle"
	"envlogger-go/services/power"
	"envlogger-go/services/signal"
	"envlogger-go/services/sleep"
	"envlogger-go/services/uplink"
	"envlogger-go/x/logx"
)

// One firmware image per unit; rebuild with the other key for the
// outdoor sensor.
const device = "indoor"

func main() {
	// Give the debug probe a moment to attach before the first line.
	time.Sleep(2 * time.Second)

	uartx.UART0.Configure(uartx.UARTConfig{BaudRate: 115200})
	logx.Output = uartx.UART0

	log := logx.New("main")
	cfg, err := config.Load(device)
	if err != nil {
		log.Errorf("%v", err)
		blinkForever()
	}
	log.Infof("boot, device %q, sensor %s", device, cfg.Sensor.SensorVariant())

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       machine.Pin(cfg.Sensor.SDAPin),
		SCL:       machine.Pin(cfg.Sensor.SCLPin),
		Frequency: 400 * machine.KHz,
	}); err != nil {
		log.Errorf("i2c: %v", err)
		blinkForever()
	}

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	co := cycle.Collaborators{
		Sensor:  bmx280.NewAdaptor(i2c, cfg.Sensor.SensorVariant()),
		Radio:   ninawifi.New(),
		Clock:   clock.NewSNTP(),
		Upload:  uplink.NewFTP(cfg.FTP),
		Power:   power.New(power.DefaultSteps()...),
		Signal:  signal.New(machine.LED),
		Sleeper: sleep.NewDeep(),
	}

	// ScheduleWake resets the board, so RunCycle never returns here.
	cycle.New(cycle.FromDeviceConfig(cfg), co).RunCycle()
}

// blinkForever parks a board that cannot even start a cycle. The
// steady 1Hz blink is deliberately unlike any cycle pattern.
func blinkForever() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		machine.LED.High()
		time.Sleep(500 * time.Millisecond)
		machine.LED.Low()
		time.Sleep(500 * time.Millisecond)
	}
}
