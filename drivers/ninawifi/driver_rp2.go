//go:build rp2040 || rp2350

package ninawifi

import (
	"machine"
	"sync"
	"time"

	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/wifinina"
)

// New brings up the SPI link to the on-board NINA co-processor and
// returns the radio adaptor. Pins and SPI instance follow the board
// definition (Pico W / Nano RP2040 Connect).
func New() *Adaptor {
	spi := machine.NINA_SPI
	spi.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SDO:       machine.NINA_SDO,
		SDI:       machine.NINA_SDI,
		SCK:       machine.NINA_SCK,
	})

	nina := wifinina.New(&wifinina.Config{
		Spi:    spi,
		Cs:     machine.NINA_CS,
		Ack:    machine.NINA_ACK,
		Gpio0:  machine.NINA_GPIO0,
		Resetn: machine.NINA_RESETN,
	})

	return newAdaptor(&rp2Device{nina: nina})
}

// rp2Device runs the blocking netlink join in a goroutine and folds
// its outcome into a NINA status code for the adaptor to poll.
type rp2Device struct {
	nina *wifinina.Device

	mu      sync.Mutex
	joining bool
	code    uint8
}

func (d *rp2Device) Begin(ssid, password string) error {
	d.mu.Lock()
	d.joining = true
	d.code = ninaIdle
	d.mu.Unlock()

	go func() {
		err := d.nina.NetConnect(&netlink.ConnectParams{
			Ssid:           ssid,
			Passphrase:     password,
			ConnectTimeout: 10 * time.Second,
		})
		d.mu.Lock()
		d.joining = false
		if err != nil {
			log.Warnf("join failed: %v", err)
			d.code = ninaConnectFailed
		} else {
			d.code = ninaConnected
		}
		d.mu.Unlock()
	}()
	return nil
}

func (d *rp2Device) ConnectionStatus() (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.code, nil
}

func (d *rp2Device) Disconnect() error {
	d.nina.NetDisconnect()
	d.mu.Lock()
	d.code = ninaDisconnected
	d.mu.Unlock()
	return nil
}

// PowerOff holds the co-processor in reset until the next boot.
func (d *rp2Device) PowerOff() {
	machine.NINA_RESETN.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.NINA_RESETN.Low()
}
