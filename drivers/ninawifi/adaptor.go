// Package ninawifi drives a NINA-W102 WiFi co-processor (the radio on
// the Pico W and Arduino Nano RP2040 Connect) in station mode.
//
// The adaptor exposes the radio through a small internal device
// interface so host tests can substitute a fake; the real SPI-attached
// device lives behind the rp2040/rp2350 build tags.
package ninawifi

import (
	"envlogger-go/types"
	"envlogger-go/x/logx"
)

var log = logx.New("ninawifi")

// NINA firmware connection status codes, as reported over the SPI
// command channel.
const (
	ninaIdle          = 0
	ninaNoSSIDAvail   = 1
	ninaScanCompleted = 2
	ninaConnected     = 3
	ninaConnectFailed = 4
	ninaLost          = 5
	ninaDisconnected  = 6
)

// device is what the adaptor needs from the co-processor.
type device interface {
	// Begin submits the association request. It must not block on the
	// handshake completing.
	Begin(ssid, password string) error
	// ConnectionStatus returns the raw NINA status code.
	ConnectionStatus() (uint8, error)
	Disconnect() error
	PowerOff()
}

// Adaptor adapts the co-processor to the radio collaborator the wake
// cycle polls. Status keeps returning the last known value when the
// command channel itself fails, so a flaky SPI link degrades into a
// classification rather than a panic.
type Adaptor struct {
	dev        device
	began      bool
	beginFail  bool
	lastStatus types.WirelessStatus
}

func newAdaptor(dev device) *Adaptor {
	return &Adaptor{dev: dev, lastStatus: types.WirelessIdle}
}

// BeginAssociation submits the join request. Failures to even submit
// are latched as a connect failure for the status poll to pick up.
func (a *Adaptor) BeginAssociation(ssid, password string) {
	a.began = true
	a.beginFail = false
	a.lastStatus = types.WirelessIdle
	if err := a.dev.Begin(ssid, password); err != nil {
		log.Warnf("association request not accepted: %v", err)
		a.beginFail = true
		a.lastStatus = types.WirelessConnectFailed
	}
}

// Status reports the current association state.
func (a *Adaptor) Status() types.WirelessStatus {
	if !a.began || a.beginFail {
		return a.lastStatus
	}
	code, err := a.dev.ConnectionStatus()
	if err != nil {
		log.Warnf("status query failed: %v", err)
		return a.lastStatus
	}
	a.lastStatus = statusFromNina(code)
	return a.lastStatus
}

// DisconnectAndPowerDown drops the association and cuts power to the
// co-processor. Safe to call in any state.
func (a *Adaptor) DisconnectAndPowerDown() {
	if err := a.dev.Disconnect(); err != nil {
		log.Warnf("disconnect: %v", err)
	}
	a.dev.PowerOff()
	a.began = false
	a.lastStatus = types.WirelessIdle
}

// statusFromNina maps every firmware code to a station status. Codes
// we have never seen still land somewhere sensible.
func statusFromNina(code uint8) types.WirelessStatus {
	switch code {
	case ninaConnected:
		return types.WirelessConnected
	case ninaNoSSIDAvail:
		return types.WirelessNoAPFound
	case ninaConnectFailed:
		return types.WirelessConnectFailed
	case ninaLost, ninaDisconnected:
		return types.WirelessDisconnected
	case ninaIdle, ninaScanCompleted:
		return types.WirelessIdle
	default:
		return types.WirelessDisconnected
	}
}
