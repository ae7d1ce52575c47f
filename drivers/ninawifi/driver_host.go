//go:build !(rp2040 || rp2350)

package ninawifi

import "errors"

var errUnsupported = errors.New("ninawifi: radio requires an rp2 build")

// New returns an adaptor whose radio never associates. Host builds use
// the loopback radio in the harness instead; this exists so code that
// constructs the real radio still compiles off-target.
func New() *Adaptor {
	return newAdaptor(hostDevice{})
}

type hostDevice struct{}

func (hostDevice) Begin(ssid, password string) error { return errUnsupported }
func (hostDevice) ConnectionStatus() (uint8, error)  { return ninaIdle, errUnsupported }
func (hostDevice) Disconnect() error                 { return nil }
func (hostDevice) PowerOff()                         {}
