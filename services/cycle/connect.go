package cycle

import (
	"time"

	"envlogger-go/types"
	"envlogger-go/x/logx"
)

// Result classifies how the association attempt ended.
type Result uint8

const (
	ResConnected Result = iota
	ResAuthFailed
	ResNoAccessPoint
	ResGenericFailure
)

func (r Result) String() string {
	switch r {
	case ResConnected:
		return "connected"
	case ResAuthFailed:
		return "auth_failed"
	case ResNoAccessPoint:
		return "no_access_point"
	}
	return "generic_failure"
}

// ConnectConfig bounds the single association attempt.
type ConnectConfig struct {
	SSID     string
	Password string
	Timeout  time.Duration // absolute deadline (default 10s)
	Poll     time.Duration // status poll interval (default 500ms)
}

func (c ConnectConfig) withDefaults() ConnectConfig {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Poll <= 0 {
		c.Poll = 500 * time.Millisecond
	}
	return c
}

// Connectivity drives the radio through one bounded-time association.
// On failure the radio's last status code decides the classification;
// teardown stays with the orchestrator.
type Connectivity struct {
	radio Wireless
	cfg   ConnectConfig
	yield YieldFunc
	log   logx.Logger
}

func NewConnectivity(radio Wireless, cfg ConnectConfig, yield YieldFunc) *Connectivity {
	return &Connectivity{
		radio: radio,
		cfg:   cfg.withDefaults(),
		yield: yield,
		log:   logx.New("connect"),
	}
}

func (c *Connectivity) Run() Result {
	c.log.Infof("associating with %q", c.cfg.SSID)
	c.radio.BeginAssociation(c.cfg.SSID, c.cfg.Password)

	ok := pollUntil(func() bool {
		return c.radio.Status() == types.WirelessConnected
	}, c.cfg.Poll, c.cfg.Timeout, c.yield)
	if ok {
		c.log.Infof("associated")
		return ResConnected
	}

	last := c.radio.Status()
	res := Classify(last)
	c.log.Errorf("association failed: status %s -> %s", last, res)
	return res
}

// Classify maps a terminal radio status to a Result. The mapping is
// total: any status this switch does not name is a generic failure.
func Classify(s types.WirelessStatus) Result {
	switch s {
	case types.WirelessConnected:
		return ResConnected
	case types.WirelessNoAPFound:
		return ResNoAccessPoint
	case types.WirelessConnectFailed, types.WirelessWrongPassword:
		return ResAuthFailed
	default:
		return ResGenericFailure
	}
}
