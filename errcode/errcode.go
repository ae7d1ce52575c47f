package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Sensor path.
	SensorInit        Code = "sensor_init"
	SensorReadInvalid Code = "sensor_read_invalid" // non-fatal, per sample

	// Wireless path.
	NetAuth    Code = "net_auth"
	NetNoAP    Code = "net_no_ap"
	NetGeneric Code = "net_generic"

	// Non-fatal stages.
	TimeSync Code = "time_sync"
	Upload   Code = "upload"

	Timeout     Code = "timeout"
	Unsupported Code = "unsupported"
	BadConfig   Code = "bad_config"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Fatal reports whether a code aborts the remaining pipeline.
// Only sensor initialization and wireless association failures are
// fatal; everything else degrades the cycle but lets it finish.
func Fatal(c Code) bool {
	switch c {
	case SensorInit, NetAuth, NetNoAP, NetGeneric:
		return true
	}
	return false
}
