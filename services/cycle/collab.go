// Package cycle implements the wake-cycle: power trim, sensor
// acquisition, radio association, clock sync, aggregation, upload,
// radio teardown and sleep scheduling. Each stage owns its retry
// policy and timeout; the orchestrator only sequences outcomes.
//
// Everything here runs on one logical thread. Waiting is synchronous
// and bounded, broken into short slices that invoke a cooperative
// yield hook so host background work (network servicing, watchdog)
// keeps running.
package cycle

import (
	"time"

	"envlogger-go/types"
)

// Sensor is the ambient-sensor collaborator. Readings return NaN when
// the underlying sample is invalid; the stage never sees a driver
// error type, only the NaN marker.
type Sensor interface {
	// Init probes and configures the sensor at the given bus address.
	Init(addr uint16) error
	ReadTemperature() float64
	ReadPressure() float64
	ReadHumidity() float64
	Variant() types.SensorVariant
}

// Wireless is the radio collaborator. BeginAssociation starts a
// station-mode association and returns immediately; progress is
// observed through Status. On a failed cycle the radio is left
// powered but unassociated; DisconnectAndPowerDown is the
// orchestrator's teardown call.
type Wireless interface {
	BeginAssociation(ssid, password string)
	Status() types.WirelessStatus
	DisconnectAndPowerDown()
}

// TimeSource is the clock collaborator. RequestSync kicks off a sync
// against the given server; NowEpochSeconds reports the current local
// clock (offset already applied) whether or not a sync ever landed.
type TimeSource interface {
	RequestSync(server string, offsetSeconds int)
	NowEpochSeconds() int64
}

// Uploader appends one record to a remote file, creating it with a
// header line first when createHeader is set and the file is missing.
type Uploader interface {
	UploadAppend(basePath, filename, content string, createHeader bool) error
}

// Signaler reports a condition through the status indicator. The call
// blocks for the whole pattern and cannot fail.
type Signaler interface {
	Signal(c types.Condition)
}

// SleepScheduler ends the cycle. ScheduleWake is expected to never
// return on real hardware; the next cycle starts from a cold boot.
type SleepScheduler interface {
	ScheduleWake(d time.Duration)
}

// Power trims startup power draw (e.g. disables radios left on by the
// boot ROM) before the pipeline runs. Optional.
type Power interface {
	Trim()
}
