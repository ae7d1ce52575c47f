package cycle

// Outcome is the single per-cycle verdict. Consumed only by the
// status signalling and the sleep handoff; never persisted.
type Outcome uint8

const (
	OutcomeCompleted Outcome = iota
	OutcomeSensorUnavailable
	OutcomeNetworkUnavailable
	OutcomeUploadFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeSensorUnavailable:
		return "sensor_unavailable"
	case OutcomeNetworkUnavailable:
		return "network_unavailable"
	case OutcomeUploadFailed:
		return "upload_failed"
	}
	return "unknown"
}

// CycleResult pairs the outcome with the connectivity classification
// for the network-unavailable case.
type CycleResult struct {
	Outcome Outcome
	Network Result // meaningful when Outcome == OutcomeNetworkUnavailable
}
