package types

// SensorVariant selects the capability set of the attached sensor.
// Resolved once at construction; carried through the aggregate and the
// report so humidity handling is never decided twice.
type SensorVariant uint8

const (
	// VariantTP reads temperature and pressure only (BMP280 class).
	VariantTP SensorVariant = iota
	// VariantTPH additionally reads relative humidity (BME280 class).
	VariantTPH
)

func (v SensorVariant) HasHumidity() bool { return v == VariantTPH }

func (v SensorVariant) String() string {
	if v == VariantTPH {
		return "tph"
	}
	return "tp"
}

// WirelessStatus is the raw terminal status reported by the radio.
// The set mirrors the codes a station-mode WiFi stack can land in.
type WirelessStatus uint8

const (
	WirelessIdle WirelessStatus = iota
	WirelessConnected
	WirelessDisconnected
	WirelessNoAPFound
	WirelessConnectFailed
	WirelessWrongPassword
)

func (s WirelessStatus) String() string {
	switch s {
	case WirelessIdle:
		return "idle"
	case WirelessConnected:
		return "connected"
	case WirelessDisconnected:
		return "disconnected"
	case WirelessNoAPFound:
		return "no_ap_found"
	case WirelessConnectFailed:
		return "connect_failed"
	case WirelessWrongPassword:
		return "wrong_password"
	}
	return "unknown"
}

// Condition names one externally observable cycle state. Each maps to
// a fixed, visually distinct indicator pattern.
type Condition uint8

const (
	CondStartup Condition = iota
	CondConnecting
	CondConnected
	CondAuthFailure
	CondNoAccessPoint
	CondSensorFailure
	CondUploadFailure
	CondSleepEntry
)

func (c Condition) String() string {
	switch c {
	case CondStartup:
		return "startup"
	case CondConnecting:
		return "connecting"
	case CondConnected:
		return "connected"
	case CondAuthFailure:
		return "auth_failure"
	case CondNoAccessPoint:
		return "no_access_point"
	case CondSensorFailure:
		return "sensor_failure"
	case CondUploadFailure:
		return "upload_failure"
	case CondSleepEntry:
		return "sleep_entry"
	}
	return "unknown"
}
