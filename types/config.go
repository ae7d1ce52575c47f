package types

// Logger configuration, embedded per device and resolved at start.
// Durations are carried in milliseconds to keep the embedded JSON flat
// and integer-only; services convert once at construction.

type Config struct {
	Device string `json:"device"`
	// Suffix distinguishes sensor placement in remote filenames,
	// e.g. "_outside". Empty for the indoor unit.
	Suffix string `json:"suffix"`

	Sensor SensorConfig `json:"sensor"`
	WiFi   WiFiConfig   `json:"wifi"`
	NTP    NTPConfig    `json:"ntp"`
	FTP    FTPConfig    `json:"ftp"`
	MQTT   MQTTConfig   `json:"mqtt"`

	SleepMinutes int `json:"sleep_minutes"`
}

type SensorConfig struct {
	Variant      string `json:"variant"` // "tph" or "tp"
	SDAPin       int    `json:"sda_pin"`
	SCLPin       int    `json:"scl_pin"`
	Readings     int    `json:"readings"`
	IntervalMs   int    `json:"interval_ms"`
	WarmupMs     int    `json:"warmup_ms"`
	InitAttempts int    `json:"init_attempts"`
	InitRetryMs  int    `json:"init_retry_ms"`
}

func (c SensorConfig) SensorVariant() SensorVariant {
	if c.Variant == "tph" {
		return VariantTPH
	}
	return VariantTP
}

type WiFiConfig struct {
	SSID      string `json:"ssid"`
	Password  string `json:"password"`
	TimeoutMs int    `json:"timeout_ms"`
	PollMs    int    `json:"poll_ms"`
}

type NTPConfig struct {
	Server        string `json:"server"`
	OffsetSeconds int    `json:"offset_seconds"`
	Attempts      int    `json:"attempts"`
	PollMs        int    `json:"poll_ms"`
	PollCount     int    `json:"poll_count"`
	BackoffMs     int    `json:"backoff_ms"`
}

type FTPConfig struct {
	Server   string `json:"server"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	BasePath string `json:"base_path"`
}

// MQTTConfig is optional; an empty Broker disables the MQTT uplink.
type MQTTConfig struct {
	Broker   string `json:"broker"`
	Topic    string `json:"topic"`
	ClientID string `json:"client_id"`
}
