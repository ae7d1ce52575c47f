// Package config resolves the per-device configuration. Configs are
// embedded JSON blobs keyed by device ID (flash, not filesystem) and
// decoded once at start; nothing is runtime-reloadable.
package config

import (
	"errors"

	"github.com/andreyvit/tinyjson"

	"envlogger-go/types"
	"envlogger-go/x/mathx"
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Load resolves, parses and normalizes the config for a device ID.
func Load(device string) (types.Config, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.Config{}, errors.New("no embedded config for device: " + device)
	}
	return Parse(device, raw)
}

// Parse decodes raw JSON into a normalized Config.
func Parse(device string, raw []byte) (types.Config, error) {
	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return types.Config{}, errors.New("embedded config is not a JSON object")
	}

	cfg := types.Config{
		Device: device,
		Suffix: str(m, "suffix", ""),
	}

	if s, ok := m["sensor"].(map[string]any); ok {
		cfg.Sensor = types.SensorConfig{
			Variant:      str(s, "variant", "tp"),
			SDAPin:       num(s, "sda_pin", 21),
			SCLPin:       num(s, "scl_pin", 22),
			Readings:     num(s, "readings", 5),
			IntervalMs:   num(s, "interval_ms", 3000),
			WarmupMs:     num(s, "warmup_ms", 2000),
			InitAttempts: num(s, "init_attempts", 3),
			InitRetryMs:  num(s, "init_retry_ms", 1000),
		}
	}
	if w, ok := m["wifi"].(map[string]any); ok {
		cfg.WiFi = types.WiFiConfig{
			SSID:      str(w, "ssid", ""),
			Password:  str(w, "password", ""),
			TimeoutMs: num(w, "timeout_ms", 10000),
			PollMs:    num(w, "poll_ms", 500),
		}
	}
	if n, ok := m["ntp"].(map[string]any); ok {
		cfg.NTP = types.NTPConfig{
			Server:        str(n, "server", "pool.ntp.org"),
			OffsetSeconds: num(n, "offset_seconds", 0),
			Attempts:      num(n, "attempts", 3),
			PollMs:        num(n, "poll_ms", 1000),
			PollCount:     num(n, "poll_count", 10),
			BackoffMs:     num(n, "backoff_ms", 2000),
		}
	}
	if f, ok := m["ftp"].(map[string]any); ok {
		cfg.FTP = types.FTPConfig{
			Server:   str(f, "server", ""),
			Port:     num(f, "port", 21),
			User:     str(f, "user", ""),
			Password: str(f, "password", ""),
			BasePath: str(f, "base_path", "/"),
		}
	}
	if q, ok := m["mqtt"].(map[string]any); ok {
		cfg.MQTT = types.MQTTConfig{
			Broker:   str(q, "broker", ""),
			Topic:    str(q, "topic", ""),
			ClientID: str(q, "client_id", "envlogger-"+device),
		}
	}
	cfg.SleepMinutes = num(m, "sleep_minutes", 5)

	normalize(&cfg)
	return cfg, nil
}

// normalize clamps the bounded knobs so a bad blob cannot wedge the
// cycle (e.g. a zero sleep interval would never let the battery rest).
func normalize(cfg *types.Config) {
	cfg.Sensor.Readings = mathx.Clamp(cfg.Sensor.Readings, 1, 60)
	cfg.Sensor.InitAttempts = mathx.Clamp(cfg.Sensor.InitAttempts, 1, 10)
	cfg.NTP.Attempts = mathx.Clamp(cfg.NTP.Attempts, 1, 10)
	cfg.NTP.PollCount = mathx.Clamp(cfg.NTP.PollCount, 1, 60)
	cfg.SleepMinutes = mathx.Clamp(cfg.SleepMinutes, 1, 24*60)
}

func str(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func num(m map[string]any, key string, def int) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	if v, ok := m[key].(int); ok {
		return v
	}
	return def
}
