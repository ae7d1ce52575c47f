package cycle

import (
	"time"

	"envlogger-go/types"
)

// FromDeviceConfig maps the embedded device configuration onto stage
// budgets. The flat millisecond fields convert to durations here,
// once; zero fields keep falling through to the stage defaults.
func FromDeviceConfig(cfg types.Config) Config {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Config{
		Acquire: AcquireConfig{
			InitAttempts: cfg.Sensor.InitAttempts,
			InitRetry:    ms(cfg.Sensor.InitRetryMs),
			Warmup:       ms(cfg.Sensor.WarmupMs),
			Readings:     cfg.Sensor.Readings,
			Interval:     ms(cfg.Sensor.IntervalMs),
		},
		Connect: ConnectConfig{
			SSID:     cfg.WiFi.SSID,
			Password: cfg.WiFi.Password,
			Timeout:  ms(cfg.WiFi.TimeoutMs),
			Poll:     ms(cfg.WiFi.PollMs),
		},
		TimeSync: TimeSyncConfig{
			Server:        cfg.NTP.Server,
			OffsetSeconds: cfg.NTP.OffsetSeconds,
			Attempts:      cfg.NTP.Attempts,
			Poll:          ms(cfg.NTP.PollMs),
			PollCount:     cfg.NTP.PollCount,
			Backoff:       ms(cfg.NTP.BackoffMs),
		},
		Report: ReportConfig{
			BasePath: cfg.FTP.BasePath,
			Suffix:   cfg.Suffix,
		},
		WakeInterval: time.Duration(cfg.SleepMinutes) * time.Minute,
	}
}
