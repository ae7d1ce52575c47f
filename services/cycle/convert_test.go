package cycle

import (
	"testing"
	"time"

	"envlogger-go/types"
)

func TestFromDeviceConfig(t *testing.T) {
	cfg := types.Config{
		Suffix: "_outside",
		Sensor: types.SensorConfig{
			Readings: 5, IntervalMs: 3000, WarmupMs: 2000,
			InitAttempts: 3, InitRetryMs: 1000,
		},
		WiFi: types.WiFiConfig{
			SSID: "shed", Password: "hunter2", TimeoutMs: 10000, PollMs: 500,
		},
		NTP: types.NTPConfig{
			Server: "time.google.com", OffsetSeconds: 19800,
			Attempts: 3, PollMs: 1000, PollCount: 10, BackoffMs: 2000,
		},
		FTP:          types.FTPConfig{BasePath: "/G/USD_TPL/"},
		SleepMinutes: 5,
	}

	got := FromDeviceConfig(cfg)
	if got.Acquire.Interval != 3*time.Second || got.Acquire.Warmup != 2*time.Second {
		t.Fatalf("acquire timings = %+v", got.Acquire)
	}
	if got.Connect.SSID != "shed" || got.Connect.Timeout != 10*time.Second {
		t.Fatalf("connect = %+v", got.Connect)
	}
	if got.TimeSync.OffsetSeconds != 19800 || got.TimeSync.Backoff != 2*time.Second {
		t.Fatalf("timesync = %+v", got.TimeSync)
	}
	if got.Report.BasePath != "/G/USD_TPL/" || got.Report.Suffix != "_outside" {
		t.Fatalf("report = %+v", got.Report)
	}
	if got.WakeInterval != 5*time.Minute {
		t.Fatalf("wake interval = %v", got.WakeInterval)
	}
}
