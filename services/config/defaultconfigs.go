package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Indoor unit: humidity-capable sensor, no filename suffix.
const cfgIndoor = `{
  "suffix": "",
  "sensor": {
    "variant": "tph",
    "sda_pin": 21,
    "scl_pin": 22,
    "readings": 5,
    "interval_ms": 3000
  },
  "wifi": {
    "ssid": "AX72-IoT",
    "password": "SecureIoT_Ax72",
    "timeout_ms": 10000
  },
  "ntp": {
    "server": "time.google.com",
    "offset_seconds": 19800
  },
  "ftp": {
    "server": "192.168.0.1",
    "port": 21,
    "user": "admin",
    "password": "f6a3067773",
    "base_path": "/G/USD_TPL/"
  },
  "sleep_minutes": 5
}`

// Outdoor unit: pressure/temperature only, "_outside" suffix.
const cfgOutdoor = `{
  "suffix": "_outside",
  "sensor": {
    "variant": "tp",
    "sda_pin": 12,
    "scl_pin": 14,
    "readings": 5,
    "interval_ms": 3000
  },
  "wifi": {
    "ssid": "AX72-IoT",
    "password": "SecureIoT_Ax72",
    "timeout_ms": 10000
  },
  "ntp": {
    "server": "time.google.com",
    "offset_seconds": 19800
  },
  "ftp": {
    "server": "192.168.0.1",
    "port": 21,
    "user": "admin",
    "password": "f6a3067773",
    "base_path": "/G/USD_TPL/"
  },
  "sleep_minutes": 5
}`

var embeddedConfigs = map[string][]byte{
	"indoor":  []byte(cfgIndoor),
	"outdoor": []byte(cfgOutdoor),
}
