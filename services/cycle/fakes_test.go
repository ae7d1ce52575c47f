package cycle

import (
	"errors"
	"math"
	"time"

	"envlogger-go/types"
)

// Fakes for the collaborator contracts, shared by the tests in this
// package. Value queues repeat their last element once drained.

type fakeSensor struct {
	variant   types.SensorVariant
	initOKAt  map[uint16]int // address -> call number (1-based) that succeeds; 0 = never
	initCalls []uint16

	temps, press, hums []float64
	ti, pi, hi         int
	humReads           int
}

func (f *fakeSensor) Init(addr uint16) error {
	f.initCalls = append(f.initCalls, addr)
	n := 0
	for _, a := range f.initCalls {
		if a == addr {
			n++
		}
	}
	if ok := f.initOKAt[addr]; ok != 0 && n >= ok {
		return nil
	}
	return errors.New("no ack")
}

func pop(vals []float64, i *int) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	if *i >= len(vals) {
		return vals[len(vals)-1]
	}
	v := vals[*i]
	*i++
	return v
}

func (f *fakeSensor) ReadTemperature() float64 { return pop(f.temps, &f.ti) }
func (f *fakeSensor) ReadPressure() float64    { return pop(f.press, &f.pi) }
func (f *fakeSensor) ReadHumidity() float64 {
	f.humReads++
	return pop(f.hums, &f.hi)
}
func (f *fakeSensor) Variant() types.SensorVariant { return f.variant }

type fakeRadio struct {
	statuses  []types.WirelessStatus
	si        int
	began     bool
	ssid      string
	downCalls int
}

func (f *fakeRadio) BeginAssociation(ssid, password string) {
	f.began = true
	f.ssid = ssid
}

func (f *fakeRadio) Status() types.WirelessStatus {
	if len(f.statuses) == 0 {
		return types.WirelessIdle
	}
	if f.si >= len(f.statuses) {
		return f.statuses[len(f.statuses)-1]
	}
	s := f.statuses[f.si]
	f.si++
	return s
}

func (f *fakeRadio) DisconnectAndPowerDown() { f.downCalls++ }

type fakeClock struct {
	epoch     int64
	syncCalls int
	onSync    func(n int) int64 // optional: epoch after nth sync
}

func (f *fakeClock) RequestSync(server string, offsetSeconds int) {
	f.syncCalls++
	if f.onSync != nil {
		f.epoch = f.onSync(f.syncCalls)
	}
}

func (f *fakeClock) NowEpochSeconds() int64 { return f.epoch }

type uploadCall struct {
	basePath, filename, content string
	header                      bool
}

type fakeUploader struct {
	err   error
	calls []uploadCall
}

func (f *fakeUploader) UploadAppend(basePath, filename, content string, header bool) error {
	f.calls = append(f.calls, uploadCall{basePath, filename, content, header})
	return f.err
}

type fakeSignal struct {
	seen []types.Condition
}

func (f *fakeSignal) Signal(c types.Condition) { f.seen = append(f.seen, c) }

type fakeSleeper struct {
	calls int
	last  time.Duration
}

func (f *fakeSleeper) ScheduleWake(d time.Duration) {
	f.calls++
	f.last = d
}

type fakePower struct {
	trims int
}

func (f *fakePower) Trim() { f.trims++ }

// fastAcquire returns budgets that keep tests quick.
func fastAcquire() AcquireConfig {
	return AcquireConfig{
		InitAttempts: 3,
		InitRetry:    time.Millisecond,
		Warmup:       time.Millisecond,
		Readings:     5,
		Interval:     time.Millisecond,
	}
}

func fastConnect() ConnectConfig {
	return ConnectConfig{
		SSID:     "AX72-IoT",
		Password: "pw",
		Timeout:  20 * time.Millisecond,
		Poll:     time.Millisecond,
	}
}

func fastTimeSync() TimeSyncConfig {
	return TimeSyncConfig{
		Server:    "time.google.com",
		Attempts:  3,
		Poll:      time.Millisecond,
		PollCount: 3,
		Backoff:   time.Millisecond,
	}
}
