package cycle

import (
	"math"
	"testing"

	"envlogger-go/errcode"
	"envlogger-go/types"
)

func TestAcquireProbeLadderExhausted(t *testing.T) {
	s := &fakeSensor{variant: types.VariantTPH}
	a := NewAcquisition(s, fastAcquire(), nil)

	agg, err := a.Run()
	if err == nil {
		t.Fatal("expected init failure")
	}
	if errcode.Of(err) != errcode.SensorInit {
		t.Fatalf("code = %v, want sensor_init", errcode.Of(err))
	}
	if agg.Count() != 0 {
		t.Fatalf("count = %d, want 0", agg.Count())
	}
	// Each pass tries primary then secondary.
	want := []uint16{0x76, 0x77, 0x76, 0x77, 0x76, 0x77}
	if len(s.initCalls) != len(want) {
		t.Fatalf("init calls = %v", s.initCalls)
	}
	for i, addr := range want {
		if s.initCalls[i] != addr {
			t.Fatalf("init call %d = 0x%x, want 0x%x", i, s.initCalls[i], addr)
		}
	}
}

func TestAcquireSecondaryAddressSuccess(t *testing.T) {
	s := &fakeSensor{
		variant:  types.VariantTPH,
		initOKAt: map[uint16]int{0x77: 1},
		temps:    []float64{21},
		press:    []float64{1013},
		hums:     []float64{48},
	}
	a := NewAcquisition(s, fastAcquire(), nil)

	agg, err := a.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Count() != 5 {
		t.Fatalf("count = %d, want 5", agg.Count())
	}
	if len(s.initCalls) != 2 || s.initCalls[1] != 0x77 {
		t.Fatalf("init calls = %v", s.initCalls)
	}
}

func TestAcquireValidationNaNIsFatal(t *testing.T) {
	s := &fakeSensor{
		variant:  types.VariantTPH,
		initOKAt: map[uint16]int{0x76: 1},
		temps:    []float64{math.NaN()},
		press:    []float64{1013},
	}
	a := NewAcquisition(s, fastAcquire(), nil)

	_, err := a.Run()
	if err == nil {
		t.Fatal("expected failure on NaN validation read")
	}
	if errcode.Of(err) != errcode.SensorInit {
		t.Fatalf("code = %v", errcode.Of(err))
	}
}

func TestAcquireSkipsInvalidReadings(t *testing.T) {
	// First temperature is the validation read; of the 5 sampled
	// readings, two have NaN fields.
	s := &fakeSensor{
		variant:  types.VariantTPH,
		initOKAt: map[uint16]int{0x76: 1},
		temps:    []float64{20, 20, math.NaN(), 22, math.NaN(), 24},
		press:    []float64{1000},
		hums:     []float64{50},
	}
	a := NewAcquisition(s, fastAcquire(), nil)

	agg, err := a.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Count() != 3 {
		t.Fatalf("count = %d, want 3", agg.Count())
	}
	if got := agg.AvgTemperature(); got != 22 {
		t.Fatalf("avg temp = %v, want 22", got)
	}
}

func TestAcquireTPVariantNeverReadsHumidity(t *testing.T) {
	s := &fakeSensor{
		variant:  types.VariantTP,
		initOKAt: map[uint16]int{0x76: 1},
		temps:    []float64{10},
		press:    []float64{980},
	}
	a := NewAcquisition(s, fastAcquire(), nil)

	agg, err := a.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Count() != 5 {
		t.Fatalf("count = %d", agg.Count())
	}
	if s.humReads != 0 {
		t.Fatalf("humidity read %d times on TP variant", s.humReads)
	}
}
