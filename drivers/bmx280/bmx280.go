// Package bmx280 provides a driver for the Bosch BMP280/BME280
// pressure/temperature(/humidity) sensors. One Device type serves both
// parts; the chip ID read at Configure time decides whether the
// humidity path exists.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read
// when both w and r are provided, without releasing the bus.
//
// The driver stays in fixed-point: temperature in centi-°C, pressure
// in Pa, humidity in centi-%RH.
package bmx280

import (
	"errors"

	"tinygo.org/x/drivers"
)

// I2C addresses the parts respond on (SDO strap selects).
const (
	AddressPrimary   = 0x76
	AddressSecondary = 0x77
)

// Chip IDs reported by register 0xD0.
const (
	chipIDBMP280 = 0x58
	chipIDBME280 = 0x60
)

// Registers.
const (
	regChipID   = 0xD0
	regReset    = 0xE0
	regCtrlHum  = 0xF2
	regStatus   = 0xF3
	regCtrlMeas = 0xF4
	regConfig   = 0xF5
	regData     = 0xF7 // press[3] temp[3] hum[2]
	regCalib    = 0x88 // T1..T3, P1..P9 (24 bytes) + H1 at 0xA1
	regCalibH1  = 0xA1
	regCalibHum = 0xE1 // H2..H6 (7 bytes)

	resetCode = 0xB6
)

// Measurement profile: matches the logger's long-standing settings
// (temp x2, pressure x16, humidity x1, IIR filter 16, standby 500ms,
// normal mode).
const (
	ctrlHumX1    = 0x01
	ctrlMeasNorm = 0x57 // osrs_t=x2, osrs_p=x16, mode=normal
	configNorm   = 0x90 // t_sb=500ms, filter=16
)

// A raw sample of 0x80000 means the conversion was skipped.
const rawSkipped = 0x80000

// Errors returned by the driver.
var (
	ErrNotFound      = errors.New("bmx280: no sensor at address")
	ErrInvalidSample = errors.New("bmx280: invalid sample")
	ErrNoHumidity    = errors.New("bmx280: part has no humidity sensor")
)

type calibration struct {
	t1         uint16
	t2, t3     int16
	p1         uint16
	p2, p3, p4 int16
	p5, p6, p7 int16
	p8, p9     int16

	h1, h3 uint8
	h2     int16
	h4, h5 int16
	h6     int8
}

// Device wraps an I2C connection to a BMP280 or BME280.
type Device struct {
	bus     drivers.I2C
	Address uint16

	chipID byte
	cal    calibration
	tFine  int32
	buf    [8]byte // reused for burst reads
}

// New creates a device handle. The I2C bus must already be configured.
// No hardware is touched until Configure.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: AddressPrimary}
}

// Configure probes the chip at addr, loads its calibration and
// programs the measurement profile. ErrNotFound covers both a silent
// bus and an unknown chip ID.
func (d *Device) Configure(addr uint16) error {
	if addr != 0 {
		d.Address = addr
	}
	id := []byte{0}
	if err := d.bus.Tx(d.Address, []byte{regChipID}, id); err != nil {
		return ErrNotFound
	}
	if id[0] != chipIDBMP280 && id[0] != chipIDBME280 {
		return ErrNotFound
	}
	d.chipID = id[0]

	if err := d.readCalibration(); err != nil {
		return err
	}

	// ctrl_hum only latches once ctrl_meas is written after it.
	if d.HasHumidity() {
		if err := d.bus.Tx(d.Address, []byte{regCtrlHum, ctrlHumX1}, nil); err != nil {
			return err
		}
	}
	if err := d.bus.Tx(d.Address, []byte{regConfig, configNorm}, nil); err != nil {
		return err
	}
	return d.bus.Tx(d.Address, []byte{regCtrlMeas, ctrlMeasNorm}, nil)
}

// Connected reports whether a known chip answers at the current address.
func (d *Device) Connected() bool {
	id := []byte{0}
	if err := d.bus.Tx(d.Address, []byte{regChipID}, id); err != nil {
		return false
	}
	return id[0] == chipIDBMP280 || id[0] == chipIDBME280
}

// HasHumidity reports whether the configured part is a BME280.
func (d *Device) HasHumidity() bool { return d.chipID == chipIDBME280 }

// Reset issues a soft reset. Give the part ~2ms before using it.
func (d *Device) Reset() error {
	return d.bus.Tx(d.Address, []byte{regReset, resetCode}, nil)
}

func (d *Device) readCalibration() error {
	buf := make([]byte, 24)
	if err := d.bus.Tx(d.Address, []byte{regCalib}, buf); err != nil {
		return err
	}
	u16 := func(i int) uint16 { return uint16(buf[i]) | uint16(buf[i+1])<<8 }
	d.cal.t1 = u16(0)
	d.cal.t2 = int16(u16(2))
	d.cal.t3 = int16(u16(4))
	d.cal.p1 = u16(6)
	d.cal.p2 = int16(u16(8))
	d.cal.p3 = int16(u16(10))
	d.cal.p4 = int16(u16(12))
	d.cal.p5 = int16(u16(14))
	d.cal.p6 = int16(u16(16))
	d.cal.p7 = int16(u16(18))
	d.cal.p8 = int16(u16(20))
	d.cal.p9 = int16(u16(22))

	if !d.HasHumidity() {
		return nil
	}
	h1 := []byte{0}
	if err := d.bus.Tx(d.Address, []byte{regCalibH1}, h1); err != nil {
		return err
	}
	hbuf := make([]byte, 7)
	if err := d.bus.Tx(d.Address, []byte{regCalibHum}, hbuf); err != nil {
		return err
	}
	d.cal.h1 = h1[0]
	d.cal.h2 = int16(uint16(hbuf[0]) | uint16(hbuf[1])<<8)
	d.cal.h3 = hbuf[2]
	d.cal.h4 = int16(hbuf[3])<<4 | int16(hbuf[4])&0x0F
	d.cal.h5 = int16(hbuf[5])<<4 | int16(hbuf[4])>>4
	d.cal.h6 = int8(hbuf[6])
	return nil
}

// readRaw bursts the whole measurement block.
func (d *Device) readRaw() (adcP, adcT, adcH int32, err error) {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, []byte{regData}, data); err != nil {
		return 0, 0, 0, err
	}
	adcP = int32(data[0])<<12 | int32(data[1])<<4 | int32(data[2])>>4
	adcT = int32(data[3])<<12 | int32(data[4])<<4 | int32(data[5])>>4
	adcH = int32(data[6])<<8 | int32(data[7])
	return adcP, adcT, adcH, nil
}

// compensateTemp updates tFine and returns temperature in centi-°C.
func (d *Device) compensateTemp(adcT int32) int32 {
	v1 := (((adcT >> 3) - (int32(d.cal.t1) << 1)) * int32(d.cal.t2)) >> 11
	v2 := (((((adcT >> 4) - int32(d.cal.t1)) * ((adcT >> 4) - int32(d.cal.t1))) >> 12) *
		int32(d.cal.t3)) >> 14
	d.tFine = v1 + v2
	return (d.tFine*5 + 128) >> 8
}

// ReadTemperature returns the temperature in centi-°C (2137 = 21.37°C).
func (d *Device) ReadTemperature() (int32, error) {
	_, adcT, _, err := d.readRaw()
	if err != nil {
		return 0, err
	}
	if adcT == rawSkipped {
		return 0, ErrInvalidSample
	}
	return d.compensateTemp(adcT), nil
}

// ReadPressure returns the pressure in Pa.
func (d *Device) ReadPressure() (int32, error) {
	adcP, adcT, _, err := d.readRaw()
	if err != nil {
		return 0, err
	}
	if adcT == rawSkipped || adcP == rawSkipped {
		return 0, ErrInvalidSample
	}
	d.compensateTemp(adcT) // refresh tFine

	v1 := int64(d.tFine) - 128000
	v2 := v1 * v1 * int64(d.cal.p6)
	v2 += (v1 * int64(d.cal.p5)) << 17
	v2 += int64(d.cal.p4) << 35
	v1 = ((v1 * v1 * int64(d.cal.p3)) >> 8) + ((v1 * int64(d.cal.p2)) << 12)
	v1 = ((int64(1) << 47) + v1) * int64(d.cal.p1) >> 33
	if v1 == 0 {
		return 0, ErrInvalidSample
	}
	p := int64(1048576 - adcP)
	p = (((p << 31) - v2) * 3125) / v1
	v1 = (int64(d.cal.p9) * (p >> 13) * (p >> 13)) >> 25
	v2 = (int64(d.cal.p8) * p) >> 19
	p = ((p + v1 + v2) >> 8) + (int64(d.cal.p7) << 4)
	return int32(p >> 8), nil
}

// ReadHumidity returns relative humidity in centi-%RH (4850 = 48.50%).
// ErrNoHumidity on BMP280 parts.
func (d *Device) ReadHumidity() (int32, error) {
	if !d.HasHumidity() {
		return 0, ErrNoHumidity
	}
	_, adcT, adcH, err := d.readRaw()
	if err != nil {
		return 0, err
	}
	if adcT == rawSkipped || adcH == 0x8000 {
		return 0, ErrInvalidSample
	}
	d.compensateTemp(adcT)

	x := d.tFine - 76800
	a := (((adcH << 14) - (int32(d.cal.h4) << 20) - (int32(d.cal.h5) * x)) + 16384) >> 15
	b := (x * int32(d.cal.h6)) >> 10
	c := ((x * int32(d.cal.h3)) >> 11) + 32768
	e := (((b*c)>>10)+2097152)*int32(d.cal.h2) + 8192
	h := a * (e >> 14)
	h -= ((((h >> 15) * (h >> 15)) >> 7) * int32(d.cal.h1)) >> 4
	if h < 0 {
		h = 0
	}
	if h > 419430400 {
		h = 419430400
	}
	per1024 := h >> 12 // %RH in 1/1024 steps
	return int32(int64(per1024) * 100 >> 10), nil
}
