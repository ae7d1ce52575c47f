package cycle

import (
	"strconv"

	"envlogger-go/errcode"
	"envlogger-go/x/logx"
	"envlogger-go/x/timex"
)

// HeaderLine is written once when a remote file is created. The
// downstream plotter recognizes headers by the "Date,Sample" prefix.
const HeaderLine = "Date,Sample Size,Temperature (C),Pressure (hPa),Humidity (%)\r\n"

// humidityNA marks the humidity column for sensors without one.
const humidityNA = "N/A"

// Record is one formatted report line, immutable after construction.
type Record struct {
	EpochSeconds   int64
	Timestamp      string
	SampleCount    int
	AvgTemperature float64
	AvgPressure    float64
	AvgHumidity    float64
	HasHumidity    bool
}

// BuildRecord derives the report fields from the cycle's aggregate and
// the current (possibly unsynced) clock value.
func BuildRecord(agg Aggregate, epochSeconds int64) Record {
	return Record{
		EpochSeconds:   epochSeconds,
		Timestamp:      timex.Stamp(epochSeconds),
		SampleCount:    agg.Count(),
		AvgTemperature: agg.AvgTemperature(),
		AvgPressure:    agg.AvgPressure(),
		AvgHumidity:    agg.AvgHumidity(),
		HasHumidity:    agg.Variant().HasHumidity(),
	}
}

// CSVLine renders the fixed field order: timestamp, sample count,
// temperature (1dp), pressure (1dp), humidity (2dp) or N/A. CRLF
// terminated to match the files the logger has always written.
func (r Record) CSVLine() string {
	hum := humidityNA
	if r.HasHumidity {
		hum = logx.FormatFixed(r.AvgHumidity, 2)
	}
	return r.Timestamp + "," +
		strconv.Itoa(r.SampleCount) + "," +
		logx.FormatFixed(r.AvgTemperature, 1) + "," +
		logx.FormatFixed(r.AvgPressure, 1) + "," +
		hum + "\r\n"
}

// Filename derives the deterministic remote name for a record's date,
// e.g. "09_10_2025_outside.csv".
func Filename(epochSeconds int64, suffix string) string {
	return timex.DateStamp(epochSeconds) + suffix + ".csv"
}

// ReportConfig locates the remote file.
type ReportConfig struct {
	BasePath string
	Suffix   string
}

// Report formats the aggregate and drives the upload collaborator.
// Upload failure is non-fatal to the cycle.
type Report struct {
	up    Uploader
	clock TimeSource
	cfg   ReportConfig
	log   logx.Logger
}

func NewReport(up Uploader, clock TimeSource, cfg ReportConfig) *Report {
	return &Report{up: up, clock: clock, cfg: cfg, log: logx.New("report")}
}

// Run builds the record and requests an append with
// create-header-if-missing semantics.
func (r *Report) Run(agg Aggregate) error {
	rec := BuildRecord(agg, r.clock.NowEpochSeconds())
	name := Filename(rec.EpochSeconds, r.cfg.Suffix)

	r.log.Infof("uploading %d-sample record to %s%s", rec.SampleCount, r.cfg.BasePath, name)
	if err := r.up.UploadAppend(r.cfg.BasePath, name, rec.CSVLine(), true); err != nil {
		r.log.Errorf("upload failed: %v", err)
		return &errcode.E{C: errcode.Upload, Op: "report", Err: err}
	}
	r.log.Infof("upload ok")
	return nil
}
