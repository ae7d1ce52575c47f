package cycle

import (
	"strings"
	"testing"

	"envlogger-go/errcode"
	"envlogger-go/types"
)

// 2025-10-09 08:53:20 UTC
const testEpoch = int64(1_760_000_000)

func tphAggregate(t *testing.T) Aggregate {
	t.Helper()
	g := NewAggregate(types.VariantTPH)
	g.Add(Sample{Temperature: 21.2, Pressure: 1012.8, Humidity: 48.4})
	g.Add(Sample{Temperature: 21.4, Pressure: 1013.2, Humidity: 48.6})
	return g
}

func TestRecordCSVLine(t *testing.T) {
	rec := BuildRecord(tphAggregate(t), testEpoch)
	got := rec.CSVLine()
	want := "09/10/2025 08:53,2,21.3,1013.0,48.50\r\n"
	if got != want {
		t.Fatalf("csv = %q, want %q", got, want)
	}
}

func TestRecordCSVLineNoHumidity(t *testing.T) {
	g := NewAggregate(types.VariantTP)
	g.Add(Sample{Temperature: 9.96, Pressure: 982.33})
	rec := BuildRecord(g, testEpoch)

	got := rec.CSVLine()
	want := "09/10/2025 08:53,1,10.0,982.3,N/A\r\n"
	if got != want {
		t.Fatalf("csv = %q, want %q", got, want)
	}
}

func TestRecordCSVLineEmptyAggregate(t *testing.T) {
	rec := BuildRecord(NewAggregate(types.VariantTPH), testEpoch)
	if !strings.HasSuffix(rec.CSVLine(), ",0,0.0,0.0,0.00\r\n") {
		t.Fatalf("empty-aggregate csv = %q", rec.CSVLine())
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(testEpoch, ""); got != "09_10_2025.csv" {
		t.Fatalf("filename = %q", got)
	}
	if got := Filename(testEpoch, "_outside"); got != "09_10_2025_outside.csv" {
		t.Fatalf("filename = %q", got)
	}
}

func TestHeaderLineRecognizable(t *testing.T) {
	// The plotter skips headers by this prefix; keep it stable.
	if !strings.HasPrefix(HeaderLine, "Date,Sample") {
		t.Fatalf("header = %q", HeaderLine)
	}
}

func TestReportRequestsHeaderAndPath(t *testing.T) {
	up := &fakeUploader{}
	clk := &fakeClock{epoch: testEpoch}
	r := NewReport(up, clk, ReportConfig{BasePath: "/G/USD_TPL/", Suffix: "_outside"})

	if err := r.Run(tphAggregate(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(up.calls) != 1 {
		t.Fatalf("upload calls = %d", len(up.calls))
	}
	c := up.calls[0]
	if !c.header {
		t.Fatal("must always request create-header-if-missing")
	}
	if c.basePath != "/G/USD_TPL/" || c.filename != "09_10_2025_outside.csv" {
		t.Fatalf("target = %q %q", c.basePath, c.filename)
	}
	if !strings.HasSuffix(c.content, "\r\n") {
		t.Fatalf("content %q not CRLF terminated", c.content)
	}
}

func TestReportUploadFailureIsTyped(t *testing.T) {
	up := &fakeUploader{err: errcode.Timeout}
	r := NewReport(up, &fakeClock{epoch: testEpoch}, ReportConfig{BasePath: "/"})

	err := r.Run(tphAggregate(t))
	if err == nil {
		t.Fatal("expected upload error")
	}
	if errcode.Of(err) != errcode.Upload {
		t.Fatalf("code = %v, want upload", errcode.Of(err))
	}
}
