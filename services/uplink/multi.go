package uplink

import (
	"github.com/hashicorp/go-multierror"

	"envlogger-go/services/cycle"
)

// Multi fans one record out to several backends. Every backend gets
// attempted; failures are collected rather than short-circuiting, so a
// dead broker cannot starve the FTP drop of data.
type Multi struct {
	backends []cycle.Uploader
}

func NewMulti(backends ...cycle.Uploader) *Multi {
	return &Multi{backends: backends}
}

func (m *Multi) UploadAppend(basePath, filename, content string, createHeader bool) error {
	var errs *multierror.Error
	for _, b := range m.backends {
		if err := b.UploadAppend(basePath, filename, content, createHeader); err != nil {
			log.Warnf("backend failed: %v", err)
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
