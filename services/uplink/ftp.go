// Package uplink delivers finished records off the device: appending
// CSV lines to a file on an FTP server and, optionally, publishing the
// same record to an MQTT broker.
package uplink

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"envlogger-go/errcode"
	"envlogger-go/services/cycle"
	"envlogger-go/types"
	"envlogger-go/x/logx"
)

var log = logx.New("uplink")

const dialTimeout = 10 * time.Second

// ftpConn is the slice of *ftp.ServerConn the uploader uses, split out
// so tests can run against a fake server.
type ftpConn interface {
	Login(user, password string) error
	FileSize(path string) (int64, error)
	Append(path string, r io.Reader) error
	Quit() error
}

// DialFunc opens a connection to an FTP server.
type DialFunc func(addr string) (ftpConn, error)

func defaultDial(addr string) (ftpConn, error) {
	c, err := ftp.Dial(addr, ftp.DialWithTimeout(dialTimeout))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FTPUploader appends records to daily CSV files on a remote server.
// Each upload is one short-lived session: dial, login, append, quit.
// Holding a control connection across a multi-minute sleep would only
// get it dropped.
type FTPUploader struct {
	cfg  types.FTPConfig
	dial DialFunc
}

func NewFTP(cfg types.FTPConfig) *FTPUploader {
	return &FTPUploader{cfg: cfg, dial: defaultDial}
}

// UploadAppend appends content to basePath+filename. When createHeader
// is set and the remote file does not exist yet, header goes in first.
func (u *FTPUploader) UploadAppend(basePath, filename, content string, createHeader bool) error {
	addr := u.cfg.Server + ":" + strconv.Itoa(u.cfg.Port)
	conn, err := u.dial(addr)
	if err != nil {
		return &errcode.E{C: errcode.Upload, Op: "ftp.dial", Err: err}
	}
	defer func() {
		if err := conn.Quit(); err != nil {
			log.Warnf("quit: %v", err)
		}
	}()

	if err := conn.Login(u.cfg.User, u.cfg.Password); err != nil {
		return &errcode.E{C: errcode.Upload, Op: "ftp.login", Err: err}
	}

	path := basePath + filename
	payload := content
	if createHeader {
		// FileSize errors on a missing file; that is the signal the
		// header is still needed.
		if _, err := conn.FileSize(path); err != nil {
			payload = cycle.HeaderLine + content
		}
	}

	if err := conn.Append(path, strings.NewReader(payload)); err != nil {
		return &errcode.E{C: errcode.Upload, Op: "ftp.append", Msg: path, Err: err}
	}
	log.Infof("appended %d bytes to %s", len(payload), path)
	return nil
}
