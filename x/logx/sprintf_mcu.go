//go:build rp2040 || rp2350

package logx

import "io"

func sprintf(format string, a ...any) string { return miniSprintf(format, a...) }

func defaultOutput() io.Writer { return discard{} }
