//go:build !(rp2040 || rp2350)

package logx

import (
	"fmt"
	"io"
	"os"
)

func sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }

func defaultOutput() io.Writer { return os.Stdout }
