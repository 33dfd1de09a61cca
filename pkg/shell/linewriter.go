// pkg/shell/linewriter.go
package shell

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// relayPrefix marks lines coming from the delegated package manager
const relayPrefix = "---> "

// lineWriter buffers subprocess output and emits it one prefixed line at
// a time, so that interleaved writes never split a line mid-way.
type lineWriter struct {
	w     io.Writer
	buf   bytes.Buffer
	style *color.Color
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.buf.Write(p)
	for {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(lw.buf.Next(i + 1))
		lw.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush writes any trailing output that did not end in a newline
func (lw *lineWriter) Flush() {
	if lw.buf.Len() == 0 {
		return
	}
	lw.emit(lw.buf.String())
	lw.buf.Reset()
}

func (lw *lineWriter) emit(line string) {
	if lw.style != nil {
		lw.style.Fprintf(lw.w, "%s%s\n", relayPrefix, line)
		return
	}
	fmt.Fprintf(lw.w, "%s%s\n", relayPrefix, line)
}
