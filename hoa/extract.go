package hoa

import (
	"strings"

	"go.uber.org/zap"
)

const (
	endMarker   = "--END--"
	abortMarker = "--ABORT--"
)

// Pop splits the first complete block off text. A block runs up to and
// including the first --END--; if an --ABORT-- precedes that --END--, the
// block starts right after the last such --ABORT--. The rest is returned
// without leading white space. If text holds no --END--, ok is false and
// rest is text itself.
func Pop(text string) (block, rest string, ok bool) {
	end := strings.Index(text, endMarker)
	if end < 0 {
		return "", text, false
	}
	start := 0
	if abort := strings.LastIndex(text[:end], abortMarker); abort >= 0 {
		start = abort + len(abortMarker)
		logger().Debug("discarding aborted input", zap.Int("bytes", start))
	}
	stop := end + len(endMarker)
	return text[start:stop], strings.TrimLeft(text[stop:], " \t\r\n"), true
}

// dropAborted removes everything up to and including the last --ABORT-- of
// text.
func dropAborted(text string) string {
	if i := strings.LastIndex(text, abortMarker); i >= 0 {
		return text[i+len(abortMarker):]
	}
	return text
}
