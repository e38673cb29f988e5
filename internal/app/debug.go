package app

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	debugEnabled           = os.Getenv("PROXSORT_DEBUG") == "1"
	debugOutput  io.Writer = os.Stderr
)

func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(debugOutput, "%s debug "+format+"\n", append([]interface{}{timestamp}, args...)...)
}
