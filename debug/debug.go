package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Records bool
	Decls   bool
	Render  bool
	Watch   bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("FIELDENUM_DEBUG")
	d.Records = all || boolEnv("FIELDENUM_DEBUG_RECORDS")
	d.Decls = all || boolEnv("FIELDENUM_DEBUG_DECLS")
	d.Render = all || boolEnv("FIELDENUM_DEBUG_RENDER")
	d.Watch = all || boolEnv("FIELDENUM_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Records reports whether parsed record schemas are dumped.
func Records() bool {
	return d.Records
}

// Decls reports whether generated declarations are dumped.
func Decls() bool {
	return d.Decls
}

// Render reports whether unformatted generated source is dumped.
func Render() bool {
	return d.Render
}

func Watch() bool {
	return d.Watch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
