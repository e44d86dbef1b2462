// Package must asserts conditions that only a programming error can break.
// Violations panic.
package must

import "fmt"

// NotErrorf panics if err is non-nil,
// reporting the error alongside the printf-style message.
func NotErrorf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("unexpected error: %v\n%v", err, fmt.Sprintf(format, args...)))
}
