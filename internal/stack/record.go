package stack

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Record returns a "package.function(file.go:123)" identification of the
// caller at the given depth above Record itself.
func Record(depth int) string {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
	}

	var sb strings.Builder
	sb.WriteString(function)
	sb.WriteByte('(')
	sb.WriteString(path.Base(file))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(line))
	sb.WriteByte(')')

	return sb.String()
}
