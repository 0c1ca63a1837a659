// Cutting fixed column fields out of lines.

package mol

import (
	"strconv"
	"strings"
)

// col returns s[start:end], shortened if the line is short.
// A field that starts past the end of the line is "", and ok is false
// so callers can tell a missing field from a blank one.
func col(s string, start, end int) (field string, ok bool) {
	if start >= len(s) {
		return "", false
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end], true
}

// tcol is col, trimmed of white space on both sides.
func tcol(s string, start, end int) string {
	f, _ := col(s, start, end)
	return strings.TrimSpace(f)
}

// window returns counts field i, trimmed, and whether it was there at all.
func window(s string, i int) (string, bool) {
	f, ok := col(s, i*cntWidth, (i+1)*cntWidth)
	return strings.TrimSpace(f), ok
}

// atoi reads a trimmed field as a decimal integer. Unlike the
// library, an empty field is an error, not zero, and so is a
// leading plus sign.
func atoi(f string) (int, error) {
	if f == "" {
		return 0, numError{}
	}
	if f[0] == '+' {
		return 0, numError{text: f}
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		return 0, numError{text: f}
	}
	return n, nil
}

// splitLines breaks the input at newlines. A carriage return at the
// end of a line is thrown away, so files from windows read the same.
// A newline at the very end terminates the last line, it does not
// start an empty one.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitProgram breaks the second header line at double spaces.
// Field 1 is the program, field 2 the timestamp. If they are not
// there, we return empty strings, not an error.
func splitProgram(s string) (program, timestamp string) {
	const delim = "  "
	ss := strings.Split(s, delim)
	if len(ss) > 1 {
		program = strings.TrimSpace(ss[1])
	}
	if len(ss) > 2 {
		timestamp = strings.TrimSpace(ss[2])
	}
	return
}
