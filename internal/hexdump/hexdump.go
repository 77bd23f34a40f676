// Package hexdump renders raw packet bytes as a classic hex dump: 16 bytes
// per line, a 4-digit hex offset prefix, space-separated byte pairs, and an
// ASCII sidebar. Rendering is a pure function of its inputs so the same
// packet always produces the same dump.
package hexdump

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	bytesPerLine = 16

	highlightColor = "\x1b[1;32m"
	resetColor     = "\x1b[0m"
)

// Format renders hexString without any highlighting.
func Format(hexString string) string {
	return FormatHighlighted(hexString, 0, 0)
}

// FormatHighlighted renders hexString and wraps the numBytes bytes starting
// at offset in ANSI bright green. A numBytes of zero disables highlighting.
// The ASCII sidebar and column alignment are computed from the raw bytes so
// highlighting never shifts the layout.
func FormatHighlighted(hexString string, offset, numBytes int) string {
	var lines []string

	for i := 0; i < len(hexString); i += bytesPerLine * 2 {
		chunk := hexString[i:min(i+bytesPerLine*2, len(hexString))]

		var cols []string
		var ascii strings.Builder
		for j := 0; j < len(chunk); j += 2 {
			bytePos := (i + j) / 2
			pair := chunk[j:min(j+2, len(chunk))]

			if numBytes > 0 && bytePos >= offset && bytePos < offset+numBytes {
				cols = append(cols, highlightColor+pair+resetColor)
			} else {
				cols = append(cols, pair)
			}
			ascii.WriteByte(asciiFor(pair))
		}

		pad := strings.Repeat(" ", (bytesPerLine-len(cols))*3)
		lines = append(lines, fmt.Sprintf("%04x  %s%s  |%s|",
			i/2, strings.Join(cols, " "), pad, ascii.String()))
	}

	return strings.Join(lines, "\n")
}

func asciiFor(pair string) byte {
	if len(pair) != 2 {
		return '.'
	}
	value, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return '.'
	}
	if value >= 0x20 && value <= 0x7e {
		return byte(value)
	}
	return '.'
}

// ParseLocation splits a "offset hexbytes" location string such as
// "0014 0001" into a byte offset and length. Malformed locations return
// ok=false so callers fall back to an unhighlighted dump, and odd-length
// hex data rounds the length down, matching the bank data's quirks.
func ParseLocation(location string) (offset, numBytes int, ok bool) {
	fields := strings.Fields(location)
	if len(fields) < 2 {
		return 0, 0, false
	}

	parsed, err := strconv.ParseInt(fields[0], 16, 32)
	if err != nil {
		return 0, 0, false
	}

	return int(parsed), len(fields[1]) / 2, true
}
