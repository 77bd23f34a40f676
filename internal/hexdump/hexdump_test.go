package hexdump

import (
	"strings"
	"testing"
)

func TestFormatShortLine(t *testing.T) {
	got := Format("4745542f")
	want := "0000  47 45 54 2f" + strings.Repeat(" ", 36) + "  |GET/|"
	if got != want {
		t.Fatalf("Format:\n got %q\nwant %q", got, want)
	}
}

func TestFormatMultiLine(t *testing.T) {
	// 17 bytes: one full line plus one byte on the next.
	input := strings.Repeat("00", 16) + "41"
	got := Format(input)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "0000  ") {
		t.Fatalf("first line offset wrong: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0010  41") {
		t.Fatalf("second line offset wrong: %q", lines[1])
	}
	if !strings.HasSuffix(lines[0], "|................|") {
		t.Fatalf("non-printable bytes should render as dots: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "|A|") {
		t.Fatalf("ascii sidebar wrong: %q", lines[1])
	}
}

func TestFormatDeterministic(t *testing.T) {
	input := "ffffffffffff001a2b3c4d5e08060001"
	if Format(input) != Format(input) {
		t.Fatal("re-rendering the same input produced different output")
	}
	if FormatHighlighted(input, 6, 6) != FormatHighlighted(input, 6, 6) {
		t.Fatal("re-rendering the same highlight produced different output")
	}
}

func TestFormatHighlighted(t *testing.T) {
	got := FormatHighlighted("aabbcc", 1, 1)
	want := "0000  aa " + highlightColor + "bb" + resetColor + " cc" +
		strings.Repeat(" ", 39) + "  |...|"
	if got != want {
		t.Fatalf("FormatHighlighted:\n got %q\nwant %q", got, want)
	}
}

func TestFormatHighlightZeroLengthIsPlain(t *testing.T) {
	input := "deadbeef"
	if FormatHighlighted(input, 2, 0) != Format(input) {
		t.Fatal("zero-length highlight should match the plain rendering")
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name       string
		location   string
		wantOffset int
		wantBytes  int
		wantOK     bool
	}{
		{name: "two byte field", location: "0014 0001", wantOffset: 0x14, wantBytes: 2, wantOK: true},
		{name: "mac address", location: "0000 ffffffffffff", wantOffset: 0, wantBytes: 6, wantOK: true},
		{name: "half byte rounds down", location: "000e 4", wantOffset: 0x0e, wantBytes: 0, wantOK: true},
		{name: "dns name", location: "0036 07657861706c6503636f6d00", wantOffset: 0x36, wantBytes: 12, wantOK: true},
		{name: "empty", location: "", wantOK: false},
		{name: "missing data", location: "0014", wantOK: false},
		{name: "bad offset", location: "zz 0001", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset, numBytes, ok := ParseLocation(tc.location)
			if ok != tc.wantOK {
				t.Fatalf("ParseLocation(%q) ok = %v, want %v", tc.location, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if offset != tc.wantOffset || numBytes != tc.wantBytes {
				t.Fatalf("ParseLocation(%q) = (%d, %d), want (%d, %d)",
					tc.location, offset, numBytes, tc.wantOffset, tc.wantBytes)
			}
		})
	}
}
