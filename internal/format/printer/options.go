package printer

// IndentStyle selects whether indentation uses tabs or spaces.
type IndentStyle uint8

const (
	IndentSpace IndentStyle = iota
	IndentTab
)

// LineEnding selects the line terminator the printer writes.
type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
	CR
)

func (e LineEnding) string() string {
	switch e {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// Options configures a Printer. Mirrors the printer options a formatter
// exposes to callers: target column, indentation, and line terminator.
// No config-file loading lives here — that surface is out of scope.
type Options struct {
	PrintWidth  int
	IndentStyle IndentStyle
	IndentWidth int
	LineEnding  LineEnding
}

// DefaultOptions matches common formatter defaults.
func DefaultOptions() Options {
	return Options{
		PrintWidth:  80,
		IndentStyle: IndentSpace,
		IndentWidth: 2,
		LineEnding:  LF,
	}
}
