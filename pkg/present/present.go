package present

import (
	"errors"
	"strings"

	"github.com/cliffjones/neologizer/pkg/sanitizer"
)

// Format selects how output is rendered.
type Format string

const (
	// FormatText renders one word per line, or the converted text as is.
	FormatText Format = "text"
	// FormatList joins words with ", ".
	FormatList Format = "list"
	// FormatHTML escapes special characters and turns line breaks into <br>.
	FormatHTML Format = "html"
)

// InsufficientNotice is shown instead of empty output when nothing could be
// generated.
const InsufficientNotice = "More source text is needed to generate new words."

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatList, FormatHTML}
}

// ParseFormat converts s to a Format. An empty string yields FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(sanitizer.TrimToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatList, FormatHTML:
		return f, nil
	default:
		return "", errors.Join(ErrUnknownFormat, errors.New(s))
	}
}

// Presenter renders generator output for display.
type Presenter struct {
	format Format
}

// New returns a Presenter for format. Unknown formats fall back to text.
func New(format Format) *Presenter {
	switch format {
	case FormatList, FormatHTML:
	default:
		format = FormatText
	}
	return &Presenter{format: format}
}

// Format returns the format the Presenter renders.
func (p *Presenter) Format() Format {
	return p.format
}

// Words renders a word list.
func (p *Presenter) Words(words []string) string {
	switch p.format {
	case FormatList:
		return strings.Join(words, ", ")
	case FormatHTML:
		return p.html(strings.Join(words, "\n"))
	default:
		return strings.Join(words, "\n")
	}
}

// Text renders converted text.
func (p *Presenter) Text(text string) string {
	if p.format == FormatHTML {
		return p.html(text)
	}
	return text
}

// Notice renders a user-facing message such as InsufficientNotice.
func (p *Presenter) Notice(msg string) string {
	return p.Text(msg)
}

func (p *Presenter) html(s string) string {
	s = sanitizer.EscapeHTML(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
