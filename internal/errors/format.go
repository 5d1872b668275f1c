package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// detailWidth is the column detail text is wrapped at.
const detailWidth = 70

// colorEnabled controls whether ANSI colors are used. NO_COLOR turns them
// off at startup.
var colorEnabled = os.Getenv("NO_COLOR") == ""

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// FormatTerminal renders the error as a block for terminal display:
// header, wrapped detail, cause, hint and documentation link.
func (e *FtdError) FormatTerminal() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(colorRed+colorBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + paint(colorBold, e.Code))
	}
	b.WriteString(": " + e.Message + "\n\n")

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, line := range lines {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}
	section := func(label, color, text string) {
		if text != "" {
			fmt.Fprintf(&b, "  %s %s\n\n", paint(color, label), text)
		}
	}
	if e.Wrapped != nil {
		section("Cause:", colorYellow, e.Wrapped.Error())
	}
	section("Hint:", colorCyan, e.Suggestion)
	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s %s\n", paint(colorGray, "Learn more:"), paint(colorBlue, e.DocURL))
	}

	return b.String()
}

// FormatCompact returns "CODE: Message".
func (e *FtdError) FormatCompact() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

type jsonError struct {
	Code       string   `json:"code,omitempty"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	DocURL     string   `json:"docUrl,omitempty"`
	Cause      string   `json:"cause,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *FtdError) FormatJSON() string {
	je := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Wrapped != nil {
		je.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(je)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Error())
	}
	return string(data)
}

// wrapText breaks text into lines of at most width bytes at word
// boundaries. A single word longer than width gets its own line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// Fprint writes err to w: coded errors as a FormatTerminal block, anything else
// on one line.
func Fprint(w io.Writer, err error) {
	var fe *FtdError
	if stderrors.As(err, &fe) && fe.Code != "" {
		fmt.Fprint(w, fe.FormatTerminal())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(colorRed+colorBold, "ERROR:"), err)
}
