package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// fatih/color disables these automatically when output is not a TTY.
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

// printer writes formatted output to a command's stdout.
type printer struct {
	w io.Writer
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout()}
}

// Section prints a section header.
func (p *printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w)
	_, _ = headerColor.Fprintf(p.w, "▸ %s\n", title)
	_, _ = fmt.Fprintln(p.w)
}

// Success prints a success message with a checkmark.
func (p *printer) Success(msg string) {
	_, _ = successColor.Fprintf(p.w, "✓ %s\n", msg)
}

// Warning prints a warning message.
func (p *printer) Warning(msg string) {
	_, _ = warningColor.Fprintf(p.w, "⚠ %s\n", msg)
}

// Info prints a plain line.
func (p *printer) Info(msg string) {
	_, _ = fmt.Fprintln(p.w, msg)
}

// LabelValue prints an indented "label: value" pair.
func (p *printer) LabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.w, "  %s: ", label)
	_, _ = valueColor.Fprintln(p.w, value)
}

// Table prints rows under headers with padded columns.
func (p *printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	_, _ = fmt.Fprint(p.w, "  ")
	for i, h := range headers {
		if i > 0 {
			_, _ = fmt.Fprint(p.w, "  ")
		}
		_, _ = headerColor.Fprintf(p.w, "%-*s", widths[i], h)
	}
	_, _ = fmt.Fprintln(p.w)

	_, _ = fmt.Fprint(p.w, "  ")
	for i, width := range widths {
		if i > 0 {
			_, _ = fmt.Fprint(p.w, "  ")
		}
		_, _ = fmt.Fprint(p.w, strings.Repeat("-", width))
	}
	_, _ = fmt.Fprintln(p.w)

	for _, row := range rows {
		_, _ = fmt.Fprint(p.w, "  ")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				_, _ = fmt.Fprint(p.w, "  ")
			}
			_, _ = valueColor.Fprintf(p.w, "%-*s", widths[i], cell)
		}
		_, _ = fmt.Fprintln(p.w)
	}
}

// count formats n with the singular or plural noun.
func count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}
