package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/errs"
)

// NotFound is printed when no line matched
const NotFound = "Query not found in file."

// Printer writes search results to stdout and diagnostics to stderr.
// Styles only apply when the target writer is a color terminal.
type Printer struct {
	stdout io.Writer
	stderr io.Writer

	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a Printer
func New(stdout, stderr io.Writer) *Printer {
	outRenderer := lipgloss.NewRenderer(stdout)
	errRenderer := lipgloss.NewRenderer(stderr)

	return &Printer{
		stdout: stdout,
		stderr: stderr,
		titleStyle: outRenderer.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		errorStyle: errRenderer.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Results prints each line verbatim, or NotFound when there are none
func (p *Printer) Results(lines []string) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(p.stdout, NotFound)
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(p.stdout, line); err != nil {
			return err
		}
	}
	return nil
}

// Error prints err with the label of its kind
func (p *Printer) Error(err error) {
	label := errs.KindOf(err).Label()
	fmt.Fprintf(p.stderr, "%s %s\n", p.errorStyle.Render(label+":"), err.Error())
}

// Help prints the help text
func (p *Printer) Help() {
	fmt.Fprintf(p.stdout, "\n%s\n%s\n\n", p.titleStyle.Render(config.HelpTitle), config.Usage)
}
