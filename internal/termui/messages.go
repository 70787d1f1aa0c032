package termui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
)

// PrintSummary writes one completed-source line with a green marker.
func PrintSummary(w io.Writer, line string) {
	fmt.Fprintf(w, "%s %s\n", okMark.Sprint("→"), line)
}

// PrintError writes a failure line with a red marker.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", failMark.Sprint("✗"), err)
}
