package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	Execute()
}

func fatal(err error) {
	printError(os.Stderr, err)
	os.Exit(1)
}

// printError writes "Error: <err>", styled when w is a terminal.
func printError(w io.Writer, err error) {
	label := "Error:"
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		label = errorStyle.Render(label)
	}
	fmt.Fprintf(w, "%s %v\n", label, err)
}
