// Package ui renders console messages with consistent styling.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Console writes styled status lines to a terminal.
type Console struct {
	out io.Writer

	success *color.Color
	failure *color.Color
	warning *color.Color
	info    *color.Color
	title   *color.Color
}

// Option configures a Console.
type Option func(*Console)

// WithWriter redirects console output. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithNoColor disables ANSI styling.
func WithNoColor() Option {
	return func(c *Console) {
		for _, col := range []*color.Color{c.success, c.failure, c.warning, c.info, c.title} {
			col.DisableColor()
		}
	}
}

// New creates a console writer.
func New(opts ...Option) *Console {
	c := &Console{
		out:     os.Stdout,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
		info:    color.New(color.FgCyan),
		title:   color.New(color.FgWhite, color.Bold),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Success prints a green confirmation line.
func (c *Console) Success(format string, args ...any) {
	c.success.Fprintf(c.out, "[OK] "+format+"\n", args...)
}

// Error prints a red failure line.
func (c *Console) Error(format string, args ...any) {
	c.failure.Fprintf(c.out, "[ERROR] "+format+"\n", args...)
}

// Warning prints a yellow caution line.
func (c *Console) Warning(format string, args ...any) {
	c.warning.Fprintf(c.out, "[WARN] "+format+"\n", args...)
}

// Info prints a cyan informational line.
func (c *Console) Info(format string, args ...any) {
	c.info.Fprintf(c.out, format+"\n", args...)
}

// Title prints a bold section banner framed by rules.
func (c *Console) Title(text string) {
	line := strings.Repeat("=", len(text)+8)
	c.title.Fprintln(c.out, line)
	c.title.Fprintf(c.out, "    %s\n", text)
	c.title.Fprintln(c.out, line)
}

// Section prints a bold sub-heading.
func (c *Console) Section(text string) {
	c.title.Fprintf(c.out, "--- %s ---\n", text)
}

// Line prints an unstyled line.
func (c *Console) Line(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// ThinLine prints a horizontal rule.
func (c *Console) ThinLine() {
	fmt.Fprintln(c.out, strings.Repeat("-", 48))
}
