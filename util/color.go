package util

import (
	"os"

	"golang.org/x/term"
)

// Colorizer manages colored CLI output.
type Colorizer struct {
	Enabled bool
}

// NewColorizer creates a Colorizer. When forceEnabled is false, color is
// enabled only if stdout is a terminal.
func NewColorizer(forceEnabled bool) *Colorizer {
	enabled := forceEnabled
	if !enabled {
		enabled = term.IsTerminal(int(os.Stdout.Fd()))
	}
	return &Colorizer{Enabled: enabled}
}

// ResolveColor turns the --color/--no-color flag pair into a final on/off
// decision: force wins, disable wins next, and with neither set color is on
// only when stdout is a terminal.
func ResolveColor(force, disable bool) bool {
	if force {
		return true
	}
	if disable {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (c *Colorizer) applyColor(code, text string) string {
	if !c.Enabled {
		return text
	}
	return code + text + "\033[0m"
}

// Cyan colors the text cyan.
func (c *Colorizer) Cyan(text string) string {
	return c.applyColor("\033[36m", text)
}

// Green colors the text green.
func (c *Colorizer) Green(text string) string {
	return c.applyColor("\033[32m", text)
}

// Yellow colors the text yellow.
func (c *Colorizer) Yellow(text string) string {
	return c.applyColor("\033[33m", text)
}

// Red colors the text red.
func (c *Colorizer) Red(text string) string {
	return c.applyColor("\033[31m", text)
}

// Dim dims the text.
func (c *Colorizer) Dim(text string) string {
	return c.applyColor("\033[2m", text)
}
