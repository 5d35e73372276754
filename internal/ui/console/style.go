package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Role names what a piece of text means so the Styler can pick its look.
type Role int

const (
	RoleHeading Role = iota
	RolePositive
	RoleNegative
)

// Styler decorates text for a role. Plain output uses an identity Styler.
type Styler interface {
	Emphasize(text string, role Role) string
}

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ANSIStyler wraps text in SGR escape sequences regardless of the terminal.
type ANSIStyler struct{}

var (
	headingColor  = forcedColor(color.Bold, color.FgMagenta)
	positiveColor = forcedColor(color.FgGreen)
	negativeColor = forcedColor(color.FgRed)
)

func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (ANSIStyler) Emphasize(text string, role Role) string {
	switch role {
	case RoleHeading:
		return headingColor.Sprint(text)
	case RolePositive:
		return positiveColor.Sprint(text)
	case RoleNegative:
		return negativeColor.Sprint(text)
	default:
		return text
	}
}

type PlainStyler struct{}

func (PlainStyler) Emphasize(text string, _ Role) string { return text }

// NewStyler resolves a --color value. Auto colors only when fd is a terminal.
func NewStyler(choice string, fd uintptr) (Styler, error) {
	switch strings.ToLower(choice) {
	case ColorAlways, "":
		return ANSIStyler{}, nil
	case ColorNever:
		return PlainStyler{}, nil
	case ColorAuto:
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return ANSIStyler{}, nil
		}
		return PlainStyler{}, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q (want always, auto or never)", choice)
	}
}
