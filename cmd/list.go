package cmd

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"

	"github.com/figlight/figlight/anim"
	"github.com/figlight/figlight/color"
)

var (
	headingStyle = fcolor.New(fcolor.FgMagenta, fcolor.Bold)
	nameStyle    = fcolor.New(fcolor.FgCyan)
	swatchStyle  = func(c color.Color) *fcolor.Color {
		return fcolor.RGB(int(c.R), int(c.G), int(c.B))
	}
)

func listEffects(w io.Writer) error {
	headingStyle.Fprintln(w, "Available effects:")
	for _, name := range anim.EffectNames() {
		fmt.Fprint(w, "  ")
		nameStyle.Fprintln(w, name)
	}
	return nil
}

func listEasing(w io.Writer) error {
	headingStyle.Fprintln(w, "Available easing functions:")
	for _, name := range anim.EasingNames() {
		fmt.Fprint(w, "  ")
		nameStyle.Fprintln(w, name)
	}
	return nil
}

func listColors(w io.Writer) error {
	headingStyle.Fprintln(w, "Available colors:")
	for _, name := range color.Names() {
		c, _ := color.Named(name)
		fmt.Fprint(w, "  ")
		swatchStyle(c).Fprintf(w, "%-22s", name)
		fmt.Fprintln(w, c.Hex())
	}
	return nil
}
