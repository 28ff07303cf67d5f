package cmd

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
)

const bannerArt = `
   ____ _         __ _         __     __
  / __/(_)____ _ / /(_)___ _  / /    / /_
 / /_ / // __ '// // // _ '/ / _ \  / __/
/ __// // /_/ // // // /_/ // / / // /_
/_/  /_/ \__, //_//_/ \__, //_/ /_/ \__/
        /____/       /____/
`

// showWelcome prints the bare-invocation banner with usage examples.
func showWelcome(w io.Writer) {
	fcolor.New(fcolor.FgMagenta, fcolor.Bold).Fprint(w, bannerArt)
	fmt.Fprintln(w)
	fcolor.New(fcolor.FgCyan).Fprintln(w, "figlight - animated figlet wrapper")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: figlight TEXT [flags] [-- figlet args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, `  figlight Hello -p red,blue,green`)
	fmt.Fprintln(w, `  figlight World -g "linear-gradient(90deg, red, blue)" -e rainbow`)
	fmt.Fprintln(w, `  figlight Cool! -e typewriter -d 2s -i ease-out`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'figlight --help' for more information.")
}
