// Package cmd wires the command line surface to the animation pipeline.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figlight/figlight/anim"
	"github.com/figlight/figlight/config"
	"github.com/figlight/figlight/grid"
	"github.com/figlight/figlight/screen"
)

var flags struct {
	duration string
	palette  string
	gradient string
	easing   string
	effect   string
	font     string
	fps      int
	loop     bool
	debug    bool

	listEffects bool
	listEasing  bool
	listColors  bool
}

var rootCmd = &cobra.Command{
	Use:   "figlight TEXT [flags] [-- figlet args]",
	Short: "Animated and colorful figlet wrapper",
	Long: `figlight renders text as ASCII art through figlet and animates it in
the terminal with motion effects, easing curves, and palette or
CSS-gradient coloring.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.duration, "duration", "d", config.DefaultDuration, "animation duration (e.g. 3000ms, 0.3s, 5m, 0.5h)")
	f.StringVarP(&flags.palette, "palette", "p", "", "comma-separated colors (hex or CSS names)")
	f.StringVarP(&flags.gradient, "gradient", "g", "", `CSS gradient, e.g. "linear-gradient(90deg, red, blue)"`)
	f.StringVarP(&flags.easing, "ease", "i", config.DefaultEasing, "easing function (see --list-easing)")
	f.StringVarP(&flags.effect, "effect", "e", config.DefaultEffect, "motion effect (see --list-effects)")
	f.StringVarP(&flags.font, "font", "f", "", "figlet font")
	f.IntVar(&flags.fps, "fps", config.DefaultFPS, "frame rate")
	f.BoolVarP(&flags.loop, "loop", "l", false, "loop the animation until quit")
	f.BoolVar(&flags.debug, "debug", false, "write debug logs to logs/figlight.log")
	f.BoolVar(&flags.listEffects, "list-effects", false, "list available effects")
	f.BoolVar(&flags.listEasing, "list-easing", false, "list available easing functions")
	f.BoolVar(&flags.listColors, "list-colors", false, "list available color names")
}

func run(cmd *cobra.Command, args []string) error {
	switch {
	case flags.listEffects:
		return listEffects(cmd.OutOrStdout())
	case flags.listEasing:
		return listEasing(cmd.OutOrStdout())
	case flags.listColors:
		return listColors(cmd.OutOrStdout())
	}

	text, figletArgs := splitArgs(cmd, args)
	if text == "" {
		showWelcome(cmd.OutOrStdout())
		return nil
	}

	spec, err := buildSpec(cmd, text, figletArgs)
	if err != nil {
		return err
	}
	runCfg, err := spec.Resolve()
	if err != nil {
		return err
	}

	logFile := setupLogging(spec.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	return animate(runCfg)
}

// splitArgs separates the render text from figlet passthrough args
// after --.
func splitArgs(cmd *cobra.Command, args []string) (string, []string) {
	dash := cmd.Flags().ArgsLenAtDash()
	if dash < 0 {
		return strings.Join(args, " "), nil
	}
	return strings.Join(args[:dash], " "), args[dash:]
}

// buildSpec layers flag values over file defaults over built-ins.
// A flag only overrides the file default when it was set explicitly.
func buildSpec(cmd *cobra.Command, text string, figletArgs []string) (*config.Spec, error) {
	defaults := config.Defaults{}
	if path, err := config.DefaultsPath(); err == nil {
		d, err := config.LoadDefaults(path)
		if err != nil {
			return nil, err
		}
		defaults = d
	}

	spec := config.NewSpec(defaults)
	spec.Text = text
	spec.FigletArgs = figletArgs
	spec.Loop = flags.loop
	spec.Debug = flags.debug

	set := cmd.Flags().Changed
	if set("duration") || spec.Duration == "" {
		spec.Duration = flags.duration
	}
	if set("ease") || spec.Easing == "" {
		spec.Easing = flags.easing
	}
	if set("effect") || spec.Effect == "" {
		spec.Effect = flags.effect
	}
	if set("fps") || spec.FPS <= 0 {
		spec.FPS = flags.fps
	}
	if set("font") {
		spec.Font = flags.font
	}
	if set("palette") {
		spec.Palette = flags.palette
		spec.Gradient = ""
	}
	if set("gradient") {
		spec.Gradient = flags.gradient
		if !set("palette") {
			spec.Palette = ""
		}
	}
	return &spec, nil
}

// animate generates the art and runs the render loop. The terminal is
// restored on every exit path, including panic.
func animate(runCfg *config.Run) error {
	figlet := grid.NewFiglet(runCfg.Font, runCfg.FigletArgs)
	if err := figlet.CheckInstalled(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	art, err := figlet.Generate(ctx, runCfg.Text)
	if err != nil {
		return err
	}

	scr, err := screen.New()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer scr.Fini()
	defer func() {
		if r := recover(); r != nil {
			scr.Fini()
			fmt.Fprintf(os.Stderr, "figlight crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	scr.Watch(ctx, cancel)

	runner := anim.NewRunner(art, runCfg.Effect, runCfg.Easing, runCfg.Colors.At,
		anim.NewTimeline(runCfg.Duration, runCfg.Loop), runCfg.FPS, scr)

	log.Printf("run: %dx%d grid, %v duration, %d fps, loop=%v",
		art.Width(), art.Height(), runCfg.Duration, runCfg.FPS, runCfg.Loop)

	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
