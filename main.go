// main.go - command-line entry point.

/*
main.go - Entry Point

Wires a Machine, its attached CPU core, and a Display together and runs the
frame loop against a loaded firmware image. Flag and exit-code conventions
follow the CLI shape used throughout the example pack's urfave/cli.v2
tools: a single positional ROM path, a handful of named flags, and
cli.Exit for argument errors.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/urfave/cli.v2"

	"voyage200/internal/cpu68k"
)

func main() {
	app := &cli.App{
		Name:    "voyage200",
		Usage:   "run a Voyage 200 / TI-89 class firmware image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "scale",
				Value: 3,
				Usage: "window scale factor",
			},
			&cli.BoolFlag{
				Name:  "fullscreen",
				Usage: "start in fullscreen",
			},
			&cli.IntFlag{
				Name:  "cycles",
				Value: 0,
				Usage: "stop after N frames (0 = run until window closes)",
			},
			&cli.StringFlag{
				Name:  "dump-screen",
				Usage: "write a PBM screenshot to this path on exit",
			},
			&cli.StringFlag{
				Name:  "dump-memory",
				Usage: "write a raw RAM image to this path on exit",
			},
			&cli.StringFlag{
				Name:  "dump-flash",
				Usage: "write a raw flash image to this path on exit",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "mirror debug-level logging to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("exactly one ROM path is required", 2)
	}
	romPath := c.Args().Get(0)

	log := NewLogger(os.Stderr, c.Bool("debug"))

	data, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading ROM: %v", err), 1)
	}

	m := NewMachine(log)
	if err := LoadROM(m.Flash, data); err != nil {
		return cli.Exit(fmt.Sprintf("loading ROM: %v", err), 1)
	}

	core := cpu68k.New(m)
	m.AttachCore(core)
	m.Reset()

	display := NewEbitenDisplay(m.Kbd, c.Int("scale"))
	driver := NewDriver(m, display, log)

	driver.MaxFrames = c.Int("cycles")

	runDone := make(chan struct{})
	go func() {
		driver.Run(time.Sleep)
		close(runDone)
	}()

	// display.Run blocks pumping the ebiten event loop until the window
	// closes; its own termination error is expected and not a failure.
	_ = display.Run("Voyage 200", c.Bool("fullscreen"))
	<-runDone

	return dumpAll(c, m)
}

func dumpAll(c *cli.Context, m *Machine) error {
	if p := c.String("dump-screen"); p != "" {
		if err := DumpScreen(m, p); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	if p := c.String("dump-memory"); p != "" {
		if err := DumpMemory(m, p); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	if p := c.String("dump-flash"); p != "" {
		if err := DumpFlash(m, p); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	return nil
}
