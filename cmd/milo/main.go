// Command milo runs a Born-Oppenheimer molecular dynamics trajectory:
// it reads a Milo input deck, samples (or reuses) an initial
// vibrational/rotational state, and propagates structures by
// repeatedly invoking an external electronic structure program for
// forces.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sarat-asymmetrica/milo/internal/espio"
	"github.com/sarat-asymmetrica/milo/internal/inputfile"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/trajectory"
)

// main is separated from run so the app definition can be exercised
// without touching os.Args or os.Exit in tests.
func main() {
	run(os.Args)
}

func run(args []string) {
	if err := application().Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines milo's single top-level command: it takes an
// input deck (via --input, a positional argument, or stdin) and an
// optional work directory for the ESP scratch files.
func application() *cli.App {
	return &cli.App{
		Name:      "milo",
		Usage:     "Run a Born-Oppenheimer molecular dynamics trajectory against an external electronic structure program.",
		ArgsUsage: "[input-file]",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Path to a Milo input deck. Defaults to stdin, or the positional argument if given.",
			},
			&cli.StringFlag{
				Name:  "workdir",
				Usage: "Directory for the ESP's scratch .com/.log files. Defaults to the current directory.",
			},
			&cli.BoolFlag{
				Name:  "xyz",
				Usage: "Write a trajectory .xyz file named after the deck's job name (the default).",
			},
			&cli.BoolFlag{
				Name:  "no-xyz",
				Usage: "Suppress the trajectory .xyz file, which is written by default.",
			},
		},

		Action: func(c *cli.Context) error {
			path := c.String("input")
			if path == "" {
				path = c.Args().First()
			}
			s, err := readInput(path)
			if err != nil {
				return err
			}

			if c.Bool("xyz") {
				s.OutputXYZFile = true
			}
			if c.Bool("no-xyz") {
				s.OutputXYZFile = false
			}

			esp := &espio.Handler{WorkDir: c.String("workdir")}
			return trajectory.Run(os.Stdout, s, esp)
		},
	}
}

// readInput parses the deck at path, or from stdin when path is empty
// or "-".
func readInput(path string) (*state.ProgramState, error) {
	if path == "" || path == "-" {
		return inputfile.Parse(os.Stdin)
	}
	return inputfile.ParseFile(path)
}
