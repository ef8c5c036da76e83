package main

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	epaper "github.com/ccoupe/epaper-bmp"
	"github.com/ccoupe/epaper-bmp/dither"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "epaper-bmp"
	app.Usage = "Convert photos to 7-color e-paper BMP files"
	app.Version = "1.0.0"
	app.ArgsUsage = "PATH"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "force orientation (landscape or portrait)",
		},
		&cli.StringFlag{
			Name:  "mode",
			Value: string(epaper.ModeScale),
			Usage: "'scale' to fill and crop, 'cut' to fit and pad",
		},
		&cli.IntFlag{
			Name:  "dither",
			Value: int(dither.FloydSteinberg),
			Usage: "dithering: 0 for none, 3 for Floyd-Steinberg",
		},
		&cli.BoolFlag{
			Name:    "recursive",
			Aliases: []string{"r"},
			Usage:   "recurse into subdirectories",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		orientation := epaper.Orientation(c.String("dir"))
		switch orientation {
		case epaper.OrientAuto, epaper.OrientLandscape, epaper.OrientPortrait:
		default:
			return cli.NewExitError(fmt.Sprintf("invalid orientation %q", orientation), 1)
		}

		d := dither.Mode(c.Int("dither"))
		switch d {
		case dither.None, dither.FloydSteinberg:
		default:
			return cli.NewExitError(fmt.Sprintf("invalid dither mode %d", d), 1)
		}

		logger := log.New(os.Stderr, "", 0)

		conv := epaper.New(orientation, epaper.Mode(c.String("mode")), d, os.Stdout, logger)

		// An unusable root is reported but not fatal; individual file
		// failures are already handled inside Process.
		if err := conv.Process(c.Args().First(), c.Bool("recursive")); err != nil {
			logger.Printf("Error: %v", err)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
