// Command iccgen generates ICC profiles from the command line.
//
// It is a thin front end over the iccenc library, mainly useful for
// producing test fixtures and embeddable profiles without writing code:
//
//	iccgen gray --gamma 2.2 --desc "Gray gamma 2.2" -o gray.icc
//	iccgen gray --srgb --iccp-name "gray srgb" --iccp gray.iccp -o gray.icc
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arloliu/iccenc"
	"github.com/arloliu/iccenc/embed"
	"github.com/arloliu/iccenc/format"
	"github.com/arloliu/iccenc/profile"
)

func main() {
	app := &cli.Command{
		Name:  "iccgen",
		Usage: "Generate ICC colour profiles",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			grayCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func grayCmd() *cli.Command {
	return &cli.Command{
		Name:  "gray",
		Usage: "Generate a monochrome display profile",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output profile path",
				Value:   "gray.icc",
			},
			&cli.StringFlag{
				Name:  "desc",
				Usage: "profile description",
				Value: "Gray profile",
			},
			&cli.StringFlag{
				Name:  "copyright",
				Usage: "copyright text",
				Value: "no copyright, use freely",
			},
			&cli.FloatFlag{
				Name:  "gamma",
				Usage: "gamma exponent of the tone curve",
				Value: 2.2,
			},
			&cli.BoolFlag{
				Name:  "srgb",
				Usage: "use the sRGB transfer function instead of a plain gamma curve",
			},
			&cli.StringFlag{
				Name:  "iccp",
				Usage: "also write a PNG iCCP chunk payload to this path",
			},
			&cli.StringFlag{
				Name:  "iccp-name",
				Usage: "profile name inside the iCCP payload",
				Value: "icc profile",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := iccenc.MonochromeProfile(cmd.String("desc"), cmd.String("copyright"), cmd.Float("gamma"))
			if cmd.Bool("srgb") {
				trc, err := profile.ParametricCurveTagData(iccenc.SRGBToneCurve())
				if err != nil {
					return fmt.Errorf("build sRGB tone curve: %w", err)
				}
				p.SetTag(format.GrayTRCTag, trc)
			}

			data, err := p.Encode()
			if err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			if err := os.WriteFile(cmd.String("output"), data, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes, %d tags)\n", cmd.String("output"), len(data), p.TagCount())

			if path := cmd.String("iccp"); path != "" {
				payload, err := embed.PNGChunkPayload(cmd.String("iccp-name"), data)
				if err != nil {
					return fmt.Errorf("build iCCP payload: %w", err)
				}
				if err := os.WriteFile(path, payload, 0o644); err != nil {
					return err
				}
				fmt.Printf("wrote %s (%d bytes)\n", path, len(payload))
			}

			return nil
		},
	}
}
