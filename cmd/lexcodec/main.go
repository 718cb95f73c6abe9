package main

import (
	"fmt"
	"os"

	// registers record and union types
	_ "github.com/bluesky-social/lexcodec/api/atproto"
	_ "github.com/bluesky-social/lexcodec/api/bsky"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "lexcodec",
		Usage:   "debugging tool for atproto lexicon JSON documents",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"LEXCODEC_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdSyntax,
		cmdRoundTrip,
		cmdRecordCID,
		cmdDecodeCBOR,
	}
	return app.Run(args)
}
