package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sortdemo/src/config"
	"sortdemo/src/search"
)

func CmdSearch() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Action:    searchFile,
		Category:  "TOOL",
		Usage:     "print a file, or the lines of it containing a query",
		ArgsUsage: "QUERY FILENAME",
		Description: `
Reads FILENAME into memory and prints it. With --matches only the lines
containing QUERY are printed.

Examples:
$ sortdemo search frog poem.txt
$ sortdemo search --matches body poem.txt`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "matches",
				Usage: "print only the lines containing QUERY",
			},
		},
	}
}

func searchFile(ctx *cli.Context) error {
	if err := setup(ctx, 2); err != nil {
		return err
	}
	cfg, err := config.Parse(ctx.Args().Slice())
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Searching for %s\n", cfg.Query)
	fmt.Fprintf(w, "In file %s\n", cfg.Filename)

	contents, err := search.ReadFile(cfg.Filename)
	if err != nil {
		return err
	}

	if !ctx.Bool("matches") {
		fmt.Fprintf(w, "With text:\n%s\n", contents)
		return nil
	}
	lines := search.Lines(cfg.Query, contents)
	logger.Debugf("%d lines match %q", len(lines), cfg.Query)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
