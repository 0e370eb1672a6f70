package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/store"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:     "history",
		Action:   history,
		Category: "INSPECT",
		Usage:    "list recorded sort runs",
		Description: `
Shows the runs stored by "sort --record", newest first.

Examples:
$ sortdemo history -m "mysql://sd:mypassword@(127.0.0.1:3306)/sortdemo"
# A safer alternative
$ export META_PASSWORD=mypassword
$ sortdemo history -m "mysql://sd:@(127.0.0.1:3306)/sortdemo" --limit 3`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "number of runs to show (0 for all)",
			},
			metaURLFlag(),
		},
	}
}

func history(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	uri := ctx.String("meta-url")
	if uri == "" {
		return errors.New("history needs --meta-url")
	}
	engine, err := store.Open(uri)
	if err != nil {
		return err
	}
	defer engine.Close()

	runs, err := store.Recent(engine, ctx.Int("limit"))
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for _, r := range runs {
		fmt.Fprintf(w, "#%d %s %v -> %v (passes %d, comparisons %d, swaps %d)\n",
			r.Id, r.Created.Format("2006-01-02 15:04:05"), r.Input, r.Output, r.Passes, r.Comparisons, r.Swaps)
	}
	return nil
}
