package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/search"
	"sortdemo/src/sort"
	"sortdemo/src/store"
	"sortdemo/src/utils"
)

var sample = []int{200, 100, 500, 300, 400}

func metaURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "meta-url",
		Aliases: []string{"m"},
		EnvVars: []string{"SORTDEMO_META_URL"},
		Usage:   "META-URL of the run history database (mysql://... or sqlite3://...)",
	}
}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortNumbers,
		Category:  "SORT",
		Usage:     "bubble sort a list of integers",
		ArgsUsage: "[NUMBERS...]",
		Description: `
Sorts the integers given as arguments (or read from a file) in ascending
order. Without input the built-in sample 200 100 500 300 400 is used.

Examples:
$ sortdemo sort 5 4 3 2 1
$ sortdemo sort --file numbers.txt --stats
# Keep a history of runs
$ sortdemo sort 3 1 2 --record -m "mysql://sd:@(127.0.0.1:3306)/sortdemo"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read whitespace separated integers from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "inline",
				Usage: "print the result on one line",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "log passes, comparisons and swaps",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "store the run in the history database",
			},
			metaURLFlag(),
		},
	}
}

func parseInts(fields []string) ([]int, error) {
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func loadNumbers(ctx *cli.Context) ([]int, error) {
	if name := ctx.String("file"); name != "" {
		if ctx.NArg() > 0 {
			return nil, errors.Errorf("numbers given both in --file %s and as arguments", name)
		}
		text, err := search.ReadFile(name)
		if err != nil {
			return nil, err
		}
		nums, err := parseInts(strings.Fields(text))
		return nums, errors.Wrap(err, name)
	}
	if ctx.NArg() > 0 {
		return parseInts(ctx.Args().Slice())
	}
	return append([]int(nil), sample...), nil
}

func sortNumbers(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	data, err := loadNumbers(ctx)
	if err != nil {
		return err
	}
	input := append([]int(nil), data...)

	done := utils.Elapsed(logger, "sort")
	st := sort.SortStats(sort.IntArray(data))
	done()

	w := ctx.App.Writer
	if ctx.Bool("inline") {
		fmt.Fprintln(w, data)
	} else {
		for _, n := range data {
			fmt.Fprintln(w, n)
		}
	}
	if ctx.Bool("stats") {
		logger.Infof("%d elements: %d passes, %d comparisons, %d swaps", len(data), st.Passes, st.Comparisons, st.Swaps)
	}

	if !ctx.Bool("record") {
		return nil
	}
	uri := ctx.String("meta-url")
	if uri == "" {
		return errors.New("--record needs --meta-url")
	}
	engine, err := store.Open(uri)
	if err != nil {
		return err
	}
	defer engine.Close()
	if err = store.Record(engine, store.NewRun(input, data, st)); err != nil {
		return err
	}
	logger.Debugf("recorded run of %d elements", len(data))
	return nil
}
