package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

// NewApp builds the sortdemo application with every command wired in.
func NewApp() *cli.App {
	// -v belongs to --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}

	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "bubble sort and file search samples",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                GlobalFlags(),
		Commands: []*cli.Command{
			CmdSort(),
			CmdSearch(),
			CmdHistory(),
		},
	}
}

func Main(args []string) error {
	return NewApp().Run(args)
}
