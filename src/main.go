package main

import (
	"fmt"
	"os"

	"sortdemo/src/cmd"
)

func main() {
	if err := cmd.Main(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sortdemo: %s\n", err)
		os.Exit(1)
	}
}
