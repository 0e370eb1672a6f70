package config

import "github.com/pkg/errors"

var ErrNotEnoughArgs = errors.New("not enough arguments")

// Config is what the search command works on.
type Config struct {
	Query    string
	Filename string
}

// Parse takes the positional arguments (without the program name):
// the query first, then the file name. Anything after those is ignored.
func Parse(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, errors.Wrapf(ErrNotEnoughArgs, "want QUERY and FILENAME, got %d", len(args))
	}
	return &Config{Query: args[0], Filename: args[1]}, nil
}
