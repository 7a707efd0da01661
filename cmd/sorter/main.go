package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/maxpoletaev/sorter/client"
	"github.com/maxpoletaev/sorter/sorting"
)

type options struct {
	Desc    bool   `short:"d" long:"desc" description:"sort in descending order"`
	Strings bool   `short:"s" long:"strings" description:"sort the input as strings"`
	Addr    string `short:"a" long:"addr" description:"sort via the server at this gRPC address instead of in-process" env:"SORTER_ADDR"`
	Timeout int    `long:"timeout" description:"request timeout (ms)" default:"5000"`
}

// sortBackend is satisfied by client.Client and localSorter.
type sortBackend interface {
	SortNumbers(ctx context.Context, values []float64, ascending bool) ([]float64, error)
	SortStrings(ctx context.Context, values []string, ascending bool) ([]string, error)
}

type localSorter struct{}

func (localSorter) SortNumbers(_ context.Context, values []float64, ascending bool) ([]float64, error) {
	return sorting.Numbers(values, ascending), nil
}

func (localSorter) SortStrings(_ context.Context, values []string, ascending bool) ([]string, error) {
	return sorting.Strings(values, ascending), nil
}

func main() {
	var opts options

	args, err := flags.Parse(&opts)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(opts.Timeout)*time.Millisecond)
	defer cancel()

	var sorter sortBackend = localSorter{}

	if opts.Addr != "" {
		c, err := client.Dial(ctx, opts.Addr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

		defer c.Close()

		sorter = c
	}

	if err := run(ctx, sorter, opts, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		if errors.Is(err, errBadInput) {
			os.Exit(2) //nolint:gocritic
		}

		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, sorter sortBackend, opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		tokens []string
		err    error
	)

	if len(args) > 0 {
		tokens = splitTokens(strings.Join(args, " "))
	} else {
		tokens, err = readTokens(stdin)
		if err != nil {
			return err
		}
	}

	ascending := !opts.Desc

	if opts.Strings {
		sorted, err := sorter.SortStrings(ctx, tokens, ascending)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(stdout, strings.Join(sorted, " "))

		return err
	}

	values, err := parseNumbers(tokens)
	if err != nil {
		return err
	}

	sorted, err := sorter.SortNumbers(ctx, values, ascending)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, formatNumbers(sorted))

	return err
}

func formatNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
