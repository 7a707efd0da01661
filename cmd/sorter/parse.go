package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var errBadInput = errors.New("bad input")

// splitTokens splits on whitespace and commas.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func readTokens(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return splitTokens(string(data)), nil
}

// parseNumbers accepts anything strconv.ParseFloat does, including NaN and
// ±Inf. Non-numeric tokens are rejected here and never reach the engine.
func parseNumbers(tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))

	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at position %d is not a number", errBadInput, tok, i+1)
		}

		values[i] = v
	}

	return values, nil
}
