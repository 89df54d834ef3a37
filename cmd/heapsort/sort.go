package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/prioheap/config"
	"github.com/navijation/prioheap/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func sortValues(_ context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	tokens, err := readTokens(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}

	sorted, err := sortTokens(tokens, settings.config.Sort.Kind, settings.config.Sort.Order)
	if err != nil {
		return err
	}

	settings.logger.Debug("sorted values",
		"kind", settings.config.Sort.Kind,
		"order", settings.config.Sort.Order,
		"count", len(sorted),
	)

	fmt.Println(strings.Join(sorted, " "))
	return nil
}

// readTokens returns args, or the whitespace separated words of stdin when no
// args were given.
func readTokens(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var out []string
	scanner := bufio.NewScanner(stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read values from stdin")
	}
	return out, nil
}

func sortTokens(tokens []string, kind config.Kind, order config.Order) ([]string, error) {
	switch kind {
	case config.KindInt:
		return sortParsed(tokens, strconv.Atoi, order)
	case config.KindFloat:
		return sortParsed(tokens, parseFloat, order)
	case config.KindChar:
		return sortParsed(splitChars(tokens), parseString, order)
	case config.KindString:
		return sortParsed(tokens, parseString, order)
	}
	return nil, errors.Errorf("unknown value kind %q", kind)
}

func sortParsed[T cmp.Ordered](tokens []string, parse func(string) (T, error), order config.Order) ([]string, error) {
	values, err := parseTokens(tokens, parse)
	if err != nil {
		return nil, err
	}
	return formatValues(heap.Heapsort(values, priorityFor[T](order))), nil
}

func priorityFor[T cmp.Ordered](order config.Order) func(a, b T) bool {
	if order == config.OrderDescending {
		return heap.Greater[T]
	}
	return heap.Less[T]
}

func parseTokens[T any](tokens []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(tokens))
	for _, token := range tokens {
		value, err := parse(token)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", token)
		}
		out = append(out, value)
	}
	return out, nil
}

func formatValues[T any](values []T) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = fmt.Sprint(value)
	}
	return out
}

func parseFloat(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

func parseString(token string) (string, error) {
	return token, nil
}

// splitChars breaks every token into single-character tokens.
func splitChars(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		for _, r := range token {
			out = append(out, string(r))
		}
	}
	return out
}
