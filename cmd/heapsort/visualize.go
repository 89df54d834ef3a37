package main

import (
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

func visualizeHeap(_ context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	tokens, err := readTokens(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}

	settings.logger.Debug("heapifying values", "count", len(tokens))
	return visualizeTokens(os.Stdout, tokens, settings.config.Sort.Kind, settings.config.Sort.Order)
}

func visualizeTokens(w io.Writer, tokens []string, kind config.Kind, order config.Order) error {
	switch kind {
	case config.KindInt:
		return visualizeParsed(w, tokens, strconv.Atoi, order)
	case config.KindFloat:
		return visualizeParsed(w, tokens, parseFloat, order)
	case config.KindChar:
		return visualizeParsed(w, splitChars(tokens), parseString, order)
	case config.KindString:
		return visualizeParsed(w, tokens, parseString, order)
	}
	return errors.Errorf("unknown value kind %q", kind)
}

func visualizeParsed[T cmp.Ordered](w io.Writer, tokens []string, parse func(string) (T, error), order config.Order) error {
	values, err := parseTokens(tokens, parse)
	if err != nil {
		return err
	}

	h := heap.NewHeap(priorityFor[T](order), values...)
	items := formatValues(h.ToSlice())

	fmt.Fprintf(w,
		"Heap\n"+
			"  Size: %d\n"+
			"  Array: [%s]\n\n"+
			"Levels:\n",
		h.Size(),
		strings.Join(items, " "),
	)
	for level, start := 0, 0; start < len(items); level, start = level+1, 2*start+1 {
		end := min(2*start+1, len(items))
		fmt.Fprintf(w, "  %d: %s\n", level, strings.Join(items[start:end], " "))
	}

	var extracted []string
	for value := range h.Drain() {
		extracted = append(extracted, fmt.Sprint(value))
	}
	fmt.Fprintf(w, "\nExtraction order: %s\n", strings.Join(extracted, " "))
	return nil
}
