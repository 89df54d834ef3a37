package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/navijation/prioheap/util/heap"
	"github.com/urfave/cli/v3"
)

func runDemo(_ context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	writeDemo(os.Stdout, settings.logger)
	return nil
}

func writeDemo(w io.Writer, logger *slog.Logger) {
	ascending := heap.Heapsort([]int{2, 5, 1, 8, 4, 3, 9, 5}, heap.Less[int])
	logger.Debug("sorted ints ascending", "count", len(ascending))
	fmt.Fprintln(w, strings.Join(formatValues(ascending), " "))

	descending := heap.Heapsort(ascending, heap.Greater[int])
	logger.Debug("sorted ints descending", "count", len(descending))
	fmt.Fprintln(w, strings.Join(formatValues(descending), " "))

	chars := heap.Heapsort([]rune{'h', 'e', 'a', 'p', 'i', 'f', 'y'}, heap.Less[rune])
	logger.Debug("sorted chars ascending", "count", len(chars))
	fmt.Fprintln(w, strings.Join(splitChars([]string{string(chars)}), " "))
}
