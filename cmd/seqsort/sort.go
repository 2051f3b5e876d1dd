package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/seqsort/container"
	"github.com/amp-labs/seqsort/sortable"
	"github.com/amp-labs/seqsort/sorting"
)

// sortItems loads cfg.Items into a container and sorts it as configured.
func sortItems(cfg Config) (*container.Container[string], error) {
	c := container.New(cfg.Items...)

	switch cfg.Algorithm {
	case algorithmTree:
		less := sortable.Ordered[string]()
		if cfg.Order == orderNatural {
			less = sortable.Natural()
		}

		if cfg.Reverse {
			less = sortable.Reverse(less)
		}

		c.SortTree(less)
	case algorithmMSD:
		key := sorting.KeyFunc[string](sorting.Identity)
		if cfg.Normalize {
			key = sorting.NFC(key)
		}

		if err := c.SortMSD(key); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAlgorithm, cfg.Algorithm)
	}

	return c, nil
}

// execute sorts the configured items and writes the rendered container to out.
func execute(ctx context.Context, log *slog.Logger, cfg Config, out io.Writer) error {
	log.InfoContext(ctx, "sorting items",
		"algorithm", cfg.Algorithm,
		"order", cfg.Order,
		"size", len(cfg.Items))

	c, err := sortItems(cfg)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "sorted items", "result", c.String())

	_, err = fmt.Fprintln(out, c)

	return err
}
