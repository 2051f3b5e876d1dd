// Command seqsort sorts its arguments with either the tree sort or the MSD
// radix sort and prints the resulting container.
//
// Usage:
//
//	seqsort [-config file.yaml] [-algorithm tree|msd] [-order lexical|natural]
//	        [-reverse] [-normalize] [items...]
//
// Items given on the command line replace any listed in the config file.
// Logging is configured through LOG_JSON, LOG_LEVEL and LOG_OUTPUT.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/amp-labs/seqsort/logger"
	"github.com/amp-labs/seqsort/script"
)

func main() {
	f := registerFlags(flag.CommandLine)

	script.New("seqsort").Run(func(ctx context.Context) error {
		cfg, err := f.resolve(flag.CommandLine)
		if err != nil {
			return script.ExitWithError(err)
		}

		return execute(ctx, logger.Get(ctx), cfg, os.Stdout)
	})
}
