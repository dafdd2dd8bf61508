// Package main runs the ordered producer/consumer pipeline and prints every consumed
// sequence number, one per line, in ascending order.
package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ygrebnov/seqpipe"
	"github.com/ygrebnov/seqpipe/internal/config"
	"github.com/ygrebnov/seqpipe/internal/obs"
)

func main() {
	cfg := config.Load()
	logger := obs.NewLogger(os.Stderr, cfg.LogLevel)

	if err := run(context.Background(), os.Stdout, logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("run_failed")
	}
}

// run executes one pipeline, writing each consumed item to out.
func run(ctx context.Context, out io.Writer, logger zerolog.Logger, cfg config.Config) error {
	p, err := seqpipe.New[int](
		seqpipe.WithItems(cfg.Items),
		seqpipe.WithProducers(cfg.Producers),
		seqpipe.WithCapacity(cfg.Capacity),
		seqpipe.WithMaxDelay(cfg.MaxDelay),
		seqpipe.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	var line []byte
	err = p.Run(ctx, seqpipe.Identity, func(_ context.Context, item seqpipe.Item[int]) error {
		line = strconv.AppendInt(line[:0], int64(item.Value), 10)
		line = append(line, '\n')
		_, werr := w.Write(line)
		return werr
	})
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}
