package main

import (
	"context"
	"os"
	"simcompare/internal/logger"
)

func main() {
	lg := logger.New()
	defer lg.Sync()

	ctx := logger.WithLogger(context.Background(), lg)
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
