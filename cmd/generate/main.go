package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"thumbnailgen/internal/infra"
	"thumbnailgen/internal/thumbnail"
)

func main() {
	_ = godotenv.Load()

	aspect := flag.String("aspect", "", "aspect ratio, e.g. 16:9")
	style := flag.String("style", "", "visual style keyword")
	quality := flag.String("quality", "", "rendering quality")
	flag.Parse()

	topics := flag.Args()
	if len(topics) == 0 {
		fmt.Fprintln(os.Stderr, "usage: generate [flags] <topic> [topic ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := thumbnail.NewClientFromConfig(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build thumbnail client")
		os.Exit(1)
	}

	opts := thumbnail.Options{AspectRatio: *aspect, Style: *style, Quality: *quality}
	results := client.GenerateBatch(context.Background(), topics, opts)
	os.Exit(report(results))
}

// report prints per-topic outcomes plus a summary and returns the exit code:
// zero when at least one thumbnail was produced.
func report(results []thumbnail.Result) int {
	ok := 0
	for _, res := range results {
		if res.OK {
			ok++
			fmt.Printf("ok    %s -> %s\n", res.Topic, res.Path)
		} else {
			fmt.Printf("fail  %s: %s\n", res.Topic, res.Message)
		}
	}
	fmt.Printf("%d successful, %d failed\n", ok, len(results)-ok)
	if ok == 0 && len(results) > 0 {
		return 1
	}
	return 0
}
