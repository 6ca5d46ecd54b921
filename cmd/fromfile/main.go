package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"thumbnailgen/internal/infra"
	"thumbnailgen/internal/thumbnail"
	"thumbnailgen/internal/topics"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "course.txt", "text file with one course topic per line")
	aspect := flag.String("aspect", "", "aspect ratio, e.g. 16:9")
	style := flag.String("style", "", "visual style keyword")
	quality := flag.String("quality", "", "rendering quality")
	flag.Parse()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	list, err := topics.ReadFile(*file)
	if err != nil {
		logger.Error().Err(err).Str("file", *file).Msg("failed to load topics")
		os.Exit(1)
	}
	logger.Info().Int("count", len(list)).Str("file", *file).Msg("topics loaded")

	client, err := thumbnail.NewClientFromConfig(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build thumbnail client")
		os.Exit(1)
	}

	opts := thumbnail.Options{AspectRatio: *aspect, Style: *style, Quality: *quality}
	results := client.GenerateBatch(context.Background(), list, opts)

	ok := 0
	for i, res := range results {
		if res.OK {
			ok++
			fmt.Printf("ok    %d. %s -> %s\n", i+1, res.Topic, res.Path)
		} else {
			fmt.Printf("fail  %d. %s: %s\n", i+1, res.Topic, res.Message)
		}
	}
	fmt.Printf("%d successful, %d failed\n", ok, len(results)-ok)
	if ok == 0 {
		os.Exit(1)
	}
}
