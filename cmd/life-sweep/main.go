package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"lifeviewer/internal/sweep"
)

func main() {
	cfg := sweep.DefaultConfig()
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial live-cell probability")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "generations to simulate per soup")
	flag.Int64Var(&cfg.BaseSeed, "seed", cfg.BaseSeed, "first seed of the batch")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of consecutive seeds to evaluate")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel soup evaluations")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\tinitial\tpeak\tfinal\textinct")
	for _, r := range results {
		extinct := "-"
		if r.ExtinctAt >= 0 {
			extinct = fmt.Sprint(r.ExtinctAt)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", r.Seed, r.Initial, r.Peak, r.Final, extinct)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
