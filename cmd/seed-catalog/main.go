package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arvetile/catalog-backend/internal/app"
	"github.com/arvetile/catalog-backend/internal/pipeline"
)

func main() {
	var reset bool
	var dryRun bool
	var limit int
	flag.BoolVar(&reset, "reset", false, "delete all existing products before seeding")
	flag.BoolVar(&dryRun, "dry-run", false, "print planned rows without writing")
	flag.IntVar(&limit, "limit", 0, "limit number of files processed")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	seeder := &pipeline.Seeder{
		Repo:    application.Repos.Products,
		Mapping: application.Mapping,
		Library: application.DecorLibrary(),
		Log:     application.Log,
		Reset:   reset,
		DryRun:  dryRun,
		Limit:   limit,
	}

	summary, err := seeder.Run(context.Background())
	if err != nil {
		fmt.Printf("seed catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done; scanned=%d created=%d skipped=%d errored=%d\n",
		summary.Scanned, summary.Updated, summary.Skipped, summary.Errored)
}
