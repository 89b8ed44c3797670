package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arvetile/catalog-backend/internal/app"
	"github.com/arvetile/catalog-backend/internal/matching"
	"github.com/arvetile/catalog-backend/internal/pipeline"
)

func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", false, "print matches without writing")
	flag.IntVar(&limit, "limit", 0, "limit number of products processed")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	crosslinker := &pipeline.Crosslinker{
		Repo:    application.Repos.Products,
		Matcher: matching.New(application.Mapping.FallbackCap),
		Writer:  pipeline.NewWriter(application.Repos.Products, application.Log, application.Mapping.ListCap),
		Mapping: application.Mapping,
		Library: application.TextureLibrary(),
		Log:     application.Log,
		DryRun:  dryRun,
		Limit:   limit,
	}

	summary, err := crosslinker.Run(context.Background())
	if err != nil {
		fmt.Printf("crosslink textures: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done; scanned=%d matched=%d unmatched=%d updated=%d skipped=%d errored=%d\n",
		summary.Scanned, summary.Matched, summary.Unmatched, summary.Updated, summary.Skipped, summary.Errored)
}
