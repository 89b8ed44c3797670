package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arvetile/catalog-backend/internal/app"
	"github.com/arvetile/catalog-backend/internal/domain"
	"github.com/arvetile/catalog-backend/internal/matching"
	"github.com/arvetile/catalog-backend/internal/pipeline"
)

func main() {
	var field string
	var dryRun bool
	var limit int
	flag.StringVar(&field, "field", string(domain.FieldAdditionalImages), "target column: additional_images or image_url")
	flag.BoolVar(&dryRun, "dry-run", false, "print matches without writing")
	flag.IntVar(&limit, "limit", 0, "limit number of products processed")
	flag.Parse()

	target := domain.ImageField(field)
	if target != domain.FieldAdditionalImages && target != domain.FieldImageURL {
		fmt.Printf("unsupported -field %q\n", field)
		os.Exit(1)
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	enricher := &pipeline.Enricher{
		Repo:    application.Repos.Products,
		Matcher: matching.New(application.Mapping.FallbackCap),
		Writer:  pipeline.NewWriter(application.Repos.Products, application.Log, application.Mapping.ListCap),
		Mapping: application.Mapping,
		Library: application.DecorLibrary(),
		Field:   target,
		Log:     application.Log,
		DryRun:  dryRun,
		Limit:   limit,
	}

	summary, err := enricher.Run(context.Background())
	if err != nil {
		fmt.Printf("enrich images: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done; scanned=%d matched=%d unmatched=%d updated=%d skipped=%d errored=%d\n",
		summary.Scanned, summary.Matched, summary.Unmatched, summary.Updated, summary.Skipped, summary.Errored)
}
