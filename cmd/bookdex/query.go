package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/config"
	"github.com/narralit/bookdex/internal/domain/search/filter"
	logpkg "github.com/narralit/bookdex/internal/logger"
)

// runQuery is the interactive recommendation loop: read a request, extract
// intent, read optional filters, search, print ranked results.
func runQuery(cfg config.Config, log *zap.Logger) error {
	recommender, closer, err := buildRecommender(cfg, log)
	if err != nil {
		return err
	}
	defer closer()

	ctx := logpkg.ContextWithLogger(context.Background(), log)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Describe what you are looking for (or type 'exit' to quit).")
	for {
		text, ok := prompt(in, "\nYour request: ")
		if !ok || text == "exit" || text == "quit" {
			return nil
		}
		if text == "" {
			continue
		}

		author, ok := prompt(in, "Filter by author (leave blank to skip): ")
		if !ok {
			return nil
		}
		pages, ok := prompt(in, "Filter by page count (e.g. 100-300, leave blank to skip): ")
		if !ok {
			return nil
		}
		if pages != "" {
			if _, err := filter.ParsePages(pages); err != nil {
				fmt.Printf("Warning: %v, filter ignored.\n", err)
			} else {
				fmt.Println("Warning: page count data is not available in the catalog; page filter ignored.")
			}
		}

		rec, err := recommender.Recommend(ctx, text, cfg.Search.TopN, filter.New(author))
		if err != nil {
			return err
		}

		fmt.Printf("\nThemes: %v\nTone: %v\nGenres: %v\n",
			rec.Intent.Themes, rec.Intent.Tone, rec.Intent.PreferredGenres)
		if rec.Stats.FilterFellBack {
			fmt.Println("Warning: no books matched the author filter; searched the full catalog.")
		} else if rec.Stats.AuthorMatches > 0 {
			fmt.Printf("Author filter matched %d books.\n", rec.Stats.AuthorMatches)
		}

		fmt.Println("\nTop recommendations:")
		if len(rec.Results) == 0 {
			fmt.Println("  (no results)")
			continue
		}
		for i := range rec.Results {
			res := &rec.Results[i]
			fmt.Printf("%d. %s  [score %.4f, rating %.1f]\n   by %s\n   %s\n",
				i+1, res.Title(), res.Score(), res.Rating(), res.Authors(), res.Description())
		}
	}
}

func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
