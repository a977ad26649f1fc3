// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-notes/internal/cache"
	"github.com/pdiddy/profile-notes/internal/format"
	"github.com/pdiddy/profile-notes/internal/remote"
	"github.com/pdiddy/profile-notes/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the data API for profiles by name or keywords",
	Long: `Search queries the data API for profiles matching a first name, last
name, or free-text keywords, and lists the candidates with their
usernames. Pick one and save it directly with --save, or run fetch with
its username afterwards.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("first-name", "", "filter by first name")
	searchCmd.Flags().String("last-name", "", "filter by last name")
	searchCmd.Flags().String("keywords", "", "free-text keywords")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Int("save", 0, "fetch and save the Nth result as a vault note")
	searchCmd.Flags().String("locale", "", "preferred locale key for localized fields (default en_US)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	keywords, _ := cmd.Flags().GetString("keywords")

	// An empty query never goes remote.
	query, err := format.BuildSearchQuery(firstName, lastName, keywords)
	if err != nil {
		return err
	}

	cfg := pipelineConfig(cmd)
	client, err := remote.NewClient(cfg.Remote)
	if err != nil {
		return err
	}

	ctx := context.Background()
	results, err := client.SearchProfiles(ctx, query)
	if err != nil {
		return err
	}
	if cfg.Remote.MaxResults > 0 && len(results) > cfg.Remote.MaxResults {
		results = results[:cfg.Remote.MaxResults]
	}

	if save, _ := cmd.Flags().GetInt("save"); save > 0 {
		return saveSearchResult(ctx, cfg, results, save)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	formatSearchTable(results, os.Stdout)
	return nil
}

// saveSearchResult fetches the rank-th search result and saves it as a
// vault note, reusing the fetch flow.
func saveSearchResult(ctx context.Context, cfg types.PipelineConfig, results []types.SearchResultEntry, rank int) error {
	if rank > len(results) {
		return fmt.Errorf("--save %d out of range: only %d result(s)", rank, len(results))
	}
	username := results[rank-1].Username
	if username == "" {
		return fmt.Errorf("result %d carries no username", rank)
	}

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := fetchProfile(ctx, cfg.Remote, store, username, false)
	if err != nil {
		return err
	}
	return saveNote(ctx, cfg.Remote, cfg.Vault, store, username, profile, saveOptions{})
}

// formatSearchTable writes results as a human-readable table to w.
func formatSearchTable(results []types.SearchResultEntry, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-18s  %-24s  %-18s  %s\n",
		"Rank", "Username", "Name", "Location", "Headline")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-18s  %-24s  %-18s  %s\n",
			i+1,
			truncate(r.Username, 18),
			truncate(r.FullName, 24),
			truncate(r.Location, 18),
			truncate(r.Headline, 30),
		)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
