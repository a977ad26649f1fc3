// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-notes/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the local fetch cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes saved from fetched profiles",
	RunE:  runCacheList,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop all cached profile records",
	Long: `Purge removes every cached profile record so the next fetch goes to
the data API. The saved-note index is kept.`,
	RunE: runCachePurge,
}

func init() {
	cacheListCmd.Flags().Bool("json", false, "output the note index as JSON")

	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	store, err := cache.NewStore(cacheConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	notes, err := store.Notes(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Println("No saved notes.")
		return nil
	}

	fmt.Printf("%-18s  %-24s  %-20s  %s\n", "Username", "Title", "Saved", "Path")
	fmt.Println(strings.Repeat("-", 100))
	for _, n := range notes {
		fmt.Printf("%-18s  %-24s  %-20s  %s\n",
			truncate(n.Username, 18),
			truncate(n.Title, 24),
			n.CreatedAt.Format(time.RFC3339),
			n.NotePath,
		)
	}
	fmt.Printf("\n%d note(s)\n", len(notes))
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	store, err := cache.NewStore(cacheConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Purge(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Purged %d cached profile(s)\n", n)
	return nil
}
