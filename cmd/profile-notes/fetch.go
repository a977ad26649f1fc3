// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-notes/internal/cache"
	"github.com/pdiddy/profile-notes/internal/format"
	"github.com/pdiddy/profile-notes/internal/remote"
	"github.com/pdiddy/profile-notes/internal/vault"
	"github.com/pdiddy/profile-notes/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [username]",
	Short: "Fetch a profile by username and save it as a vault note",
	Long: `Fetch retrieves the profile record for a username from the data API,
formats it into a linked markdown note, and saves it into the vault.
Recently fetched profiles are served from the local cache; use --refresh
to force a remote call.

With --into, the note body is appended to an existing vault note instead
of creating a new one. With --stdout, the body is printed and nothing is
written.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Bool("refresh", false, "bypass the cache and refetch from the data API")
	fetchCmd.Flags().Bool("overwrite", false, "replace an existing note with the same title")
	fetchCmd.Flags().Bool("stdout", false, "print the note body instead of writing it")
	fetchCmd.Flags().String("into", "", "append the note body to this existing vault note")
	fetchCmd.Flags().String("locale", "", "preferred locale key for localized fields (default en_US)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one username")
	}
	username := args[0]

	cfg := pipelineConfig(cmd)
	refresh, _ := cmd.Flags().GetBool("refresh")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	into, _ := cmd.Flags().GetString("into")

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	profile, err := fetchProfile(ctx, cfg.Remote, store, username, refresh)
	if err != nil {
		return err
	}

	return saveNote(ctx, cfg.Remote, cfg.Vault, store, username, profile, saveOptions{
		into:      into,
		overwrite: overwrite,
		stdout:    toStdout,
	})
}

// fetchProfile returns the record for username, serving a fresh cache
// entry when allowed and falling back to the data API otherwise. Remote
// results are cached best-effort.
func fetchProfile(ctx context.Context, cfg types.RemoteConfig, store *cache.Store, username string, refresh bool) (*types.ProfileRecord, error) {
	if !refresh {
		profile, hit, err := store.Get(ctx, username)
		if err != nil {
			return nil, err
		}
		if hit {
			fmt.Fprintf(os.Stderr, "Using cached profile for %s\n", username)
			return profile, nil
		}
	}

	client, err := remote.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	profile, err := client.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := store.Put(ctx, username, profile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not cache profile: %v\n", err)
	}
	return profile, nil
}

// saveOptions controls where a formatted note ends up.
type saveOptions struct {
	into      string
	overwrite bool
	stdout    bool
}

// saveNote formats profile and delivers the note: to stdout, appended to
// an existing note, or as a new vault note with a metadata sidecar and an
// index entry.
func saveNote(ctx context.Context, remoteCfg types.RemoteConfig, vaultCfg types.VaultConfig, store *cache.Store, username string, profile *types.ProfileRecord, opts saveOptions) error {
	doc, err := format.Format(*profile, format.Options{Locale: remoteCfg.Locale})
	if err != nil {
		return err
	}

	if opts.stdout {
		fmt.Print(doc.Body)
		return nil
	}

	v, err := vault.New(vaultCfg)
	if err != nil {
		return err
	}

	var path string
	if opts.into != "" {
		path, err = v.Append(opts.into, doc.Body)
	} else {
		path, err = v.Create(doc, opts.overwrite)
	}
	if err != nil {
		return err
	}

	meta := types.NoteMetadata{
		Username:  username,
		Title:     doc.Title,
		Source:    remoteCfg.BaseURL,
		FetchedAt: time.Now().UTC(),
	}
	if err := v.WriteMetadata(meta); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write note metadata: %v\n", err)
	}
	if err := store.RecordNote(ctx, username, path, doc.Title); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not index note: %v\n", err)
	}

	fmt.Printf("Saved %s to %s\n", doc.Title, path)
	return nil
}
