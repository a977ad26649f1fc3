// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-notes/internal/vault"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Inspect the note vault",
}

var vaultCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report cross-references whose target note does not exist",
	Long: `Check scans every note in the vault for [[cross-reference]] links and
lists the ones pointing at a note that has not been created yet. Useful
after importing profiles to see which organizations still need their own
note.`,
	RunE: runVaultCheck,
}

func init() {
	vaultCmd.AddCommand(vaultCheckCmd)
	rootCmd.AddCommand(vaultCmd)
}

func runVaultCheck(cmd *cobra.Command, args []string) error {
	v, err := vault.New(vaultConfig(cmd))
	if err != nil {
		return err
	}

	unresolved, err := v.CheckLinks()
	if err != nil {
		return err
	}
	if len(unresolved) == 0 {
		fmt.Println("No unresolved links.")
		return nil
	}

	for _, u := range unresolved {
		fmt.Printf("%s -> [[%s]]\n", u.Note, u.Target)
	}
	fmt.Printf("\n%d unresolved link(s)\n", len(unresolved))
	return nil
}
