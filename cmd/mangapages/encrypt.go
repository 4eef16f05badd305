package main

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/config"
	"github.com/kerbaras/mangapages/pkg/crypt"
	"github.com/kerbaras/mangapages/pkg/detect"
	"github.com/kerbaras/mangapages/pkg/styles"
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt page URLs inside changed chapter manifests",
	Long:  "Detects manifests touched since the last revision and AES-encrypts their page lists in place",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		cobra.CheckErr(err)
		if cfg.SecretToken == "" {
			cobra.CheckErr(fmt.Errorf("SECRET_TOKEN is not set"))
		}

		force, _ := cmd.Flags().GetBool("force")
		force = force || cfg.ForceScanAll

		key := crypt.DeriveKey(cfg.SecretToken)
		targets := detect.New(rootDir).Manifests(force)
		if len(targets) == 0 {
			fmt.Println("🔒 Nothing to encrypt")
			return
		}
		fmt.Printf("🔒 Examining %d manifest(s)\n", len(targets))

		var encrypted, skipped, failed int
		for _, path := range targets {
			state, err := crypt.ProcessManifest(path, key)
			if err != nil {
				// Per-file failures never abort the batch.
				fmt.Println(styles.ErrorStyle.Render(fmt.Sprintf("  ✗ %s: %v", path, err)))
				failed++
				continue
			}
			switch state {
			case crypt.Encrypted:
				fmt.Printf("  ✓ %s\n", path)
				encrypted++
			case crypt.AlreadyEncrypted:
				fmt.Println(styles.MutedStyle.Render("  - " + path + " (already encrypted)"))
				skipped++
			case crypt.NoPages:
				fmt.Println(styles.MutedStyle.Render("  - " + path + " (no pages)"))
				skipped++
			}
		}
		fmt.Printf("Done: %d encrypted, %d skipped, %d failed\n", encrypted, skipped, failed)
	},
}

func init() {
	encryptCmd.Flags().BoolP("force", "f", false, "re-examine every manifest in the tree")
}
