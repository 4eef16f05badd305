package main

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/codes"
	"github.com/kerbaras/mangapages/pkg/config"
	"github.com/kerbaras/mangapages/pkg/styles"
	"github.com/spf13/cobra"
)

var syncCodesCmd = &cobra.Command{
	Use:   "sync-codes",
	Short: "Fetch chapter unlock codes from the worker into the local cache",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		cobra.CheckErr(err)

		fetched, err := codes.Sync(rootDir, cfg.CloudflareWorkerURL)
		if err != nil {
			// Code sync is best-effort and never fails the pipeline.
			fmt.Println(styles.WarningStyle.Render("⚠ code sync skipped: " + err.Error()))
			return
		}
		if fetched {
			fmt.Println("🔑 Unlock codes cached locally")
		} else {
			fmt.Println("🔑 Nothing to fetch")
		}
	},
}
