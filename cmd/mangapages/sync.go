package main

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/catalog"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile manga.json with the current chapter folders",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := catalog.NewService(rootDir).Sync()
		cobra.CheckErr(err)
		printWarnings(res)
		if !res.Changed {
			fmt.Println("📚 Catalog already up to date")
			return
		}
		for _, folder := range res.Added {
			fmt.Printf("  + chapter %s\n", folder)
		}
		for _, folder := range res.Removed {
			fmt.Printf("  - chapter %s\n", folder)
		}
		fmt.Printf("📚 Catalog synced: %d added, %d removed\n", len(res.Added), len(res.Removed))
	},
}
