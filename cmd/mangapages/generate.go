package main

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/catalog"
	"github.com/kerbaras/mangapages/pkg/styles"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild manga.json from the config and chapter manifests",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := catalog.NewService(rootDir).Generate()
		cobra.CheckErr(err)
		printWarnings(res)
		fmt.Println("📚 Catalog regenerated")
	},
}

func printWarnings(res *catalog.Result) {
	for _, w := range res.Warnings {
		fmt.Println(styles.WarningStyle.Render("⚠ " + w))
	}
}
