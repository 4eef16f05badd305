package main

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/catalog"
	"github.com/spf13/cobra"
)

var updateViewsCmd = &cobra.Command{
	Use:   "update-views",
	Short: "Fold pending-views.json into the manga view counter",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := catalog.NewService(rootDir).MergeViews()
		cobra.CheckErr(err)
		printWarnings(res)
		if res.Changed {
			fmt.Println("👀 Manga views merged")
		} else {
			fmt.Println("👀 No pending views")
		}
	},
}

var updateChaptersCmd = &cobra.Command{
	Use:   "update-chapters",
	Short: "Fold pending-chapter-views.json into the chapter view counters",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := catalog.NewService(rootDir).MergeChapterViews()
		cobra.CheckErr(err)
		printWarnings(res)
		if res.Changed {
			fmt.Println("👀 Chapter views merged")
		} else {
			fmt.Println("👀 No pending chapter views")
		}
	},
}
