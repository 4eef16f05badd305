package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootDir string

var rootCmd = &cobra.Command{
	Use:   "mangapages",
	Short: "Automation for a static manga-hosting site",
	Long:  "One-shot CI steps that encrypt chapter manifests and keep the manga.json catalog in sync",
	Run: func(cmd *cobra.Command, args []string) {
		// A bare invocation is a pipeline misconfiguration, not a success.
		cmd.Usage()
		os.Exit(1)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "C", ".", "site root directory")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(updateViewsCmd)
	rootCmd.AddCommand(updateChaptersCmd)
	rootCmd.AddCommand(syncCodesCmd)
	rootCmd.AddCommand(listCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
