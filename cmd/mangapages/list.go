package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangapages/pkg/catalog"
	"github.com/kerbaras/mangapages/pkg/data"
	"github.com/kerbaras/mangapages/pkg/styles"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the catalog's chapters in a table",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := data.Read[data.Catalog](filepath.Join(rootDir, data.CatalogFile))
		cobra.CheckErr(err)

		title := styles.TitleStyle.Render(cat.Manga.Title)
		status := styles.StatusStyle(cat.Manga.Status).Render(cat.Manga.Status)
		fmt.Printf("\n📚 %s  %s  %d views\n", title, status, cat.Manga.Views)
		if cat.Manga.EndChapter != nil {
			fmt.Println(styles.MutedStyle.Render("   ends at chapter " + *cat.Manga.EndChapter))
		}

		if len(cat.Chapters) == 0 {
			fmt.Println("No chapters yet.")
			return
		}

		folders := make([]string, 0, len(cat.Chapters))
		for folder := range cat.Chapters {
			folders = append(folders, folder)
		}
		catalog.SortFolders(folders)

		columns := []table.Column{
			{Title: "Chapter", Width: 10},
			{Title: "Title", Width: 24},
			{Title: "Pages", Width: 6},
			{Title: "Views", Width: 8},
			{Title: "Locked", Width: 7},
			{Title: "Uploaded", Width: 26},
		}

		rows := []table.Row{}
		for _, folder := range folders {
			ch := cat.Chapters[folder]
			locked := ""
			if ch.Locked {
				locked = "🔒"
			}
			rows = append(rows, table.Row{
				folder,
				ch.Title,
				fmt.Sprintf("%d", ch.Pages),
				fmt.Sprintf("%d", ch.Views),
				locked,
				ch.UploadDate,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.NoColor{}).
			Background(lipgloss.NoColor{}).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n%s\n", t.View())
	},
}
