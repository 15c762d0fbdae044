package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd generates Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the coonet commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			log.Fatal(err)
		}

		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

func init() {
	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the Markdown files to")

	rootCmd.AddCommand(docsCmd)
}
