package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	stripCmd.RunE = stripFiles
	rootCmd.AddCommand(stripCmd)
}

var stripCmd = &cobra.Command{
	Use:   "strip [<file>...]",
	Short: "Remove all recognized markers and print the plain content",
}

func stripFiles(cmd *cobra.Command, files []string) error {
	cat := loadCatalog()
	if len(files) == 0 {
		return cat.StripReader(os.Stdout, os.Stdin)
	}
	for _, f := range files {
		rd, err := os.Open(f)
		if err != nil {
			return err
		}
		err = cat.StripReader(os.Stdout, rd)
		rd.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
