package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	catalogCmd.Run = printCatalog
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the resolved marker catalog",
	Args:  cobra.NoArgs,
}

func printCatalog(cmd *cobra.Command, _ []string) {
	for _, e := range loadCatalog().Entries() {
		fmt.Printf("%-12s %q\n", e.Class, e.Literal)
	}
}
