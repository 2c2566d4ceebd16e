// A command line tool to inspect and compare highlight-marked text
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/hilite-go/hilite"
)

var rootCmd = &cobra.Command{
	Use:           "hilite",
	Short:         "Compare highlight-marked text renderings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var catalogFlag string

func init() {
	log.SetFlags(0)
	log.SetPrefix("hilite: ")
	rootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "ansi",
		"Marker catalog: 'ansi', 'tags' or a YAML catalog file")
}

func loadCatalog() *hilite.Catalog {
	switch catalogFlag {
	case "ansi":
		return hilite.ANSI()
	case "tags":
		return hilite.Tags()
	}
	cat, err := hilite.OpenCatalogFile(catalogFlag)
	if err != nil {
		log.Fatal(err)
	}
	return cat
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
