package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hilite-go/hilite"
	"github.com/hilite-go/hilite/hilitest"
)

func init() {
	compareCmd.RunE = compareFiles
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <expected> [<actual>]",
	Short: "Check two marked renderings for equivalence",
	Long: `Check two marked renderings for equivalence. The renderings count as
equivalent when they show the same plain content and highlight every
non-whitespace character with the same class. <actual> is read from
stdin when omitted. Exits non-zero on mismatch.`,
	Args: cobra.RangeArgs(1, 2),
}

var (
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func compareFiles(cmd *cobra.Command, args []string) error {
	left, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var right []byte
	rname := "stdin"
	if len(args) > 1 {
		rname = args[1]
		right, err = os.ReadFile(rname)
	} else {
		right, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}
	ck := hilite.New(loadCatalog())
	mm := ck.Check(string(left), string(right))
	if mm == nil {
		log.Print(style(matchStyle, fmt.Sprintf("%s matches %s", rname, args[0])))
		return nil
	}
	printMismatch(mm)
	return errors.New("renderings differ")
}

func printMismatch(mm *hilite.Mismatch) {
	fmt.Println(style(headStyle, mm.Kind.String()))
	if mm.Kind == hilite.NormalizationMismatch {
		fmt.Print(cmp.Diff(mm.LeftPlain, mm.RightPlain))
		return
	}
	fmt.Println(mm)
	fmt.Println(hilitest.Excerpt(mm))
}

// style applies s only when stdout goes to a terminal.
func style(s lipgloss.Style, text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return s.Render(text)
}
