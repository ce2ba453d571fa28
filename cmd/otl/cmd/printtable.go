package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	printTableFormat string
	printTablePolicy string
)

var printTableCmd = &cobra.Command{
	Use:   "print-table [file]",
	Short: "Read a table file and print it out",
	Long: `Read a tab-separated truth table and print it in the requested format.
Reads from stdin when the file argument is omitted.

By default parsing is strict: every input combination must be assigned a
value. With --unused-value-is the rows that do not appear in the file
are filled with 0, 1 or the don't-care value instead.

Examples:
  otl print-table -f pretty table.txt
  otl make-table "A + B" | otl print-table -f tex
  otl print-table -u '*' partial.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrintTable,
}

func init() {
	rootCmd.AddCommand(printTableCmd)

	printTableCmd.Flags().StringVarP(&printTableFormat, "tbl-format", "f", "text",
		"output format (text, pretty, tex, compact, logisim)")
	printTableCmd.Flags().StringVarP(&printTablePolicy, "unused-value-is", "u", "forbidden",
		"treat missing rows as the given value (forbidden, 0, 1, *)")
}

func runPrintTable(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	table, err := readTable(path, printTablePolicy)
	if err != nil {
		return err
	}
	return table.Print(os.Stdout, printTableFormat)
}
