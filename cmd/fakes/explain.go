package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/fakes/pkg/option"
	"github.com/ajitpratap0/fakes/pkg/scanner"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <option>...",
		Short: "Show how option expressions are read",
		Long: `Show the option each expression is read as, and the output fields
it produces. Fields marked quoted are written as strings.

Example:
  fakes explain "Name.FullName(name#true)" "With.Join(full#\" \"#Name.LastName#Name.FirstName)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := scanner.ScanAll(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, col := range columns {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", args[i])
				dumper.Fdump(out, col.Option)
				for _, f := range option.Fields([]option.Column{col}) {
					fmt.Fprintf(out, "  field %q quoted=%t\n", f.Name, f.Quoted)
				}
			}
			return nil
		},
	}
}
