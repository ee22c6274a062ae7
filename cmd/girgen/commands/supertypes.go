package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/teranos/girgen/analysis/imports"
	"github.com/teranos/girgen/analysis/supertypes"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
)

// SupertypesCmd represents the supertypes command
var SupertypesCmd = &cobra.Command{
	Use:   "supertypes <type>",
	Short: "Show the resolved ancestors of a type",
	Long: `Show the ancestors of a type nearest first, as generation sees them:
without the universal base, each with its status, followed by the
imports they contribute. Ancestors named by the type itself are marked
direct, the rest inherited.

Examples:
  girgen supertypes Button
  girgen supertypes Gio.Application`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, _, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		id, err := resolveType(e, args[0])
		if err != nil {
			return err
		}
		return printSupertypes(cmd.OutOrStdout(), e, id)
	},
}

func printSupertypes(w io.Writer, e *env.Env, id library.TypeID) error {
	imps := imports.New()
	parents := supertypes.Analyze(e, id, imps)

	fmt.Fprintf(w, "%s\n", id.FullName(e.Library))
	if len(parents) == 0 {
		fmt.Fprintln(w, "  (no ancestors)")
	}

	direct := make(map[library.TypeID]bool)
	for _, d := range e.Hierarchy.DirectSupertypes(id) {
		direct[d] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range parents {
		relation := "inherited"
		if direct[p.TypeID] {
			relation = "direct"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.TypeID.FullName(e.Library), p.Status, relation)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, name := range imps.Names() {
		fmt.Fprintf(w, "use %s;\n", name)
	}
	return nil
}
