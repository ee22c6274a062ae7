package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/girgen/analysis/supertypes"
	"github.com/teranos/girgen/codegen"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
)

// DepsCmd represents the deps command
var DepsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show generation order and dependencies",
	Long: `List the types marked generate in the order they are generated,
each followed by the generated ancestors it depends on.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, _, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return printDeps(cmd.OutOrStdout(), e, generatedTypes(e))
	},
}

func printDeps(w io.Writer, e *env.Env, ids []library.TypeID) error {
	order, err := codegen.GenerationOrder(e, ids)
	if err != nil {
		return err
	}

	for _, id := range order {
		deps := supertypes.Dependencies(e, id)
		names := make([]string, len(deps))
		for i, dep := range deps {
			names[i] = dep.FullName(e.Library)
		}
		if len(names) == 0 {
			fmt.Fprintln(w, id.FullName(e.Library))
			continue
		}
		fmt.Fprintf(w, "%s <- %s\n", id.FullName(e.Library), strings.Join(names, ", "))
	}
	return nil
}
