package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/teranos/girgen/am"
	"github.com/teranos/girgen/codegen"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/internal/casing"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate trait impls for every type marked generate",
	Long: `Generate Rust trait impls for the types the status file marks generate.

Types are emitted in dependency order: every type comes after the
ancestors it depends on. With an output directory each type goes to its
own <snake_case>.rs file, otherwise everything is written to stdout.

Examples:
  girgen generate                    # All types to stdout
  girgen generate -o src/auto        # One file per type
  girgen generate -t TreePath -t Widget`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringP("output", "o", "", "Output directory (overrides output.dir)")
	GenerateCmd.Flags().StringSliceP("type", "t", nil, "Only generate these types")
	GenerateCmd.Flags().IntP("workers", "w", 0, "Parallel workers (overrides codegen.workers)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	e, cfg, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if cmd.Flags().Changed("output") {
		outDir, _ = cmd.Flags().GetString("output")
	}
	workers := cfg.Codegen.Workers
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		workers = w
	}

	only, _ := cmd.Flags().GetStringSlice("type")
	ids, err := selectTypes(e, only)
	if err != nil {
		return err
	}

	outputs, err := codegen.GenerateAll(cmd.Context(), e, ids, workers)
	if err != nil {
		return errors.Wrap(err, "generation failed")
	}

	if outDir == "" {
		return writeStream(cmd.OutOrStdout(), outputs)
	}
	return writeFiles(outDir, outputs)
}

// selectTypes returns the generated types, restricted to names when given.
func selectTypes(e *env.Env, names []string) ([]library.TypeID, error) {
	if len(names) == 0 {
		return generatedTypes(e), nil
	}
	ids := make([]library.TypeID, 0, len(names))
	for _, name := range names {
		id, err := resolveType(e, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// writeStream writes every non-empty output behind a comment naming its type.
func writeStream(w io.Writer, outputs []codegen.Output) error {
	for _, out := range outputs {
		if len(out.Content) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "// %s\n%s\n", out.FullName, out.Content); err != nil {
			return err
		}
	}
	return nil
}

// writeFiles writes one file per non-empty output into dir.
func writeFiles(dir string, outputs []codegen.Output) error {
	log := logger.Named("generate")

	if err := os.MkdirAll(dir, am.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	written := 0
	for _, out := range outputs {
		if len(out.Content) == 0 {
			log.Debugw("Nothing to write", "type", out.FullName)
			continue
		}
		path := filepath.Join(dir, casing.ToSnakeCase(out.Name)+".rs")
		if err := os.WriteFile(path, out.Content, am.DefaultFilePermissions); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		written++
	}

	log.Infow("Generation complete", "dir", dir, "files", written, "types", len(outputs))
	return nil
}
