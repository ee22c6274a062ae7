package codegen

import (
	"bytes"
	"context"

	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
	"golang.org/x/sync/errgroup"
)

// Output is the generated code of one type.
type Output struct {
	TypeID   library.TypeID
	Name     string
	FullName string
	Content  []byte
}

// GenerateAll generates every id into its own buffer, using up to workers
// goroutines. Results come back in GenerationOrder regardless of which
// finished first. The first failure cancels types not yet started.
func GenerateAll(ctx context.Context, e *env.Env, ids []library.TypeID, workers int) ([]Output, error) {
	ordered, err := GenerationOrder(e, ids)
	if err != nil {
		return nil, err
	}

	log := logger.Named("codegen")
	outputs := make([]Output, len(ordered))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, id := range ordered {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := AnalyzeObject(e, id)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := WriteObject(&buf, e, info); err != nil {
				return err
			}

			log.Infow("Generated type", "type", info.FullName, "bytes", buf.Len(), "supertypes", len(info.Supertypes))
			outputs[i] = Output{TypeID: id, Name: info.Name, FullName: info.FullName, Content: buf.Bytes()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
