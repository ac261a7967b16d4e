// Package compiler loads generator documents and runs them in one call.
//
//	v, err := compiler.Generate(ctx, "users.yaml", gen.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	return output.JSON(os.Stdout, v, output.Pretty())
package compiler

import (
	"context"

	"github.com/syssam/jgd/compiler/gen"
	"github.com/syssam/jgd/compiler/load"
)

// Generate loads the document at path and generates it.
func Generate(ctx context.Context, path string, opts ...gen.Option) (any, error) {
	s, err := load.File(path)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, s, opts...)
}

// GenerateBytes decodes a JSON or YAML document and generates it.
func GenerateBytes(ctx context.Context, data []byte, opts ...gen.Option) (any, error) {
	s, err := load.Bytes(data)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, s, opts...)
}

// Run loads the document at path and generates it, returning the seed and
// node count along with the document.
func Run(ctx context.Context, path string, opts ...gen.Option) (*gen.Result, error) {
	s, err := load.File(path)
	if err != nil {
		return nil, err
	}
	return gen.Run(ctx, s, opts...)
}
