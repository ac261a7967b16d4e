// Package jgd holds the types shared by every part of the JSON generator:
// the error taxonomy, placeholder Arguments, the custom-key Registry, and
// the insertion-ordered Object used for generated documents.
//
// Schemas are modeled in package schema, loaded by compiler/load and
// generated by compiler/gen:
//
//	s, err := load.File("users.yaml")
//	if err != nil {
//	    return err
//	}
//	v, err := gen.Generate(ctx, s, gen.WithSeed(42))
//
// Custom keys extend the placeholder vocabulary:
//
//	jgd.Register("shop.sku", func(args jgd.Arguments) (any, error) {
//	    return fmt.Sprintf("SKU-%04d", args.Int(0)), nil
//	})
package jgd
