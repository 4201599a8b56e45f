// Package errors provides the classified error primitives used across the asset generator.
//
// Every failure the pipeline surfaces to a user is a ClassifiedError carrying a
// category (missing input, invalid SVG, render, manifest, ...), a severity and
// structured context. The CLI adapter turns these into exit codes and messages.
//
// Example usage:
//
//	err := errors.MissingInputError("thumbnail SVG not found").
//		WithContext("file", "logo_thumbnail.svg").
//		WithContext("searched", dirs).
//		Build()
package errors
