// Package parse converts language-model-supplied strings into strongly typed
// Go values. Tool inputs arrive as JSON text produced by a model, which is
// occasionally malformed; [ParseStringAs] repairs and coerces such content
// before handing it to the tool function.
package parse
