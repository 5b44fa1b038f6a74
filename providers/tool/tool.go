package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/leofalp/prospector/core/cost"
	"github.com/leofalp/prospector/core/parse"
	"github.com/leofalp/prospector/internal/jsonschema"
)

// Tool represents a typed, callable tool that can be advertised to an agent
// runtime. It binds a name and description to a strongly-typed Go function,
// and automatically derives JSON schemas for both input (I) and output (O)
// via reflection. Use [NewTool] to construct a Tool; the [GenericTool]
// interface allows runtime-agnostic dispatch.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics contains optional cost and performance metrics for this tool execution.
	Metrics *cost.ToolMetrics
}

// ToolDescription is the metadata advertised to the agent runtime for a
// single tool: its name, the natural-language description the model reads
// when deciding whether to invoke it, and the parameter schema.
type ToolDescription struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Metrics     *cost.ToolMetrics  `json:"metrics,omitempty"`
}

// GenericTool is the runtime-agnostic interface for all tools.
// It abstracts over the concrete generic type parameters of [Tool] so that
// tools can be stored, dispatched, and introspected without knowing their
// exact input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, parameter schema)
	// used to advertise this tool to the agent runtime.
	ToolInfo() ToolDescription

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution fails.
	Call(ctx context.Context, inputJson string) (string, error)

	// GetMetrics returns the cost and performance metrics associated with
	// this tool, or nil if none were configured.
	GetMetrics() *cost.ToolMetrics
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// WithDescription sets a human-readable description for the tool.
// The agent runtime surfaces this description to the language model to help
// it decide when and how to invoke the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithMetrics sets the metrics (cost, accuracy, speed) for executing this tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Metrics = &toolMetrics
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// JSON schemas for the input type I and output type O are derived
// automatically via reflection. Optional configuration (description, metrics)
// can be provided through [WithDescription] and [WithMetrics].
//
// Example:
//
//	searchTool := tool.NewTool("WebSearch", searchFunc,
//	    tool.WithDescription("Searches the web for a query."),
//	    tool.WithMetrics(cost.ToolMetrics{Amount: 0.001, Currency: "USD"}),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metrics:     toolOptions.Metrics,
	}
}

// ToolInfo returns the [ToolDescription] used to advertise this tool.
func (t *Tool[I, O]) ToolInfo() ToolDescription {
	return ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Metrics:     t.Metrics,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. It leniently deserializes inputJson into the tool's input type I
// via [parse.ParseStringAs], executes the function, and returns the result
// serialized as JSON. Returns an error if JSON parsing, function execution,
// or output marshaling fails.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	start := time.Now()

	// Flexibly parse the LLM-supplied input JSON into the strongly-typed input type.
	parsedInput, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		slog.Error("tool input parse failed", "tool", t.Name, "error", err.Error())
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		slog.Error("tool execution failed", "tool", t.Name, "duration", duration, "error", err.Error())
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		slog.Error("tool output marshal failed", "tool", t.Name, "error", err.Error())
		return "", err
	}

	slog.Debug("tool executed", "tool", t.Name, "duration", duration, "output_size", len(outputBytes))

	return string(outputBytes), nil
}

// GetMetrics returns the metrics (cost and performance data) for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
