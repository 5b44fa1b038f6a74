package tool

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leofalp/prospector/core/cost"
)

type echoInput struct {
	Message string `json:"message" jsonschema:"description=Message to echo,required"`
	Count   int    `json:"count,omitempty"`
}

type echoOutput struct {
	Echoed string `json:"echoed"`
}

func newEchoTool(options ...func(*funcToolOptions)) *Tool[echoInput, echoOutput] {
	return NewTool[echoInput, echoOutput]("Echo",
		func(_ context.Context, input echoInput) (echoOutput, error) {
			return echoOutput{Echoed: input.Message}, nil
		},
		options...,
	)
}

func TestNewTool(t *testing.T) {
	metrics := cost.ToolMetrics{Amount: 0.01, Currency: "USD", Accuracy: 0.99}
	echoTool := newEchoTool(
		WithDescription("Echoes the message back."),
		WithMetrics(metrics),
	)

	if echoTool.Name != "Echo" {
		t.Errorf("expected tool name 'Echo', got '%s'", echoTool.Name)
	}
	if echoTool.Description != "Echoes the message back." {
		t.Errorf("unexpected description: %s", echoTool.Description)
	}
	if echoTool.Parameters == nil {
		t.Fatal("expected derived parameter schema")
	}
	if echoTool.Parameters.Properties["message"] == nil {
		t.Error("expected 'message' property in parameter schema")
	}
	if len(echoTool.Parameters.Required) != 1 || echoTool.Parameters.Required[0] != "message" {
		t.Errorf("expected required=[message], got %v", echoTool.Parameters.Required)
	}
	if echoTool.Output == nil || echoTool.Output.Properties["echoed"] == nil {
		t.Error("expected derived output schema with 'echoed' property")
	}
	if echoTool.Metrics == nil || echoTool.Metrics.Amount != 0.01 {
		t.Errorf("expected metrics to be stored, got %+v", echoTool.Metrics)
	}
}

func TestToolInfo(t *testing.T) {
	echoTool := newEchoTool(WithDescription("desc"))
	info := echoTool.ToolInfo()

	if info.Name != "Echo" || info.Description != "desc" {
		t.Errorf("unexpected tool info: %+v", info)
	}
	if info.Parameters != echoTool.Parameters {
		t.Error("expected tool info to carry the parameter schema")
	}
}

func TestCall(t *testing.T) {
	echoTool := newEchoTool()

	result, err := echoTool.Call(context.Background(), `{"message": "hello"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var output echoOutput
	if err := json.Unmarshal([]byte(result), &output); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if output.Echoed != "hello" {
		t.Errorf("expected 'hello', got '%s'", output.Echoed)
	}
}

// TestCall_RepairsSloppyInput verifies that model-typical malformed JSON
// (single quotes, trailing commas) is repaired before decoding.
func TestCall_RepairsSloppyInput(t *testing.T) {
	echoTool := newEchoTool()

	result, err := echoTool.Call(context.Background(), `{'message': 'hello', 'count': 2,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "hello") {
		t.Errorf("expected repaired input to flow through, got %s", result)
	}
}

func TestCall_FunctionError(t *testing.T) {
	failingTool := NewTool[echoInput, echoOutput]("Failing",
		func(_ context.Context, _ echoInput) (echoOutput, error) {
			return echoOutput{}, errors.New("boom")
		},
	)

	_, err := failingTool.Call(context.Background(), `{"message": "hello"}`)
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected function error to propagate, got %v", err)
	}
}

func TestCall_UnparseableInput(t *testing.T) {
	echoTool := newEchoTool()

	// A bare string can never decode into the input struct, even after repair.
	_, err := echoTool.Call(context.Background(), `"just a plain string"`)
	if err == nil {
		t.Error("expected error for input that cannot decode into the input type")
	}
}

func TestGetMetrics(t *testing.T) {
	plain := newEchoTool()
	if plain.GetMetrics() != nil {
		t.Error("expected nil metrics when none configured")
	}

	withMetrics := newEchoTool(WithMetrics(cost.ToolMetrics{Amount: 0.5}))
	if got := withMetrics.GetMetrics(); got == nil || got.Amount != 0.5 {
		t.Errorf("expected configured metrics, got %+v", got)
	}
}
