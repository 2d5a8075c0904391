package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// binaryParams is the shared JSON Schema for the two-operand arithmetic tools.
const binaryParams = `{
	"type": "object",
	"properties": {
		"a": {"type": "number", "description": "First operand"},
		"b": {"type": "number", "description": "Second operand"}
	},
	"required": ["a", "b"]
}`

// parseOperands validates params against the binary schema and parses the two
// operands. Each operand is coerced to float64 exactly once, here.
func parseOperands(tool string, params json.RawMessage) (a, b float64, err error) {
	if !gjson.ValidBytes(params) {
		return 0, 0, &InvalidArgumentError{Tool: tool, Reason: "arguments are not valid JSON"}
	}
	for _, field := range []string{"a", "b"} {
		v := gjson.GetBytes(params, field)
		if !v.Exists() {
			return 0, 0, &InvalidArgumentError{Tool: tool, Reason: fmt.Sprintf("missing required field %q", field)}
		}
		if v.Type != gjson.Number {
			return 0, 0, &InvalidArgumentError{Tool: tool, Reason: fmt.Sprintf("field %q must be a number, got %s", field, v.Type)}
		}
	}
	return gjson.GetBytes(params, "a").Float(), gjson.GetBytes(params, "b").Float(), nil
}

// formatNumber renders a result without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type AddTool struct{}

func NewAddTool() *AddTool { return &AddTool{} }

func (t *AddTool) Name() string        { return "add" }
func (t *AddTool) Description() string { return "Add two numbers and return the sum" }
func (t *AddTool) Parameters() json.RawMessage {
	return json.RawMessage(binaryParams)
}

func (t *AddTool) Execute(_ context.Context, params json.RawMessage) (string, error) {
	a, b, err := parseOperands(t.Name(), params)
	if err != nil {
		return "", err
	}
	return formatNumber(a + b), nil
}

type MultiplyTool struct{}

func NewMultiplyTool() *MultiplyTool { return &MultiplyTool{} }

func (t *MultiplyTool) Name() string        { return "multiply" }
func (t *MultiplyTool) Description() string { return "Multiply two numbers and return the product" }
func (t *MultiplyTool) Parameters() json.RawMessage {
	return json.RawMessage(binaryParams)
}

func (t *MultiplyTool) Execute(_ context.Context, params json.RawMessage) (string, error) {
	a, b, err := parseOperands(t.Name(), params)
	if err != nil {
		return "", err
	}
	return formatNumber(a * b), nil
}
