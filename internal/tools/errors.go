package tools

import (
	"fmt"
	"strings"
)

// UnknownToolError reports a request for a tool name absent from the registry.
type UnknownToolError struct {
	Name  string
	Known []string
}

func (e *UnknownToolError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown tool %q (registry is empty)", e.Name)
	}
	return fmt.Sprintf("unknown tool %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// InvalidArgumentError reports tool arguments that do not match the tool's
// declared parameter schema.
type InvalidArgumentError struct {
	Tool   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, e.Reason)
}
