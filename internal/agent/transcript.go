package agent

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// TurnKind tags the variant of a transcript turn.
type TurnKind string

const (
	TurnUser          TurnKind = "user"
	TurnAssistantText TurnKind = "assistant_text"
	TurnToolCall      TurnKind = "tool_call"
	TurnToolResult    TurnKind = "tool_result"
)

// Turn is one entry in a run's transcript.
type Turn struct {
	Kind      TurnKind `json:"kind"`
	Text      string   `json:"text,omitempty"`      // user / assistant_text
	ToolName  string   `json:"tool,omitempty"`      // tool_call / tool_result
	CallID    string   `json:"call_id,omitempty"`   // correlates call and result
	Arguments string   `json:"arguments,omitempty"` // tool_call, JSON string
	Value     string   `json:"value,omitempty"`     // tool_result
	Timestamp string   `json:"timestamp,omitempty"`
}

// Transcript is the ordered record of all turns in one run. Each executor run
// owns its own transcript; nothing is shared across runs.
type Transcript struct {
	StartedAt string `json:"started_at"`
	Model     string `json:"model"`
	Turns     []Turn `json:"-"`
}

func NewTranscript(model string) *Transcript {
	return &Transcript{
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Model:     model,
	}
}

// Append adds a turn, stamping it if needed. Appending a tool result whose
// call id does not match the immediately preceding tool call is a programming
// error and panics; the executor appends results right after their calls.
func (tr *Transcript) Append(turn Turn) {
	if turn.Timestamp == "" {
		turn.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if turn.Kind == TurnToolResult {
		if len(tr.Turns) == 0 || tr.Turns[len(tr.Turns)-1].Kind != TurnToolCall ||
			tr.Turns[len(tr.Turns)-1].CallID != turn.CallID {
			panic(fmt.Sprintf("tool result %q does not follow its call", turn.CallID))
		}
	}
	tr.Turns = append(tr.Turns, turn)
}

// WriteTo dumps the transcript as JSONL: a header line followed by one line
// per turn.
func (tr *Transcript) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := json.NewEncoder(cw)
	if err := enc.Encode(tr); err != nil {
		return cw.n, fmt.Errorf("failed to write transcript header: %w", err)
	}
	for _, turn := range tr.Turns {
		if err := enc.Encode(turn); err != nil {
			return cw.n, fmt.Errorf("failed to write turn: %w", err)
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
