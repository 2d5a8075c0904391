package agent

import "fmt"

// TurnLimitError reports a run that exhausted its turn budget without the
// model producing a terminal text answer.
type TurnLimitError struct {
	Limit int
}

func (e *TurnLimitError) Error() string {
	return fmt.Sprintf("turn limit exceeded: no final answer after %d turns", e.Limit)
}
