package agent

// Observer receives each turn as it is appended to the transcript. Used by
// the CLI to trace tool calls; a nil observer is ignored.
type Observer func(Turn)
