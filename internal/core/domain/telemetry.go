package domain

// Span names recorded for supervised runs.
const (
	// SpanRun covers one run triggered by a watch event.
	SpanRun = "run"
	// SpanImmediate covers the run requested before any watch is armed.
	SpanImmediate = "immediate"
)

// Span attribute keys.
const (
	// AttrPath is the watched path that triggered the run.
	AttrPath = "imk.path"
	// AttrResult is the RunResult rendered with RunResult.String.
	AttrResult = "imk.result"
	// AttrExitCode is the code the run would terminate the program with in once mode.
	AttrExitCode = "imk.exit_code"
)
