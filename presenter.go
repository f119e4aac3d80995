package cpfetch

import "context"

// Presenter receives user actions from the presentation layer.
// The core only supplies the payloads; what each action does is up to
// the implementation.
type Presenter interface {
	OnRunTests(ctx context.Context, data *ProblemData) error
	OnGenerateScript(ctx context.Context, data *ProblemData) error
	OnCopyTestCase(ctx context.Context, tc TestCase) error
}

// CommandKind names a presentation action.
type CommandKind string

// Presentation actions.
const (
	CommandRunTests       CommandKind = "runTests"
	CommandGenerateScript CommandKind = "generateScript"
	CommandCopyTestCase   CommandKind = "copyTestCase"
)

// Command is a single action requested by the presentation layer.
type Command struct {
	Kind CommandKind `json:"command"`

	// TestIndex selects the sample test for CommandCopyTestCase (zero-based).
	TestIndex int `json:"testIndex,omitempty"`
}

// Dispatch routes cmd to the matching Presenter method.
// Returns EINVALID for unknown commands or out-of-range test indexes.
func Dispatch(ctx context.Context, p Presenter, data *ProblemData, cmd Command) error {
	switch cmd.Kind {
	case CommandRunTests:
		return p.OnRunTests(ctx, data)
	case CommandGenerateScript:
		return p.OnGenerateScript(ctx, data)
	case CommandCopyTestCase:
		if cmd.TestIndex < 0 || cmd.TestIndex >= len(data.SampleTests) {
			return Errorf(EINVALID, "test case %d out of range (have %d)", cmd.TestIndex+1, len(data.SampleTests))
		}
		return p.OnCopyTestCase(ctx, data.SampleTests[cmd.TestIndex])
	default:
		return Errorf(EINVALID, "unknown command %q", cmd.Kind)
	}
}
