package mock

import (
	"context"

	"github.com/fwojciec/cpfetch"
)

var _ cpfetch.Presenter = (*Presenter)(nil)

// Presenter is a mock implementation of cpfetch.Presenter.
type Presenter struct {
	OnRunTestsFn       func(ctx context.Context, data *cpfetch.ProblemData) error
	OnGenerateScriptFn func(ctx context.Context, data *cpfetch.ProblemData) error
	OnCopyTestCaseFn   func(ctx context.Context, tc cpfetch.TestCase) error
}

func (p *Presenter) OnRunTests(ctx context.Context, data *cpfetch.ProblemData) error {
	return p.OnRunTestsFn(ctx, data)
}

func (p *Presenter) OnGenerateScript(ctx context.Context, data *cpfetch.ProblemData) error {
	return p.OnGenerateScriptFn(ctx, data)
}

func (p *Presenter) OnCopyTestCase(ctx context.Context, tc cpfetch.TestCase) error {
	return p.OnCopyTestCaseFn(ctx, tc)
}
