package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/cpfetch"
)

// Ensure Console implements cpfetch.Presenter.
var _ cpfetch.Presenter = (*Console)(nil)

// Console presents problem actions on a terminal.
// Only copying a test case has a terminal rendition: its input is printed
// verbatim so it can be piped into a solution.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) OnRunTests(ctx context.Context, data *cpfetch.ProblemData) error {
	return cpfetch.Errorf(cpfetch.EINVALID, "running tests is not supported in the terminal")
}

func (c *Console) OnGenerateScript(ctx context.Context, data *cpfetch.ProblemData) error {
	return cpfetch.Errorf(cpfetch.EINVALID, "script generation is not supported in the terminal")
}

func (c *Console) OnCopyTestCase(ctx context.Context, tc cpfetch.TestCase) error {
	input := tc.Input
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	_, err := fmt.Fprint(c.w, input)
	return err
}
