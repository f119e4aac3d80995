package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/cpfetch"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	data, err := deps.Extractor.ExtractProblemData(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cpfetch.ErrorMessage(err))
		if cpfetch.ErrorCode(err) == cpfetch.EEXTRACT && !c.Static {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed (or try --static)")
		}
		return err
	}

	if c.Copy > 0 {
		return cpfetch.Dispatch(deps.Ctx, deps.Presenter, data, cpfetch.Command{
			Kind:      cpfetch.CommandCopyTestCase,
			TestIndex: c.Copy - 1,
		})
	}

	switch c.Format {
	case FormatMarkdown:
		_, err = fmt.Fprint(deps.Stdout, cpfetch.FormatMarkdown(data))
		return err
	default:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(data)
	}
}
