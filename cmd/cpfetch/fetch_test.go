package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/cpfetch"
	main "github.com/fwojciec/cpfetch/cmd/cpfetch"
	"github.com/fwojciec/cpfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	newDeps := func(extractor cpfetch.ProblemExtractor) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
		var stdout, stderr bytes.Buffer
		return &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &stdout,
			Stderr:    &stderr,
			Extractor: extractor,
			Presenter: main.NewConsole(&stdout),
		}, &stdout, &stderr
	}

	t.Run("copies sample input", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.ProblemExtractor{
			ExtractProblemDataFn: func(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
				data := watermelon()
				data.SampleTests = append(data.SampleTests, cpfetch.TestCase{Input: "5", Output: "NO"})
				return data, nil
			},
		})

		cmd := &main.FetchCmd{URL: problemURL, Format: main.FormatJSON, Copy: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "5\n", stdout.String())
	})

	t.Run("copy out of range", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.ProblemExtractor{
			ExtractProblemDataFn: func(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
				return watermelon(), nil
			},
		})

		cmd := &main.FetchCmd{URL: problemURL, Copy: 3}
		err := cmd.Run(deps)

		assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("reports extraction failure with browser hint", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.ProblemExtractor{
			ExtractProblemDataFn: func(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
				return nil, cpfetch.Errorf(cpfetch.EEXTRACT, "failed to launch browser")
			},
		})

		cmd := &main.FetchCmd{URL: problemURL}
		err := cmd.Run(deps)

		assert.Equal(t, cpfetch.EEXTRACT, cpfetch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: failed to launch browser")
		assert.Contains(t, stderr.String(), "Hint:")
		assert.Empty(t, stdout.String())
	})

	t.Run("no browser hint in static mode", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.ProblemExtractor{
			ExtractProblemDataFn: func(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
				return nil, cpfetch.Errorf(cpfetch.EEXTRACT, "HTTP 503 for %s", rawURL)
			},
		})

		cmd := &main.FetchCmd{URL: problemURL, Static: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.NotContains(t, stderr.String(), "Hint:")
	})
}

func TestConsole(t *testing.T) {
	t.Parallel()

	t.Run("only copying is supported", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		console := main.NewConsole(&buf)
		data := watermelon()

		assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(console.OnRunTests(context.Background(), data)))
		assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(console.OnGenerateScript(context.Background(), data)))
		require.NoError(t, console.OnCopyTestCase(context.Background(), cpfetch.TestCase{Input: "1 2\n", Output: "3"}))
		assert.Equal(t, "1 2\n", buf.String())
	})
}
