package cpfetch_test

import (
	"context"
	"testing"

	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	data := cpfetch.NewProblemData()
	data.SampleTests = []cpfetch.TestCase{
		{Input: "8", Output: "YES"},
		{Input: "6", Output: "YES"},
	}

	t.Run("routes run tests", func(t *testing.T) {
		t.Parallel()

		var got *cpfetch.ProblemData
		p := &mock.Presenter{
			OnRunTestsFn: func(_ context.Context, d *cpfetch.ProblemData) error {
				got = d
				return nil
			},
		}

		err := cpfetch.Dispatch(context.Background(), p, data, cpfetch.Command{Kind: cpfetch.CommandRunTests})

		require.NoError(t, err)
		assert.Same(t, data, got)
	})

	t.Run("routes generate script", func(t *testing.T) {
		t.Parallel()

		called := false
		p := &mock.Presenter{
			OnGenerateScriptFn: func(_ context.Context, _ *cpfetch.ProblemData) error {
				called = true
				return nil
			},
		}

		err := cpfetch.Dispatch(context.Background(), p, data, cpfetch.Command{Kind: cpfetch.CommandGenerateScript})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("copies the selected test case", func(t *testing.T) {
		t.Parallel()

		var got cpfetch.TestCase
		p := &mock.Presenter{
			OnCopyTestCaseFn: func(_ context.Context, tc cpfetch.TestCase) error {
				got = tc
				return nil
			},
		}

		err := cpfetch.Dispatch(context.Background(), p, data, cpfetch.Command{Kind: cpfetch.CommandCopyTestCase, TestIndex: 1})

		require.NoError(t, err)
		assert.Equal(t, cpfetch.TestCase{Input: "6", Output: "YES"}, got)
	})

	t.Run("rejects out of range test index", func(t *testing.T) {
		t.Parallel()

		err := cpfetch.Dispatch(context.Background(), &mock.Presenter{}, data, cpfetch.Command{Kind: cpfetch.CommandCopyTestCase, TestIndex: 2})

		require.Error(t, err)
		assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(err))
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		t.Parallel()

		err := cpfetch.Dispatch(context.Background(), &mock.Presenter{}, data, cpfetch.Command{Kind: "submit"})

		require.Error(t, err)
		assert.Equal(t, cpfetch.EINVALID, cpfetch.ErrorCode(err))
	})
}
