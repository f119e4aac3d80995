package goquery_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_SampleTests(t *testing.T) {
	t.Parallel()

	t.Run("pairs blocks by position", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="sample-test">
<div class="input"><pre>8</pre></div><div class="output"><pre>YES</pre></div>
<div class="input"><pre>6</pre></div><div class="output"><pre>YES</pre></div>
</div></body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{
			{Input: "8", Output: "YES"},
			{Input: "6", Output: "YES"},
		}, data.SampleTests)
	})

	t.Run("joins multi-line blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="sample-test">
<div class="input"><pre>3<br>1 2 3</pre></div>
<div class="output"><pre><div class="test-example-line">6</div><div class="test-example-line">0</div></pre></div>
</div></body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{{Input: "3 1 2 3", Output: "6 0"}}, data.SampleTests)
	})

	t.Run("stops at the shorter side", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="sample-test">
<div class="input"><pre>1</pre></div><div class="output"><pre>one</pre></div>
<div class="input"><pre>2</pre></div>
</div></body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{{Input: "1", Output: "one"}}, data.SampleTests)
	})

	t.Run("rejects empty and oversized blocks", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("9 ", 150)
		html := `<html><body><div class="sample-test">
<div class="input"><pre>` + long + `</pre></div><div class="output"><pre>too long</pre></div>
<div class="input"><pre>   </pre></div><div class="output"><pre>empty input</pre></div>
<div class="input"><pre>5</pre></div><div class="output"><pre>NO</pre></div>
</div></body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{{Input: "5", Output: "NO"}}, data.SampleTests)
		for _, tc := range data.SampleTests {
			assert.NotEmpty(t, tc.Input)
			assert.NotEmpty(t, tc.Output)
			assert.Less(t, utf8.RuneCountInString(tc.Input), 200)
			assert.Less(t, utf8.RuneCountInString(tc.Output), 200)
		}
	})

	t.Run("uses first family combination with an accepted pair", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="sample-test"><div class="input"><pre>1</pre></div><div class="output"><pre>2</pre></div></div>
<pre class="input">3</pre><pre class="output">4</pre>
<pre class="input">5</pre><pre class="output">6</pre>
</body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{{Input: "1", Output: "2"}}, data.SampleTests)
	})

	t.Run("falls back to later selector families", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<pre class="input">3</pre><pre class="output">4</pre>
</body></html>`

		data, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []cpfetch.TestCase{{Input: "3", Output: "4"}}, data.SampleTests)
	})

	t.Run("returns empty slice when no samples exist", func(t *testing.T) {
		t.Parallel()

		data, err := goquery.NewExtractor().Extract(`<html><body><pre>code</pre></body></html>`)

		require.NoError(t, err)
		assert.NotNil(t, data.SampleTests)
		assert.Empty(t, data.SampleTests)
	})
}
