package mock

import "github.com/fwojciec/cpfetch"

var _ cpfetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of cpfetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
