// SPDX-License-Identifier: MIT

package systax

import (
	"log/slog"
)

// Option customizes a Classifier.
type Option func(*Classifier)

// WithLogger routes Debug diagnostics to log. A nil logger discards them.
func WithLogger(log *slog.Logger) Option {
	return func(c *Classifier) {
		if log == nil {
			log = slog.New(slog.DiscardHandler)
		}
		c.log = log
	}
}

// WithSymmetry attaches an analyzer that receives the unit cell of every
// periodic region found.
func WithSymmetry(a SymmetryAnalyzer) Option {
	return func(c *Classifier) {
		c.symmetry = a
	}
}
