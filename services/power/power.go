// Package power applies the start-of-cycle consumption trims: every
// peripheral the cycle has not asked for yet stays dark until it is
// needed. Steps are platform-supplied; the trimmer just runs them.
package power

import "envlogger-go/x/logx"

var log = logx.New("power")

// Step is one named trim action.
type Step struct {
	Name  string
	Apply func()
}

// Trimmer runs trim steps in order. Implements the cycle's Power
// collaborator.
type Trimmer struct {
	steps []Step
}

func New(steps ...Step) *Trimmer {
	return &Trimmer{steps: steps}
}

func (t *Trimmer) Trim() {
	for _, s := range t.steps {
		if s.Apply == nil {
			continue
		}
		s.Apply()
		log.Infof("trimmed: %s", s.Name)
	}
}
