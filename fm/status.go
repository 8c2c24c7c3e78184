package fm

import "github.com/sirupsen/logrus"

// StatusLogger is an Observer that reports elimination progress through a
// logrus logger: column count and target on entry, the chosen column of
// each step, per-step row count, combined pos+neg partition size and
// candidate total, and the row count when minimization starts. Later
// minimization rounds are not logged.
//
// Driver and step events log at Info/Debug; the per-candidate hook logs
// at Trace and only every checkEvery candidates, to keep the hot path
// cheap under the default levels.
type StatusLogger struct {
	log logrus.FieldLogger
}

const checkEvery = 256

// NewStatusLogger wraps the given logger. A nil logger uses
// logrus.StandardLogger.
func NewStatusLogger(log logrus.FieldLogger) *StatusLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &StatusLogger{log: log}
}

func (s *StatusLogger) OnSolveStart(ncols, target int) {
	s.log.WithFields(logrus.Fields{"ncols": ncols, "target": target}).Info("eliminate")
}

func (s *StatusLogger) OnStepStart(step, column int) {
	s.log.WithFields(logrus.Fields{"step": step, "column": column}).Debug("step")
}

func (s *StatusLogger) OnEliminateStart(stats StepStats) {
	s.log.WithFields(logrus.Fields{
		"column":     stats.Column,
		"rows":       stats.Rows,
		"pos+neg":    stats.Pos + stats.Neg,
		"candidates": stats.Candidates(),
	}).Debug("pairwise phase")
}

func (s *StatusLogger) OnCheckStart(done, total int) {
	if done%checkEvery != 0 {
		return
	}
	s.log.WithFields(logrus.Fields{"done": done, "total": total}).Trace("redundancy checks")
}

func (s *StatusLogger) OnMinimizeStart(round, rows int) {
	if round == 0 {
		s.log.WithField("rows", rows).Info("minimize")
	}
}
