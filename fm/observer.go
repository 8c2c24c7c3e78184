package fm

// StepStats describes one elimination step at the moment the pairwise
// phase begins.
type StepStats struct {
	Column int // column being eliminated
	Rows   int // rows before the step
	Pos    int // rows with a positive coefficient at Column
	Neg    int // rows with a negative coefficient at Column
	Zero   int // rows surviving unchanged (minus the column)
}

// Candidates returns the number of pairwise combinations the step will
// examine.
func (s StepStats) Candidates() int { return s.Pos * s.Neg }

// Observer receives progress callbacks from the driver, the elimination
// step and the minimization pass. Hooks fire between atomic updates of
// the system; implementations must not mutate the system and should
// return quickly (OnCheckStart in particular sits on the hot path).
//
// Cancellation is handled separately through Options.Ctx, which is
// consulted at the same boundaries.
type Observer interface {
	// OnSolveStart fires once when the driver enters, before any step.
	OnSolveStart(ncols, target int)

	// OnStepStart fires at the start of each driver step, after the
	// column choice.
	OnStepStart(step, column int)

	// OnEliminateStart fires when a single elimination step has
	// partitioned the rows, before the pairwise phase.
	OnEliminateStart(stats StepStats)

	// OnCheckStart fires before each pairwise redundancy check.
	OnCheckStart(done, total int)

	// OnMinimizeStart fires at the start of each minimization round.
	OnMinimizeStart(round, rows int)
}

// NopObserver ignores every callback. It is the default.
type NopObserver struct{}

func (NopObserver) OnSolveStart(int, int)      {}
func (NopObserver) OnStepStart(int, int)       {}
func (NopObserver) OnEliminateStart(StepStats) {}
func (NopObserver) OnCheckStart(int, int)      {}
func (NopObserver) OnMinimizeStart(int, int)   {}
