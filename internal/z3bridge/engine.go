package z3bridge

// Result is the three-valued outcome of a satisfiability check, matching
// the solver's own sat/unsat/unknown (spec.md §5: an expired timeout folds
// into Unknown, never into a definitive answer).
type Result int

const (
	Unsat Result = iota
	Sat
	Unknown
)

// Engine asserts Terms into a solver's assertion stack and answers
// satisfiability queries against it. Push/Pop bracket a query the way
// spec.md §5 describes: "push a frame, assert the negation under test,
// check satisfiability, and pop" — queries never mutate the logical
// assertion set they're layered on top of.
type Engine interface {
	Push()
	Pop()
	Assert(t Term)
	CheckSat() (Result, error)
	Close()
}

// Scoped runs f with a fresh push/pop frame around it, guaranteeing the
// frame is popped on every exit path including a panic — the "scoped
// acquisition with guaranteed release" spec.md §5 requires of solver
// resources.
func Scoped(e Engine, f func() (Result, error)) (result Result, err error) {
	e.Push()
	defer e.Pop()
	return f()
}
