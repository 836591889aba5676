package z3bridge

import (
	"fmt"
	"strconv"

	z3 "github.com/mitchellh/go-z3"
)

// Config controls Bridge construction. TimeoutMillis bounds every
// CheckSat call; on expiry the query returns Unknown, never a definitive
// answer (spec.md §5). The zero value is not valid; use NewConfig or let
// New default it.
type Config struct {
	TimeoutMillis int
}

const defaultTimeoutMillis = 10_000

// NewConfig returns the spec-mandated default Config (spec.md §5).
func NewConfig() Config {
	return Config{TimeoutMillis: defaultTimeoutMillis}
}

// Bridge is a single Z3 context plus its solver. It is single-threaded per
// instance: build it on one goroutine, then query it freely from that same
// goroutine (spec.md §5). Multiple independent Bridges may run in
// parallel.
type Bridge struct {
	ctx    *z3.Context
	solver *z3.Solver

	typeSort *z3.Sort
	numCtor  *z3.FuncDecl
	strCtor  *z3.FuncDecl
	intSort  *z3.Sort
	seqSort  *z3.Sort

	// vars caches the *z3.AST for each (sort, varID) pair so repeated
	// references to the same program variable or arena slot resolve to
	// the same solver constant (spec.md §4.3: getOrCreate returns the
	// same binding on repeated calls).
	vars map[varKey]*z3.AST
}

type varKey struct {
	sort sort
	id   int
}

// New builds a Bridge with the given Config.
func New(cfg Config) *Bridge {
	if cfg.TimeoutMillis <= 0 {
		cfg.TimeoutMillis = defaultTimeoutMillis
	}
	zcfg := z3.NewConfig()
	zcfg.SetParamValue("timeout", strconv.Itoa(cfg.TimeoutMillis))
	ctx := z3.NewContext(zcfg)
	zcfg.Close()

	b := &Bridge{
		ctx:  ctx,
		vars: make(map[varKey]*z3.AST),
	}
	b.intSort = ctx.IntSort()
	b.seqSort = ctx.NewSeqSort(ctx.CharSort())
	b.typeSort, b.numCtor, b.strCtor = newValueTypeSort(ctx)
	b.solver = ctx.NewSolver()
	return b
}

// newValueTypeSort builds the two-constructor {NumType, StrType} datatype
// sort spec.md §4.3 describes, the way the solver's own enumeration
// sort constructor expects: a name per constructor, no fields.
func newValueTypeSort(ctx *z3.Context) (*z3.Sort, *z3.FuncDecl, *z3.FuncDecl) {
	valueSort, ctors := ctx.NewEnumSort("ValueType", []string{"NumType", "StrType"})
	return valueSort, ctors[0], ctors[1]
}

// Close releases the solver and context. Safe to defer immediately after
// New, per spec.md §5's "guaranteed release on all exit paths".
func (b *Bridge) Close() {
	if b.solver != nil {
		b.solver.Close()
	}
	b.ctx.Close()
}

func (b *Bridge) Push() { b.solver.Push() }
func (b *Bridge) Pop()  { b.solver.Pop(1) }

// Assert compiles t and adds it to the solver's current frame.
func (b *Bridge) Assert(t Term) {
	b.solver.Assert(b.compile(t))
}

// CheckSat runs the solver against the currently-asserted frame stack.
func (b *Bridge) CheckSat() (Result, error) {
	switch b.solver.Check() {
	case z3.True:
		return Sat, nil
	case z3.False:
		return Unsat, nil
	default:
		return Unknown, nil
	}
}

// compile lowers a Term into a live *z3.AST, creating and caching solver
// constants for variables as needed.
func (b *Bridge) compile(t Term) *z3.AST {
	switch t.op {
	case opVar:
		return b.varAST(t.sort, t.varID)
	case opLitInt:
		return b.ctx.Int(int(t.litInt), b.intSort)
	case opLitSeq:
		return b.seqLiteral(t.litSeq)
	case opLitBool:
		if t.litBool {
			return b.ctx.True()
		}
		return b.ctx.False()
	case opNumTypeConst:
		return b.numCtor.Apply()
	case opStrTypeConst:
		return b.strCtor.Apply()
	case opEq:
		return b.ctx.Eq(b.compile(t.children[0]), b.compile(t.children[1]))
	case opAnd:
		return b.ctx.And(b.compileAll(t.children)...)
	case opOr:
		return b.ctx.Or(b.compileAll(t.children)...)
	case opNot:
		return b.ctx.Not(b.compile(t.children[0]))
	case opIntAdd:
		return b.ctx.Add(b.compile(t.children[0]), b.compile(t.children[1]))
	case opIntMul:
		return b.ctx.Mul(b.compile(t.children[0]), b.compile(t.children[1]))
	case opIntQuot:
		return b.ctx.Div(b.compile(t.children[0]), b.compile(t.children[1]))
	case opSeqConcat:
		return b.ctx.SeqConcat(b.compile(t.children[0]), b.compile(t.children[1]))
	default:
		panic(fmt.Sprintf("z3bridge: unhandled term op %d", t.op))
	}
}

func (b *Bridge) compileAll(terms []Term) []*z3.AST {
	out := make([]*z3.AST, len(terms))
	for i, t := range terms {
		out[i] = b.compile(t)
	}
	return out
}

func (b *Bridge) varAST(s sort, id int) *z3.AST {
	key := varKey{s, id}
	if ast, ok := b.vars[key]; ok {
		return ast
	}
	name := fmt.Sprintf("v%d_%d", int(s), id)
	var sortPtr *z3.Sort
	switch s {
	case sortType:
		sortPtr = b.typeSort
	case sortInt:
		sortPtr = b.intSort
	case sortSeq:
		sortPtr = b.seqSort
	case sortBool:
		sortPtr = b.ctx.BoolSort()
	}
	ast := b.ctx.Const(b.ctx.Symbol(name), sortPtr)
	b.vars[key] = ast
	return ast
}

func (b *Bridge) seqLiteral(s string) *z3.AST {
	ast := b.ctx.EmptySeq(b.seqSort)
	for _, r := range s {
		ast = b.ctx.SeqConcat(ast, b.ctx.UnitSeq(b.ctx.Int(int(r), b.ctx.CharSort())))
	}
	return ast
}
