package z3bridge

import "fmt"

// Fake is a bounded brute-force Engine usable without cgo or a libz3
// install. It does not implement general decision procedures; instead it
// collects the literal values appearing in whatever has been asserted,
// builds a small candidate domain per variable from them, and tries every
// combination. That is enough to exercise the smt package's encoding and
// tainting logic in tests, where assertions only ever reference a handful
// of concrete constants.
type Fake struct {
	frames [][]Term // frames[i] holds the terms asserted at push-depth i
}

// NewFake returns a ready-to-use Fake with its base frame already pushed.
func NewFake() *Fake {
	return &Fake{frames: [][]Term{nil}}
}

func (f *Fake) Push() {
	f.frames = append(f.frames, nil)
}

func (f *Fake) Pop() {
	if len(f.frames) > 1 {
		f.frames = f.frames[:len(f.frames)-1]
	} else {
		f.frames[0] = nil
	}
}

func (f *Fake) Assert(t Term) {
	top := len(f.frames) - 1
	f.frames[top] = append(f.frames[top], t)
}

func (f *Fake) Close() {}

func (f *Fake) all() []Term {
	var out []Term
	for _, frame := range f.frames {
		out = append(out, frame...)
	}
	return out
}

// CheckSat brute-forces an assignment to every free variable referenced
// by the currently-asserted terms and reports Sat if any assignment
// makes every asserted term true.
func (f *Fake) CheckSat() (Result, error) {
	terms := f.all()
	vars := collectVars(terms)
	domains := make(map[varKey][]any, len(vars))
	for key := range vars {
		domains[key] = domainFor(key.sort, terms)
	}

	keys := make([]varKey, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}

	env := make(map[varKey]any, len(keys))
	if search(keys, domains, env, func() bool {
		for _, t := range terms {
			v, ok := eval(t, env).(bool)
			if !ok || !v {
				return false
			}
		}
		return true
	}) {
		return Sat, nil
	}
	return Unsat, nil
}

// search enumerates every assignment of keys from domains depth-first,
// calling check after each complete assignment. It returns true as soon
// as check returns true.
func search(keys []varKey, domains map[varKey][]any, env map[varKey]any, check func() bool) bool {
	if len(keys) == 0 {
		return check()
	}
	key := keys[0]
	rest := keys[1:]
	for _, v := range domains[key] {
		env[key] = v
		if search(rest, domains, env, check) {
			return true
		}
	}
	delete(env, key)
	return false
}

func collectVars(terms []Term) map[varKey]bool {
	out := map[varKey]bool{}
	var walk func(t Term)
	walk = func(t Term) {
		if t.op == opVar {
			out[varKey{t.sort, t.varID}] = true
		}
		for _, c := range t.children {
			walk(c)
		}
	}
	for _, t := range terms {
		walk(t)
	}
	return out
}

// domainFor builds the candidate value set for a variable of the given
// sort, seeded from every literal of that sort appearing in terms.
func domainFor(s sort, terms []Term) []any {
	seen := map[any]bool{}
	var out []any
	add := func(v any) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	switch s {
	case sortBool:
		add(true)
		add(false)
		return out
	case sortType:
		add("NumType")
		add("StrType")
		return out
	case sortInt:
		add(int64(0))
		add(int64(1))
	case sortSeq:
		add("")
	}
	var walk func(t Term)
	walk = func(t Term) {
		switch t.op {
		case opLitInt:
			if s == sortInt {
				add(t.litInt)
			}
		case opLitSeq:
			if s == sortSeq {
				lit := t.litSeq
				// Every prefix/suffix of a literal is a plausible value
				// for a free SeqVar participating in a SeqConcat with
				// that literal (e.g. s ++ "b" == "ab" needs s == "a").
				for i := 0; i <= len(lit); i++ {
					add(lit[:i])
					add(lit[i:])
				}
			}
		}
		for _, c := range t.children {
			walk(c)
		}
	}
	for _, t := range terms {
		walk(t)
	}
	if s == sortSeq {
		// Seed a handful of concatenations so SeqConcat constraints have
		// a chance of being satisfiable against a var domain built only
		// from the literals already present.
		bases := append([]any{}, out...)
		for _, a := range bases {
			for _, b := range bases {
				add(a.(string) + b.(string))
			}
		}
	}
	return out
}

// eval interprets t against env, which must already bind every opVar the
// term transitively references.
func eval(t Term, env map[varKey]any) any {
	switch t.op {
	case opVar:
		v, ok := env[varKey{t.sort, t.varID}]
		if !ok {
			panic(fmt.Sprintf("z3bridge: unbound var %v", t))
		}
		return v
	case opLitInt:
		return t.litInt
	case opLitSeq:
		return t.litSeq
	case opLitBool:
		return t.litBool
	case opNumTypeConst:
		return "NumType"
	case opStrTypeConst:
		return "StrType"
	case opEq:
		return eval(t.children[0], env) == eval(t.children[1], env)
	case opAnd:
		for _, c := range t.children {
			if !eval(c, env).(bool) {
				return false
			}
		}
		return true
	case opOr:
		for _, c := range t.children {
			if eval(c, env).(bool) {
				return true
			}
		}
		return false
	case opNot:
		return !eval(t.children[0], env).(bool)
	case opIntAdd:
		return eval(t.children[0], env).(int64) + eval(t.children[1], env).(int64)
	case opIntMul:
		return eval(t.children[0], env).(int64) * eval(t.children[1], env).(int64)
	case opIntQuot:
		divisor := eval(t.children[1], env).(int64)
		if divisor == 0 {
			return int64(0)
		}
		return eval(t.children[0], env).(int64) / divisor
	case opSeqConcat:
		return eval(t.children[0], env).(string) + eval(t.children[1], env).(string)
	default:
		panic(fmt.Sprintf("z3bridge: unhandled term op %d", t.op))
	}
}
