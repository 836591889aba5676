// This is the main-driver for the SMT query harness: a small illustrative
// CLI over smt.Model, not a packaging deliverable (see SPEC_FULL.md's
// Non-goals).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yolol-lang/yolol-core/ast"
	"github.com/yolol-lang/yolol-core/numeric"
	"github.com/yolol-lang/yolol-core/smt"
	"github.com/yolol-lang/yolol-core/value"
)

func main() {
	//
	// Look for flags.
	//
	op := flag.String("op", "add", "Operator to apply to lhs/rhs: add, multiply, divide, eq, neq, and, or.")
	lhs := flag.String("lhs", "2", "Left operand. A bare number (e.g. 2, 2.5) or a quoted string (e.g. \"hi\").")
	rhs := flag.String("rhs", "3", "Right operand, same syntax as -lhs.")
	expect := flag.String("expect", "", "If set, also ask whether the result must/can be this value.")
	timeout := flag.Int("timeout-ms", smt.DefaultTimeoutMillis, "Solver timeout in milliseconds.")
	flag.Parse()

	kind, ok := operatorKind(*op)
	if !ok {
		fmt.Printf("Unknown -op %q: want one of add, multiply, divide, eq, neq, and, or\n", *op)
		os.Exit(1)
	}

	model, err := smt.NewModel(smt.Config{TimeoutMillis: *timeout})
	if err != nil {
		fmt.Printf("Error building model: %s\n", err)
		os.Exit(1)
	}
	defer model.Close()

	expr := binaryNode(kind, literalNode(*lhs), literalNode(*rhs))
	result := model.GetOrCreate("result")
	if err := model.AssertExpr(result, expr); err != nil {
		fmt.Printf("%s = %s %s %s: encoder says %s (treating as fully unknown)\n", "result", *lhs, *op, *rhs, err)
	}

	report(model, result)

	if *expect != "" {
		v := literalValue(*expect)
		can, err := model.CanBeValue(result, v)
		if err != nil {
			fmt.Printf("CanBeValue(%s): error: %s\n", *expect, err)
		} else {
			fmt.Printf("CanBeValue(%s): %s\n", *expect, can)
		}
		is, err := model.IsValue(result, v)
		if err != nil {
			fmt.Printf("IsValue(%s): error: %s\n", *expect, err)
		} else {
			fmt.Printf("IsValue(%s): %s\n", *expect, is)
		}
	}
}

func report(model *smt.Model, b *smt.Binding) {
	available, err := model.IsValueAvailable(b)
	if err != nil {
		fmt.Printf("IsValueAvailable: error: %s\n", err)
	} else {
		fmt.Printf("IsValueAvailable: %s\n", available)
	}
	canNum, err := model.CanBeNumber(b)
	if err != nil {
		fmt.Printf("CanBeNumber: error: %s\n", err)
	} else {
		fmt.Printf("CanBeNumber: %s\n", canNum)
	}
	canStr, err := model.CanBeString(b)
	if err != nil {
		fmt.Printf("CanBeString: error: %s\n", err)
	} else {
		fmt.Printf("CanBeString: %s\n", canStr)
	}
}

func operatorKind(op string) (ast.Kind, bool) {
	switch strings.ToLower(op) {
	case "add":
		return ast.Add, true
	case "multiply":
		return ast.Multiply, true
	case "divide":
		return ast.Divide, true
	case "eq":
		return ast.EqualTo, true
	case "neq":
		return ast.NotEqualTo, true
	case "and":
		return ast.And, true
	case "or":
		return ast.Or, true
	}
	return 0, false
}

// literalNode and literalValue share the same quoted-string-or-number
// parsing, since the CLI has no parser to lean on (AST is consumed, not
// produced, per SPEC_FULL.md's Non-goals).
func literalNode(s string) *literal {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		return &literal{kind: ast.ConstantString, str: strings.Trim(s, `"`)}
	}
	n, err := numeric.Parse(s)
	if err != nil {
		fmt.Printf("Error parsing %q as a number (quote it for a string literal): %s\n", s, err)
		os.Exit(1)
	}
	return &literal{kind: ast.ConstantNumber, num: n.Raw()}
}

func literalValue(s string) value.Value {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		return value.Str(strings.Trim(s, `"`))
	}
	n, err := numeric.Parse(s)
	if err != nil {
		fmt.Printf("Error parsing %q as a number: %s\n", s, err)
		os.Exit(1)
	}
	return value.Num(n)
}

func binaryNode(kind ast.Kind, l, r *literal) *literal {
	return &literal{kind: kind, left: l, right: r}
}

// literal is the CLI's own minimal ast.Node implementation: a leaf
// (ConstantNumber/ConstantString) or a binary node over two leaves.
type literal struct {
	kind  ast.Kind
	left  *literal
	right *literal
	num   int64
	str   string
}

func (l *literal) Kind() ast.Kind { return l.kind }
func (l *literal) Left() ast.Node {
	if l.left == nil {
		return nil
	}
	return l.left
}
func (l *literal) Right() ast.Node {
	if l.right == nil {
		return nil
	}
	return l.right
}
func (l *literal) NumberValue() int64  { return l.num }
func (l *literal) StringValue() string { return l.str }
func (l *literal) Name() string        { return "" }
