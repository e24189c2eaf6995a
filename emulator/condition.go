package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Condition is a starlark expression over the machine state, such as
// `r1 == 5 and mem[0x20] > 3`.
type Condition struct {
	Expr string
}

// ParseCondition checks the syntax of a condition expression.
func ParseCondition(expr string) (cond *Condition, err error) {
	opts := syntax.FileOptions{}
	_, err = opts.ParseExpr("condition", expr, 0)
	if err != nil {
		err = ErrCondition{Expr: expr, Err: err}
		return
	}

	cond = &Condition{Expr: expr}
	return
}

// Eval evaluates the condition against the emulator state, using
// starlark truth for non-boolean results.
func (cond *Condition) Eval(emu *Emulator) (hit bool, err error) {
	thread := starlark.Thread{Name: "condition"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range emu.Defines() {
		pred[key] = value
	}

	// rN names the registers, so the result can not be rc.
	prog := "hit=" + cond.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "condition", prog, pred)
	if err != nil {
		err = ErrCondition{Expr: cond.Expr, Err: err}
		return
	}

	rc, ok := dict["hit"]
	if !ok {
		err = ErrCondition{Expr: cond.Expr, Err: ErrBreak}
		return
	}

	hit = bool(rc.Truth())
	return
}

// String returns the condition expression.
func (cond *Condition) String() string {
	return cond.Expr
}
