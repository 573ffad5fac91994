/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"bytes"

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

// Statements Runtime
// ==================

/*
statementsRuntime is the runtime component for sequences of statements.
*/
type statementsRuntime struct {
	*baseRuntime
}

/*
statementsRuntimeInst returns a new runtime component instance.
*/
func statementsRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &statementsRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *statementsRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		for _, child := range rt.node.Children {
			if res, err = child.Runtime.Eval(vs); err != nil {
				return nil, err
			}
		}
	}

	return res, err
}

// Guard Runtime
// =============

/*
guardRuntime is the runtime for any guard condition (used in if, while, etc...).
*/
type guardRuntime struct {
	*baseRuntime
}

/*
guardRuntimeInst returns a new runtime component instance.
*/
func guardRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &guardRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *guardRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		var ret interface{}

		// Evaluate the condition

		ret, err = rt.node.Children[0].Runtime.Eval(vs)

		// Guard returns always a boolean

		res = truth(ret)
	}

	return res, err
}

// Condition statement
// ===================

/*
ifRuntime is the runtime for the if condition statement. The children are
guard / block pairs - elif and else clauses are further pairs where an else
guard is always true.
*/
type ifRuntime struct {
	*baseRuntime
}

/*
ifRuntimeInst returns a new runtime component instance.
*/
func ifRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &ifRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *ifRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {

		for offset := 0; offset < len(rt.node.Children); offset += 2 {
			var guardres interface{}

			// Evaluate guard

			guardres, err = rt.node.Children[offset].Runtime.Eval(vs)

			if err != nil {
				return nil, err
			}

			if guardres.(bool) {

				// The guard holds true so we execute its statements

				return rt.node.Children[offset+1].Runtime.Eval(vs)
			}
		}
	}

	return nil, err
}

// Loop statements
// ===============

/*
loopRuntime is the runtime for the counting loop statement. Start and end
values are evaluated once and truncated to integers - the end value is
inclusive. The loop variable lives in a new child scope and is not visible
after the loop.
*/
type loopRuntime struct {
	*baseRuntime
}

/*
loopRuntimeInst returns a new runtime component instance.
*/
func loopRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &loopRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *loopRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	varName := rt.node.Children[0].Token.Val

	startVal, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	endVal, err := rt.node.Children[2].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	start, ok := toInt(startVal)

	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrNotANumber,
			scope.EvalToRepr(startVal), rt.node.Children[1])
	}

	end, ok := toInt(endVal)

	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrNotANumber,
			scope.EvalToRepr(endVal), rt.node.Children[2])
	}

	body := rt.node.Children[3]

	// Create a new variable scope

	lvs := vs.NewChild(scope.NameFromASTNode(rt.node))

	for i := start; i <= end; i++ {

		lvs.SetLocalValue(varName, i)

		_, err = body.Runtime.Eval(lvs)

		if err != nil {
			if eoi, ok := err.(*util.RuntimeError); ok {

				if eoi.Type == util.ErrContinueIteration {
					err = nil
					continue
				}

				if eoi.Type == util.ErrBreakIteration {
					err = nil
				}
			}

			break
		}
	}

	return nil, err
}

/*
whileRuntime is the runtime for the while loop statement. The condition is
re-evaluated before each iteration - the body runs in the enclosing scope.
*/
type whileRuntime struct {
	*baseRuntime
}

/*
whileRuntimeInst returns a new runtime component instance.
*/
func whileRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &whileRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *whileRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	guard := rt.node.Children[0]
	body := rt.node.Children[1]

	for {
		var guardres interface{}

		if guardres, err = guard.Runtime.Eval(vs); err != nil || !guardres.(bool) {
			break
		}

		if _, err = body.Runtime.Eval(vs); err != nil {
			if eoi, ok := err.(*util.RuntimeError); ok {

				if eoi.Type == util.ErrContinueIteration {
					err = nil
					continue
				}

				if eoi.Type == util.ErrBreakIteration {
					err = nil
				}
			}

			break
		}
	}

	return nil, err
}

// Break statement
// ===============

/*
breakRuntime is the runtime for the break statement.
*/
type breakRuntime struct {
	*baseRuntime
}

/*
breakRuntimeInst returns a new runtime component instance.
*/
func breakRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &breakRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *breakRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrBreakIteration, "", rt.node)
	}

	return nil, err
}

// Continue statement
// ==================

/*
continueRuntime is the runtime for the continue statement.
*/
type continueRuntime struct {
	*baseRuntime
}

/*
continueRuntimeInst returns a new runtime component instance.
*/
func continueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &continueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *continueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrContinueIteration, "", rt.node)
	}

	return nil, err
}

// Throw statement
// ===============

/*
throwRuntime is the runtime for the throw statement. It raises a user
exception carrying an arbitrary guest value.
*/
type throwRuntime struct {
	*baseRuntime
}

/*
throwRuntimeInst returns a new runtime component instance.
*/
func throwRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &throwRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *throwRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	val, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return nil, util.NewUserException(rt.erp.Name, val, scope.EvalToString(val), rt.node)
}

// Try Runtime
// ===========

/*
tryRuntime is the runtime for try blocks. The catch block receives user
exceptions and runtime faults - non-local exits (return, break, continue)
pass through uncaught. A finally block runs on every exit path - if the
finally block itself raises or returns then that outcome wins.
*/
type tryRuntime struct {
	*baseRuntime
}

/*
tryRuntimeInst returns a new runtime component instance.
*/
func tryRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &tryRuntime{newBaseRuntime(erp, node)}
}

/*
isCatchable checks if a given error may be handled by a catch block.
*/
func isCatchable(err error) bool {

	if _, ok := err.(*util.UserException); ok {
		return true
	}

	if re, ok := err.(*util.RuntimeError); ok {
		return re.Type != util.ErrReturn &&
			re.Type != util.ErrBreakIteration &&
			re.Type != util.ErrContinueIteration
	}

	return false
}

/*
Eval evaluate this runtime component.
*/
func (rt *tryRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var catchNode, finallyNode *parser.ASTNode

	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	for _, c := range rt.node.Children[1:] {
		if c.Name == parser.NodeCATCH {
			catchNode = c
		} else if c.Name == parser.NodeFINALLY {
			finallyNode = c
		}
	}

	res, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil && catchNode != nil && isCatchable(err) {

		// Create a new scope for the catch block

		cvs := vs.NewChild(scope.NameFromASTNode(catchNode))

		if len(catchNode.Children) == 2 {
			catchVar := catchNode.Children[0].Token.Val

			if ue, ok := err.(*util.UserException); ok {
				cvs.SetLocalValue(catchVar, ue.Value)
			} else {
				cvs.SetLocalValue(catchVar, err.(*util.RuntimeError).Message())
			}
		}

		res = nil
		_, err = catchNode.Children[len(catchNode.Children)-1].Runtime.Eval(cvs)
	}

	if finallyNode != nil {

		// The finally block runs on every exit path - a non-local exit or
		// error from the block itself takes precedence

		if _, ferr := finallyNode.Children[0].Runtime.Eval(vs); ferr != nil {
			res = nil
			err = ferr
		}
	}

	return res, err
}

// Print statement
// ===============

/*
printRuntime is the runtime for the print statement. All arguments are
evaluated left to right, rendered with the canonical display rule, joined
with a single space and emitted as one line through the output callback.
*/
type printRuntime struct {
	*baseRuntime
}

/*
printRuntimeInst returns a new runtime component instance.
*/
func printRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &printRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *printRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var buf bytes.Buffer

	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	for i, c := range rt.node.Children {
		var val interface{}

		if val, err = c.Runtime.Eval(vs); err != nil {
			return nil, err
		}

		buf.WriteString(scope.EvalToString(val))

		if i < len(rt.node.Children)-1 {
			buf.WriteString(" ")
		}
	}

	rt.erp.Output(buf.String())

	return nil, nil
}

// Input expression
// ================

/*
inputRuntime is the runtime for the input expression. The optional prompt is
given to the input callback - the returned line is the result value.
*/
type inputRuntime struct {
	*baseRuntime
}

/*
inputRuntimeInst returns a new runtime component instance.
*/
func inputRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &inputRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *inputRuntime) Eval(vs parser.Scope) (interface{}, error) {
	prompt := ""

	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	if len(rt.node.Children) > 0 {
		var val interface{}

		if val, err = rt.node.Children[0].Runtime.Eval(vs); err != nil {
			return nil, err
		}

		prompt = scope.EvalToString(val)
	}

	return rt.erp.Input(prompt), nil
}
