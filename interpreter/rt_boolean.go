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
	"devt.de/krotik/hanlang/parser"
)

// Boolean Operator Runtimes
// =========================

/*
andOpRuntime is the runtime component for the logical and operation. The
operation short-circuits and returns the determining operand.
*/
type andOpRuntime struct {
	*operatorRuntime
}

/*
andOpRuntimeInst returns a new runtime component instance.
*/
func andOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &andOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *andOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil || !truth(res) {

		// The first operand determines the result - the second operand
		// is never evaluated

		return res, err
	}

	return rt.node.Children[1].Runtime.Eval(vs)
}

/*
orOpRuntime is the runtime component for the logical or operation. The
operation short-circuits and returns the determining operand.
*/
type orOpRuntime struct {
	*operatorRuntime
}

/*
orOpRuntimeInst returns a new runtime component instance.
*/
func orOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &orOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *orOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil || truth(res) {
		return res, err
	}

	return rt.node.Children[1].Runtime.Eval(vs)
}

/*
notOpRuntime is the runtime component for the logical not operation. The
operand is negated using its truthiness.
*/
type notOpRuntime struct {
	*operatorRuntime
}

/*
notOpRuntimeInst returns a new runtime component instance.
*/
func notOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &notOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *notOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return !truth(res), nil
}

// Condition Operator Runtimes
// ===========================

/*
equalOpRuntime is the runtime component for the equality operation.
*/
type equalOpRuntime struct {
	*operatorRuntime
}

/*
equalOpRuntimeInst returns a new runtime component instance.
*/
func equalOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &equalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *equalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	return valuesEqual(res1, res2), nil
}

/*
notequalOpRuntime is the runtime component for the inequality operation.
*/
type notequalOpRuntime struct {
	*operatorRuntime
}

/*
notequalOpRuntimeInst returns a new runtime component instance.
*/
func notequalOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &notequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *notequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	return !valuesEqual(res1, res2), nil
}

/*
lessOpRuntime is the runtime component for the less than operation.
*/
type lessOpRuntime struct {
	*operatorRuntime
}

/*
lessOpRuntimeInst returns a new runtime component instance.
*/
func lessOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &lessOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *lessOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return rt.compareOp(
		func(n1 float64, n2 float64) bool { return n1 < n2 },
		func(s1 string, s2 string) bool { return s1 < s2 }, vs)
}

/*
lessequalOpRuntime is the runtime component for the less or equal operation.
*/
type lessequalOpRuntime struct {
	*operatorRuntime
}

/*
lessequalOpRuntimeInst returns a new runtime component instance.
*/
func lessequalOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &lessequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *lessequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return rt.compareOp(
		func(n1 float64, n2 float64) bool { return n1 <= n2 },
		func(s1 string, s2 string) bool { return s1 <= s2 }, vs)
}

/*
greaterOpRuntime is the runtime component for the greater than operation.
*/
type greaterOpRuntime struct {
	*operatorRuntime
}

/*
greaterOpRuntimeInst returns a new runtime component instance.
*/
func greaterOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &greaterOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *greaterOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return rt.compareOp(
		func(n1 float64, n2 float64) bool { return n1 > n2 },
		func(s1 string, s2 string) bool { return s1 > s2 }, vs)
}

/*
greaterequalOpRuntime is the runtime component for the greater or equal operation.
*/
type greaterequalOpRuntime struct {
	*operatorRuntime
}

/*
greaterequalOpRuntimeInst returns a new runtime component instance.
*/
func greaterequalOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &greaterequalOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *greaterequalOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return rt.compareOp(
		func(n1 float64, n2 float64) bool { return n1 >= n2 },
		func(s1 string, s2 string) bool { return s1 >= s2 }, vs)
}

// Ternary Operator Runtime
// ========================

/*
ternaryOpRuntime is the runtime component for the ternary operator. Only the
branch selected by the condition is evaluated.
*/
type ternaryOpRuntime struct {
	*operatorRuntime
}

/*
ternaryOpRuntimeInst returns a new runtime component instance.
*/
func ternaryOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &ternaryOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *ternaryOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	cond, err := rt.node.Children[0].Runtime.Eval(vs)

	if err != nil {
		return nil, err
	}

	if truth(cond) {
		return rt.node.Children[1].Runtime.Eval(vs)
	}

	return rt.node.Children[2].Runtime.Eval(vs)
}
