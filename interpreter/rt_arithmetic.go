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
	"fmt"
	"math"

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

// Value operations
// ================

// The operations below implement the arithmetic value semantics. They are
// shared between the operator runtimes and compound assignments. Integer
// operands keep their integer representation - as soon as a float is
// involved the operation promotes to float.

/*
addVals adds two values. Numbers are added, strings and lists are concatenated.
*/
func addVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {

	if i1, ok := val1.(int64); ok {
		if i2, ok := val2.(int64); ok {
			return i1 + i2, nil, ""
		}
	}

	if n1, ok := toNumber(val1); ok {
		if n2, ok := toNumber(val2); ok {
			return n1 + n2, nil, ""
		}
	}

	if s1, ok := val1.(string); ok {
		if s2, ok := val2.(string); ok {
			return s1 + s2, nil, ""
		}
	}

	if l1, ok := val1.(*util.List); ok {
		if l2, ok := val2.(*util.List); ok {
			res := make([]interface{}, 0, l1.Len()+l2.Len())
			res = append(res, l1.Items()...)
			res = append(res, l2.Items()...)
			return util.NewListFromItems(res), nil, ""
		}
	}

	return nil, util.ErrRuntimeError, fmt.Sprintf("Cannot add %v and %v",
		scope.EvalToRepr(val1), scope.EvalToRepr(val2))
}

/*
numVals executes a numeric operation on two values.
*/
func numVals(intOp func(int64, int64) interface{},
	floatOp func(float64, float64) interface{},
	val1 interface{}, val2 interface{}) (interface{}, error, string) {

	if i1, ok := val1.(int64); ok {
		if i2, ok := val2.(int64); ok {
			return intOp(i1, i2), nil, ""
		}
	}

	n1, ok := toNumber(val1)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val1)
	}

	n2, ok := toNumber(val2)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val2)
	}

	return floatOp(n1, n2), nil, ""
}

/*
subVals subtracts two number values.
*/
func subVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {
	return numVals(
		func(i1 int64, i2 int64) interface{} { return i1 - i2 },
		func(n1 float64, n2 float64) interface{} { return n1 - n2 },
		val1, val2)
}

/*
mulVals multiplies two number values.
*/
func mulVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {
	return numVals(
		func(i1 int64, i2 int64) interface{} { return i1 * i2 },
		func(n1 float64, n2 float64) interface{} { return n1 * n2 },
		val1, val2)
}

/*
divVals divides two number values. The result is always a float - dividing
by zero is a runtime error.
*/
func divVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {

	n1, ok := toNumber(val1)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val1)
	}

	n2, ok := toNumber(val2)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val2)
	}

	if n2 == 0 {
		return nil, util.ErrDivisionByZero, "Cannot divide by zero"
	}

	return n1 / n2, nil, ""
}

/*
modVals calculates the remainder of two number values. The sign of the
result follows the divisor.
*/
func modVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {

	if i2, ok := val2.(int64); ok && i2 == 0 {
		return nil, util.ErrDivisionByZero, "Cannot calculate a remainder with zero"
	} else if n2, ok := toNumber(val2); ok && n2 == 0 {
		return nil, util.ErrDivisionByZero, "Cannot calculate a remainder with zero"
	}

	return numVals(
		func(i1 int64, i2 int64) interface{} {
			res := i1 % i2
			if res != 0 && (res < 0) != (i2 < 0) {
				res += i2
			}
			return res
		},
		func(n1 float64, n2 float64) interface{} {
			res := math.Mod(n1, n2)
			if res != 0 && (res < 0) != (n2 < 0) {
				res += n2
			}
			return res
		},
		val1, val2)
}

/*
powVals raises a number value to the power of another. The result is always
a float.
*/
func powVals(val1 interface{}, val2 interface{}) (interface{}, error, string) {

	n1, ok := toNumber(val1)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val1)
	}

	n2, ok := toNumber(val2)

	if !ok {
		return nil, util.ErrNotANumber, scope.EvalToRepr(val2)
	}

	return math.Pow(n1, n2), nil, ""
}

// Basic Arithmetic Operator Runtimes
// ==================================

type plusOpRuntime struct {
	*operatorRuntime
}

/*
plusOpRuntimeInst returns a new runtime component instance.
*/
func plusOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &plusOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *plusOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := addVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}

type minusOpRuntime struct {
	*operatorRuntime
}

/*
minusOpRuntimeInst returns a new runtime component instance.
*/
func minusOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &minusOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *minusOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	// Use as prefix

	if len(rt.node.Children) == 1 {
		return rt.numVal(
			func(i int64) interface{} { return -i },
			func(n float64) interface{} { return -n }, vs)
	}

	// Use as operation

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := subVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}

type timesOpRuntime struct {
	*operatorRuntime
}

/*
timesOpRuntimeInst returns a new runtime component instance.
*/
func timesOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &timesOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *timesOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := mulVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}

type divOpRuntime struct {
	*operatorRuntime
}

/*
divOpRuntimeInst returns a new runtime component instance.
*/
func divOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &divOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *divOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := divVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}

type modintOpRuntime struct {
	*operatorRuntime
}

/*
modintOpRuntimeInst returns a new runtime component instance.
*/
func modintOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &modintOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *modintOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := modVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}

type powOpRuntime struct {
	*operatorRuntime
}

/*
powOpRuntimeInst returns a new runtime component instance.
*/
func powOpRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &powOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluate this runtime component.
*/
func (rt *powOpRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	res, errType, detail := powVals(res1, res2)

	if errType != nil {
		return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
	}

	return res, nil
}
