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

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

// Base Runtime
// ============

/*
baseRuntime models a base runtime component which provides the essential fields and functions.
*/
type baseRuntime struct {
	instanceID string                  // Unique identifier (should be used when instance state is stored)
	erp        *HanLangRuntimeProvider // Runtime provider
	node       *parser.ASTNode         // AST node which this runtime component is servicing
	validated  bool
}

var instanceCounter uint64 // Global instance counter to create unique identifiers for every runtime component instance

/*
Validate this node and all its child nodes.
*/
func (rt *baseRuntime) Validate() error {
	rt.validated = true

	// Validate all children

	for _, child := range rt.node.Children {
		if err := child.Runtime.Validate(); err != nil {
			return err
		}
	}

	return nil
}

/*
Eval evaluate this runtime component.
*/
func (rt *baseRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var err error

	errorutil.AssertTrue(rt.validated, "Runtime component has not been validated - please call Validate() before Eval()")

	if rt.erp.Interrupt != nil && rt.erp.Interrupt() {
		err = rt.erp.NewRuntimeError(util.ErrInterrupted, "", rt.node)
	}

	return nil, err
}

/*
newBaseRuntime returns a new instance of baseRuntime.
*/
func newBaseRuntime(erp *HanLangRuntimeProvider, node *parser.ASTNode) *baseRuntime {
	instanceCounter++
	return &baseRuntime{fmt.Sprint(instanceCounter), erp, node, false}
}

// Void Runtime
// ============

/*
voidRuntime is a special runtime for constructs which are only evaluated as part
of other components.
*/
type voidRuntime struct {
	*baseRuntime
}

/*
voidRuntimeInst returns a new runtime component instance.
*/
func voidRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &voidRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *voidRuntime) Eval(vs parser.Scope) (interface{}, error) {
	return rt.baseRuntime.Eval(vs)
}

// Not Implemented Runtime
// =======================

/*
invalidRuntime is a special runtime for not implemented constructs.
*/
type invalidRuntime struct {
	*baseRuntime
}

/*
invalidRuntimeInst returns a new runtime component instance.
*/
func invalidRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &invalidRuntime{newBaseRuntime(erp, node)}
}

/*
Validate this node and all its child nodes.
*/
func (rt *invalidRuntime) Validate() error {
	err := rt.baseRuntime.Validate()
	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrInvalidConstruct,
			fmt.Sprintf("Unknown node: %s", rt.node.Name), rt.node)
	}
	return err
}

/*
Eval evaluate this runtime component.
*/
func (rt *invalidRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)
	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrInvalidConstruct, fmt.Sprintf("Unknown node: %s", rt.node.Name), rt.node)
	}
	return nil, err
}

// Value helpers
// =============

/*
truth returns the truthiness of a runtime value. Only the null value and the
boolean false are falsy - empty collections and zero are truthy.
*/
func truth(val interface{}) bool {
	return val != nil && val != false
}

/*
toNumber converts a numeric runtime value into a float. Returns false if the
value is not a number.
*/
func toNumber(val interface{}) (float64, bool) {

	switch n := val.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}

/*
toInt truncates a numeric runtime value towards zero. Returns false if the
value is not a number.
*/
func toInt(val interface{}) (int64, bool) {

	switch n := val.(type) {
	case int64:
		return n, true
	case float64:
		return int64(math.Trunc(n)), true
	}

	return 0, false
}

/*
valuesEqual checks two runtime values for structural equality. Numbers
compare by value regardless of their integer or float representation.
*/
func valuesEqual(val1 interface{}, val2 interface{}) bool {

	if n1, ok := toNumber(val1); ok {
		if n2, ok := toNumber(val2); ok {
			return n1 == n2
		}
		return false
	}

	if l1, ok := val1.(*util.List); ok {
		l2, ok := val2.(*util.List)

		if !ok || l1.Len() != l2.Len() {
			return false
		}

		for i := 0; i < l1.Len(); i++ {
			if !valuesEqual(l1.Get(i), l2.Get(i)) {
				return false
			}
		}

		return true
	}

	if d1, ok := val1.(*util.Dict); ok {
		d2, ok := val2.(*util.Dict)

		if !ok || d1.Len() != d2.Len() {
			return false
		}

		for _, k := range d1.Keys() {
			v1, _ := d1.Get(k)
			v2, found := d2.Get(k)

			if !found || !valuesEqual(v1, v2) {
				return false
			}
		}

		return true
	}

	if _, ok := val2.(*util.List); ok {
		return false
	} else if _, ok := val2.(*util.Dict); ok {
		return false
	}

	return val1 == val2
}

// General Operator Runtime
// ========================

/*
operatorRuntime is a general operator operation. Used for embedding.
*/
type operatorRuntime struct {
	*baseRuntime
}

/*
errorDetailString produces a detail string for errors.
*/
func (rt *operatorRuntime) errorDetailString(token *parser.LexToken, opVal interface{}) string {
	if !token.Identifier {
		return token.Val
	}

	return fmt.Sprintf("%v=%v", token.Val, scope.EvalToString(opVal))
}

/*
evalOperands evaluates the child nodes of a binary operator.
*/
func (rt *operatorRuntime) evalOperands(vs parser.Scope) (interface{}, interface{}, error) {

	errorutil.AssertTrue(len(rt.node.Children) == 2,
		fmt.Sprint("Operation requires 2 operands", rt.node))

	res1, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, nil, err
	}

	res2, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, nil, err
	}

	return res1, res2, nil
}

/*
numVal returns a transformed number value.
*/
func (rt *operatorRuntime) numVal(intOp func(int64) interface{},
	floatOp func(float64) interface{}, vs parser.Scope) (interface{}, error) {

	errorutil.AssertTrue(len(rt.node.Children) == 1,
		fmt.Sprint("Operation requires 1 operand", rt.node))

	res, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	if i, ok := res.(int64); ok {
		return intOp(i), nil
	}

	if f, ok := res.(float64); ok {
		return floatOp(f), nil
	}

	return nil, rt.erp.NewRuntimeError(util.ErrNotANumber,
		rt.errorDetailString(rt.node.Children[0].Token, res), rt.node.Children[0])
}

/*
compareOp executes an ordered comparison of two values. Numbers are ordered
numerically and strings lexicographically - ordering mixed types is a runtime
error.
*/
func (rt *operatorRuntime) compareOp(numOp func(float64, float64) bool,
	strOp func(string, string) bool, vs parser.Scope) (interface{}, error) {

	res1, res2, err := rt.evalOperands(vs)
	if err != nil {
		return nil, err
	}

	if n1, ok := toNumber(res1); ok {
		if n2, ok := toNumber(res2); ok {
			return numOp(n1, n2), nil
		}

		return nil, rt.erp.NewRuntimeError(util.ErrNotANumber,
			rt.errorDetailString(rt.node.Children[1].Token, res2), rt.node.Children[1])
	}

	if s1, ok := res1.(string); ok {
		if s2, ok := res2.(string); ok {
			return strOp(s1, s2), nil
		}
	}

	return nil, rt.erp.NewRuntimeError(util.ErrRuntimeError,
		fmt.Sprintf("Cannot order %v and %v", scope.EvalToRepr(res1),
			scope.EvalToRepr(res2)), rt.node)
}
