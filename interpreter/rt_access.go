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

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

// Index access runtime
// ====================

/*
indexRuntime is the runtime component for index access on lists, strings and maps.
*/
type indexRuntime struct {
	*baseRuntime
}

/*
indexRuntimeInst returns a new runtime component instance.
*/
func indexRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &indexRuntime{newBaseRuntime(erp, node)}
}

/*
evalTargetAndIndex evaluates the indexed object and the index expression.
*/
func (rt *indexRuntime) evalTargetAndIndex(vs parser.Scope) (interface{}, interface{}, error) {

	target, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, nil, err
	}

	index, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, nil, err
	}

	return target, index, nil
}

/*
listIndex converts an index value into a list offset and checks its bounds.
*/
func (rt *indexRuntime) listIndex(index interface{}, length int) (int, error) {

	i, ok := toInt(index)

	if !ok {
		return 0, rt.erp.NewRuntimeError(util.ErrNotANumber,
			fmt.Sprintf("Index must be a number not: %v", scope.EvalToRepr(index)),
			rt.node.Children[1])
	}

	if i < 0 || i >= int64(length) {
		return 0, rt.erp.NewRuntimeError(util.ErrOutOfBounds,
			fmt.Sprintf("Index %v is out of range", i), rt.node)
	}

	return int(i), nil
}

/*
Eval evaluate this runtime component.
*/
func (rt *indexRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	target, index, err := rt.evalTargetAndIndex(vs)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {

	case *util.List:
		var i int

		if i, err = rt.listIndex(index, t.Len()); err != nil {
			return nil, err
		}

		return t.Get(i), nil

	case string:
		var i int
		runes := []rune(t)

		if i, err = rt.listIndex(index, len(runes)); err != nil {
			return nil, err
		}

		return string(runes[i]), nil

	case *util.Dict:
		if _, kerr := util.NormalizeKey(index); kerr != nil {
			return nil, rt.erp.NewRuntimeError(util.ErrRuntimeError, kerr.Error(), rt.node)
		}

		val, ok := t.Get(index)

		if !ok {
			return nil, rt.erp.NewRuntimeError(util.ErrUnknownKey,
				fmt.Sprintf("Key %v does not exist", scope.EvalToRepr(index)), rt.node)
		}

		return val, nil
	}

	return nil, rt.erp.NewRuntimeError(util.ErrRuntimeError,
		fmt.Sprintf("Cannot index %v", scope.EvalToRepr(target)), rt.node)
}

/*
Set sets a value through this index access. Lists require an existing integer
index - map entries are created or updated.
*/
func (rt *indexRuntime) Set(vs parser.Scope, value interface{}) error {

	target, index, err := rt.evalTargetAndIndex(vs)
	if err != nil {
		return err
	}

	switch t := target.(type) {

	case *util.List:
		var i int

		if i, err = rt.listIndex(index, t.Len()); err != nil {
			return err
		}

		t.Set(i, value)

		return nil

	case *util.Dict:
		if serr := t.Set(index, value); serr != nil {
			return rt.erp.NewRuntimeError(util.ErrRuntimeError, serr.Error(), rt.node)
		}

		return nil
	}

	return rt.erp.NewRuntimeError(util.ErrRuntimeError,
		fmt.Sprintf("Cannot index assign to %v", scope.EvalToRepr(target)), rt.node)
}

// Attribute access runtime
// ========================

/*
attributeRuntime is the runtime component for attribute access on instances.
Field values take precedence over methods - methods are returned as bound
callables.
*/
type attributeRuntime struct {
	*baseRuntime
}

/*
attributeRuntimeInst returns a new runtime component instance.
*/
func attributeRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &attributeRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *attributeRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	target, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	attr := rt.node.Children[1].Token.Val

	if inst, ok := target.(*instance); ok {

		if val, ok := inst.fields[attr]; ok {
			return val, nil
		}

		if method, ok := inst.class.methods[attr]; ok {
			return &boundMethod{inst, method}, nil
		}

		return nil, rt.erp.NewRuntimeError(util.ErrUnknownAttribute,
			fmt.Sprintf("'%v' object has no attribute '%v'", inst.class.name, attr), rt.node)
	}

	return nil, rt.erp.NewRuntimeError(util.ErrUnknownAttribute,
		fmt.Sprintf("Value %v has no attributes", scope.EvalToRepr(target)), rt.node)
}

/*
Set sets a field value on an instance. Fields are created or updated.
*/
func (rt *attributeRuntime) Set(vs parser.Scope, value interface{}) error {

	target, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return err
	}

	if inst, ok := target.(*instance); ok {
		inst.fields[rt.node.Children[1].Token.Val] = value
		return nil
	}

	return rt.erp.NewRuntimeError(util.ErrRuntimeError,
		fmt.Sprintf("Cannot assign an attribute to %v", scope.EvalToRepr(target)), rt.node)
}
