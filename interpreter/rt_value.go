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
	"strconv"

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/util"
)

/*
numberValueRuntime is the runtime component for constant numeric values. An
integer literal produces an integer value and a literal containing a decimal
point produces a float value.
*/
type numberValueRuntime struct {
	*baseRuntime
	numValue interface{} // Numeric value
}

/*
numberValueRuntimeInst returns a new runtime component instance.
*/
func numberValueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &numberValueRuntime{newBaseRuntime(erp, node), nil}
}

/*
Validate this node and all its child nodes.
*/
func (rt *numberValueRuntime) Validate() error {
	err := rt.baseRuntime.Validate()

	if err == nil {
		if rt.node.Name == parser.NodeINTEGER {
			var i int64

			if i, err = strconv.ParseInt(rt.node.Token.Val, 10, 64); err == nil {
				rt.numValue = i
			}

		} else {
			var f float64

			if f, err = strconv.ParseFloat(rt.node.Token.Val, 64); err == nil {
				rt.numValue = f
			}
		}
	}

	return err
}

/*
Eval evaluate this runtime component.
*/
func (rt *numberValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return rt.numValue, err
}

/*
stringValueRuntime is the runtime component for constant string values. All
escape sequences have already been interpreted by the lexer.
*/
type stringValueRuntime struct {
	*baseRuntime
}

/*
stringValueRuntimeInst returns a new runtime component instance.
*/
func stringValueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &stringValueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *stringValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return rt.node.Token.Val, err
}

/*
trueRuntime is the runtime component for the true constant.
*/
type trueRuntime struct {
	*baseRuntime
}

/*
trueRuntimeInst returns a new runtime component instance.
*/
func trueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &trueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *trueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return true, err
}

/*
falseRuntime is the runtime component for the false constant.
*/
type falseRuntime struct {
	*baseRuntime
}

/*
falseRuntimeInst returns a new runtime component instance.
*/
func falseRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &falseRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *falseRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return false, err
}

/*
nullRuntime is the runtime component for the null constant.
*/
type nullRuntime struct {
	*baseRuntime
}

/*
nullRuntimeInst returns a new runtime component instance.
*/
func nullRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &nullRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *nullRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return nil, err
}

/*
listValueRuntime is the runtime component for list values.
*/
type listValueRuntime struct {
	*baseRuntime
}

/*
listValueRuntimeInst returns a new runtime component instance.
*/
func listValueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &listValueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *listValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	l := util.NewList()

	if err == nil {
		for _, item := range rt.node.Children {
			if err == nil {
				var val interface{}

				if val, err = item.Runtime.Eval(vs); err == nil {
					l.Append(val)
				}
			}
		}
	}

	if err != nil {
		return nil, err
	}

	return l, err
}

/*
mapValueRuntime is the runtime component for map values. Insertion order of
the keys is preserved - a duplicate key updates the value in place.
*/
type mapValueRuntime struct {
	*baseRuntime
}

/*
mapValueRuntimeInst returns a new runtime component instance.
*/
func mapValueRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &mapValueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *mapValueRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	m := util.NewDict()

	if err == nil {
		for _, kvp := range rt.node.Children {
			var key, val interface{}

			if err == nil {
				if key, err = kvp.Children[0].Runtime.Eval(vs); err == nil {
					if val, err = kvp.Children[1].Runtime.Eval(vs); err == nil {

						if serr := m.Set(key, val); serr != nil {
							err = rt.erp.NewRuntimeError(util.ErrRuntimeError,
								serr.Error(), kvp.Children[0])
						}
					}
				}
			}
		}
	}

	if err != nil {
		return nil, err
	}

	return m, err
}
