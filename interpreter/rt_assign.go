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
	"devt.de/krotik/hanlang/util"
)

/*
varDeclRuntime is the runtime component for variable and constant declarations.
*/
type varDeclRuntime struct {
	*baseRuntime
}

/*
varDeclRuntimeInst returns a new runtime component instance.
*/
func varDeclRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &varDeclRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *varDeclRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var val interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	if len(rt.node.Children) > 1 {

		if val, err = rt.node.Children[1].Runtime.Eval(vs); err != nil {
			return nil, err
		}
	}

	name := rt.node.Children[0].Token.Val

	if rt.node.Name == parser.NodeCONST {
		vs.SetLocalConstValue(name, val)
	} else {
		vs.SetLocalValue(name, val)
	}

	return nil, nil
}

/*
settable is a runtime component which can be used as an assignment target.
*/
type settable interface {

	/*
		Set sets a value through this runtime component.
	*/
	Set(vs parser.Scope, value interface{}) error
}

/*
assignmentRuntime is the runtime component for assignment of values. It
covers plain assignments and the compound arithmetic assignments.
*/
type assignmentRuntime struct {
	*baseRuntime
	target settable
}

/*
assignmentRuntimeInst returns a new runtime component instance.
*/
func assignmentRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &assignmentRuntime{newBaseRuntime(erp, node), nil}
}

/*
Validate this node and all its child nodes.
*/
func (rt *assignmentRuntime) Validate() error {
	err := rt.baseRuntime.Validate()

	if err == nil {

		target, ok := rt.node.Children[0].Runtime.(settable)

		if !ok {
			return rt.erp.NewRuntimeError(util.ErrVarAccess,
				"Must have a variable, index access or attribute access "+
					"on the left side of the assignment", rt.node)
		}

		rt.target = target
	}

	return err
}

/*
Eval evaluate this runtime component.
*/
func (rt *assignmentRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	val, err := rt.node.Children[1].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	if rt.node.Name != parser.NodeASSIGN {

		// Compound assignments read the current value and apply the
		// corresponding arithmetic operation

		var cur interface{}
		var errType error
		var detail string

		if cur, err = rt.node.Children[0].Runtime.Eval(vs); err != nil {
			return nil, err
		}

		switch rt.node.Name {
		case parser.NodePLUSASSIGN:
			val, errType, detail = addVals(cur, val)
		case parser.NodeMINUSASSIGN:
			val, errType, detail = subVals(cur, val)
		case parser.NodeTIMESASSIGN:
			val, errType, detail = mulVals(cur, val)
		case parser.NodeDIVASSIGN:
			val, errType, detail = divVals(cur, val)
		}

		if errType != nil {
			return nil, rt.erp.NewRuntimeError(errType, detail, rt.node)
		}
	}

	return nil, rt.target.Set(vs, val)
}
