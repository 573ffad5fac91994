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
	"devt.de/krotik/hanlang/util"
)

/*
identifierRuntime is the runtime component for identifiers.
*/
type identifierRuntime struct {
	*baseRuntime
}

/*
identifierRuntimeInst returns a new runtime component instance.
*/
func identifierRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &identifierRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *identifierRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, ok, _ := vs.GetValue(rt.node.Token.Val)

	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrVarAccess,
			fmt.Sprintf("Variable is not defined: %v", rt.node.Token.Val), rt.node)
	}

	return res, nil
}

/*
Set sets a value to the variable which this identifier refers to.
*/
func (rt *identifierRuntime) Set(vs parser.Scope, value interface{}) error {

	if err := vs.SetValue(rt.node.Token.Val, value); err != nil {
		return rt.erp.NewRuntimeError(util.ErrVarAccess, err.Error(), rt.node)
	}

	return nil
}
