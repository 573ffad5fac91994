/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter contains the HanLang interpreter.
*/
package interpreter

import (
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/stdlib"
)

/*
HanLangInterpreter models a HanLang interpreter instance. An instance holds
a global scope which is populated with all built-in functions and constants
and which survives multiple Run calls.
*/
type HanLangInterpreter struct {
	RuntimeProvider *HanLangRuntimeProvider // Runtime provider of this interpreter
	GlobalVS        parser.Scope            // Global variable scope
}

/*
NewHanLangInterpreter creates a new HanLang interpreter. The output callback
is called once per print statement - the input callback is called
synchronously once per input expression.
*/
func NewHanLangInterpreter(outputCallback func(string),
	inputCallback func(string) string) *HanLangInterpreter {

	erp := NewHanLangRuntimeProvider("main", nil, outputCallback, inputCallback)

	vs := scope.NewScope(scope.GlobalScope)
	RegisterDefaults(vs)

	return &HanLangInterpreter{erp, vs}
}

/*
RegisterDefaults adds all inbuild and stdlib functions and the stdlib
constants to a given scope.
*/
func RegisterDefaults(vs parser.Scope) {

	for name, funcObj := range InbuildFuncMap {
		vs.SetLocalValue(name, funcObj)
	}

	funcs, consts := stdlib.GetStdlibSymbols()

	for _, name := range funcs {
		funcObj, _ := stdlib.GetStdlibFunc(name)
		vs.SetLocalValue(name, funcObj)
	}

	for _, name := range consts {
		constVal, _ := stdlib.GetStdlibConst(name)
		vs.SetLocalValue(name, constVal)
	}
}

/*
Run lexes, parses and executes a given program. On a lex or parse failure a
parser error with line and position information is returned. On a runtime
failure the error describes the kind and position of the fault. The global
scope is kept so subsequent calls can use previous definitions.
*/
func (hi *HanLangInterpreter) Run(source string) error {
	return hi.RunNamed(hi.RuntimeProvider.Name, source)
}

/*
RunNamed runs a given program under a given source name.
*/
func (hi *HanLangInterpreter) RunNamed(name string, source string) error {

	ast, err := parser.ParseWithRuntime(name, source, hi.RuntimeProvider)

	if err == nil {

		if err = ast.Runtime.Validate(); err == nil {
			_, err = ast.Runtime.Eval(hi.GlobalVS)
		}
	}

	return err
}
