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
	"encoding/json"
	"fmt"

	"devt.de/krotik/hanlang/config"
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

/*
returnRuntime is a special runtime for return statements in functions.
*/
type returnRuntime struct {
	*baseRuntime
}

/*
returnRuntimeInst returns a new runtime component instance.
*/
func returnRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &returnRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *returnRuntime) Eval(vs parser.Scope) (interface{}, error) {
	var res interface{}

	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	if len(rt.node.Children) > 0 {
		if res, err = rt.node.Children[0].Runtime.Eval(vs); err != nil {
			return nil, err
		}
	}

	rerr := rt.erp.NewRuntimeError(util.ErrReturn,
		fmt.Sprintf("Return value: %v", scope.EvalToString(res)), rt.node)

	return nil, &returnValue{
		rerr.(*util.RuntimeError),
		res,
	}
}

/*
returnValue is the non-local exit which is raised by a return statement. It
is deliberately not catchable by try blocks.
*/
type returnValue struct {
	*util.RuntimeError
	returnValue interface{}
}

/*
funcRuntime is the runtime component for function declarations.
*/
type funcRuntime struct {
	*baseRuntime
}

/*
funcRuntimeInst returns a new runtime component instance.
*/
func funcRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &funcRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *funcRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	name := rt.node.Children[0].Token.Val

	fc := &function{name, rt.node, vs}

	vs.SetLocalValue(name, fc)

	return fc, nil
}

/*
function models a user-defined function in HanLang. A function captures the
scope in which it was declared.
*/
type function struct {
	name          string
	declaration   *parser.ASTNode // Function declaration node
	declarationVS parser.Scope    // Function declaration scope
}

/*
String returns a string representation of this function.
*/
func (f *function) String() string {
	return fmt.Sprintf("<함수 %v>", f.name)
}

/*
MarshalJSON returns a string representation of this function - a function
cannot be JSON encoded.
*/
func (f *function) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

/*
lambdaRuntime is the runtime component for lambda expressions.
*/
type lambdaRuntime struct {
	*baseRuntime
}

/*
lambdaRuntimeInst returns a new runtime component instance.
*/
func lambdaRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &lambdaRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *lambdaRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	return &lambda{rt.node, vs}, nil
}

/*
lambda models a lambda expression value in HanLang. The body is a single
expression which is evaluated on call.
*/
type lambda struct {
	declaration   *parser.ASTNode // Lambda expression node
	declarationVS parser.Scope    // Lambda declaration scope
}

/*
String returns a string representation of this lambda.
*/
func (l *lambda) String() string {
	var buf bytes.Buffer

	for i, p := range l.declaration.Children[0].Children {
		buf.WriteString(p.Token.Val)
		if i < len(l.declaration.Children[0].Children)-1 {
			buf.WriteString(", ")
		}
	}

	return fmt.Sprintf("<람다 (%v)>", buf.String())
}

/*
MarshalJSON returns a string representation of this lambda - a lambda cannot
be JSON encoded.
*/
func (l *lambda) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

/*
funcCallRuntime is the runtime component for function calls. The called
object must be a function, a lambda, a bound method, a class or a built-in
function.
*/
type funcCallRuntime struct {
	*baseRuntime
}

/*
funcCallRuntimeInst returns a new runtime component instance.
*/
func funcCallRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &funcCallRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *funcCallRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	callee, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(rt.node.Children)-1)

	for _, c := range rt.node.Children[1:] {
		var val interface{}

		if val, err = c.Runtime.Eval(vs); err != nil {
			return nil, err
		}

		args = append(args, val)
	}

	switch f := callee.(type) {

	case *function:
		return rt.callFunction(f, nil, args)

	case *lambda:
		return rt.callLambda(f, args)

	case *boundMethod:
		return rt.callFunction(f.method, f.object, args)

	case *class:
		return rt.newInstance(f, args)

	case util.Function:
		var res interface{}

		if res, err = f.Run(vs, args); err != nil {

			// Convert into a proper runtime error if necessary

			if _, ok := err.(*util.RuntimeError); !ok {
				err = rt.erp.NewRuntimeError(util.ErrRuntimeError, err.Error(), rt.node)
			}

			if te, ok := err.(util.TraceableRuntimeError); ok {
				te.AddTrace(rt.node)
			}

			return nil, err
		}

		return res, nil
	}

	return nil, rt.erp.NewRuntimeError(util.ErrNotCallable,
		fmt.Sprintf("Cannot call %v", scope.EvalToRepr(callee)), rt.node)
}

/*
enterCall checks and increases the call depth of the running interpretation.
*/
func (rt *funcCallRuntime) enterCall() error {

	rt.erp.callDepth++

	if rt.erp.callDepth > config.Int(config.MaxCallDepth) {
		return rt.erp.NewRuntimeError(util.ErrMaxCallDepth, "", rt.node)
	}

	return nil
}

/*
callFunction executes a user-defined function. If an instance object is given
then the function runs as a method on it.
*/
func (rt *funcCallRuntime) callFunction(f *function, this *instance, args []interface{}) (interface{}, error) {

	if err := rt.enterCall(); err != nil {
		return nil, err
	}
	defer func() {
		rt.erp.callDepth--
	}()

	params := f.declaration.Children[1].Children
	body := f.declaration.Children[2]

	if len(args) != len(params) {
		return nil, rt.erp.NewRuntimeError(util.ErrInvalidArguments,
			fmt.Sprintf("Function '%v' requires %v arguments but %v were given",
				f.name, len(params), len(args)), rt.node)
	}

	// Create the scope for the body - a child of the declaration scope
	// not of the caller's scope

	fvs := scope.NewScopeWithParent(fmt.Sprintf("%v %v", scope.FuncPrefix, f.name), f.declarationVS)

	if this != nil {
		fvs.SetLocalValue(SelfName, this)
	}

	for i, p := range params {
		fvs.SetLocalValue(p.Token.Val, args[i])
	}

	_, err := body.Runtime.Eval(fvs)

	// Check for the return value (delivered as an error object) - falling
	// off the end of the body returns the null value

	if rval, ok := err.(*returnValue); ok {
		return rval.returnValue, nil
	}

	return nil, err
}

/*
callLambda executes a lambda expression.
*/
func (rt *funcCallRuntime) callLambda(l *lambda, args []interface{}) (interface{}, error) {

	if err := rt.enterCall(); err != nil {
		return nil, err
	}
	defer func() {
		rt.erp.callDepth--
	}()

	params := l.declaration.Children[0].Children
	body := l.declaration.Children[1]

	if len(args) != len(params) {
		return nil, rt.erp.NewRuntimeError(util.ErrInvalidArguments,
			fmt.Sprintf("Lambda requires %v arguments but %v were given",
				len(params), len(args)), rt.node)
	}

	lvs := scope.NewScopeWithParent(fmt.Sprintf("%v %v", scope.FuncPrefix, "lambda"), l.declarationVS)

	for i, p := range params {
		lvs.SetLocalValue(p.Token.Val, args[i])
	}

	return body.Runtime.Eval(lvs)
}

/*
newInstance constructs a new instance of a class. If the class has a
constructor method then it is invoked on the new instance - its return value
is discarded.
*/
func (rt *funcCallRuntime) newInstance(c *class, args []interface{}) (interface{}, error) {

	inst := &instance{c, make(map[string]interface{})}

	if constructor, ok := c.methods[ConstructorName]; ok {

		if _, err := rt.callFunction(constructor, inst, args); err != nil {
			return nil, err
		}
	}

	return inst, nil
}
