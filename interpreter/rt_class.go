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
	"encoding/json"
	"fmt"

	"devt.de/krotik/hanlang/parser"
)

/*
Special method and binding names for classes.
*/
const (

	// ConstructorName is the name of the method which is invoked when a
	// class is called

	ConstructorName = "생성"

	// SelfName is the name which is bound to the receiving instance in a
	// method body

	SelfName = "나"
)

/*
classRuntime is the runtime component for class declarations. The function
declarations of the class body become the methods of the class - all other
statements in the body are ignored.
*/
type classRuntime struct {
	*baseRuntime
}

/*
classRuntimeInst returns a new runtime component instance.
*/
func classRuntimeInst(erp *HanLangRuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &classRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluate this runtime component.
*/
func (rt *classRuntime) Eval(vs parser.Scope) (interface{}, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	name := rt.node.Children[0].Token.Val
	methods := make(map[string]*function)

	for _, child := range rt.node.Children[1].Children {

		if child.Name == parser.NodeFUNC {
			methodName := child.Children[0].Token.Val
			methods[methodName] = &function{methodName, child, vs}
		}
	}

	cls := &class{name, methods}

	vs.SetLocalValue(name, cls)

	return cls, nil
}

/*
class models a user-defined class in HanLang. A class holds a mapping from
method names to functions.
*/
type class struct {
	name    string
	methods map[string]*function
}

/*
String returns a string representation of this class.
*/
func (c *class) String() string {
	return fmt.Sprintf("<클래스 %v>", c.name)
}

/*
MarshalJSON returns a string representation of this class - a class cannot
be JSON encoded.
*/
func (c *class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

/*
instance models an instance of a user-defined class. Instances hold a
mutable mapping from field names to values.
*/
type instance struct {
	class  *class
	fields map[string]interface{}
}

/*
String returns a string representation of this instance.
*/
func (i *instance) String() string {
	return fmt.Sprintf("<%v 인스턴스>", i.class.name)
}

/*
MarshalJSON returns a string representation of this instance - an instance
cannot be JSON encoded.
*/
func (i *instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

/*
boundMethod models a method which was looked up on an instance. Calling it
runs the method with the instance bound as the receiver.
*/
type boundMethod struct {
	object *instance
	method *function
}

/*
String returns a string representation of this bound method.
*/
func (bm *boundMethod) String() string {
	return fmt.Sprintf("<메서드 %v.%v>", bm.object.class.name, bm.method.name)
}

/*
MarshalJSON returns a string representation of this bound method - a bound
method cannot be JSON encoded.
*/
func (bm *boundMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(bm.String())
}
