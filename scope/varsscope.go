/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"devt.de/krotik/hanlang/parser"
)

/*
varsScope models a scope for variables in HanLang.
*/
type varsScope struct {
	name    string                 // Name of the scope
	parent  parser.Scope           // Parent scope
	storage map[string]interface{} // Storage for variables
	consts  map[string]bool        // Names which are constant in this scope
	lock    *sync.RWMutex          // Lock for this scope
}

/*
NewScope creates a new variable scope.
*/
func NewScope(name string) parser.Scope {
	return NewScopeWithParent(name, nil)
}

/*
NewScopeWithParent creates a new variable scope with a parent.
*/
func NewScopeWithParent(name string, parent parser.Scope) parser.Scope {
	res := &varsScope{name, nil, make(map[string]interface{}), make(map[string]bool), &sync.RWMutex{}}
	SetParentOfScope(res, parent)
	return res
}

/*
SetParentOfScope sets the parent of a given scope. This assumes that the given scope
is a varsScope.
*/
func SetParentOfScope(scope parser.Scope, parent parser.Scope) {
	if pvs, ok := parent.(*varsScope); ok {
		if vs, ok := scope.(*varsScope); ok {

			vs.lock.Lock()
			defer vs.lock.Unlock()
			pvs.lock.Lock()
			defer pvs.lock.Unlock()

			vs.parent = parent
			vs.lock = pvs.lock
		}
	}
}

/*
NewChild creates a new child scope for variables. Children are not tracked by
the parent scope - each call returns a fresh frame so e.g. every function call
and every loop run gets its own bindings.
*/
func (s *varsScope) NewChild(name string) parser.Scope {
	s.lock.Lock()
	defer s.lock.Unlock()

	child := &varsScope{name, s, make(map[string]interface{}), make(map[string]bool), s.lock}

	return child
}

/*
Name returns the name of this scope.
*/
func (s *varsScope) Name() string {
	return s.name
}

/*
Parent returns the parent scope or nil.
*/
func (s *varsScope) Parent() parser.Scope {
	return s.parent
}

/*
SetValue sets a new value for an existing variable. The variable is looked up
towards the root of the scope chain.
*/
func (s *varsScope) SetValue(varName string, varValue interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.setValue(varName, varValue)
}

/*
setValue sets a new value for an existing variable.
*/
func (s *varsScope) setValue(varName string, varValue interface{}) error {

	if vs := s.getScopeForVariable(varName); vs != nil {

		if vs.consts[varName] {
			return fmt.Errorf("Cannot reassign constant: %v", varName)
		}

		vs.storage[varName] = varValue

		return nil
	}

	return fmt.Errorf("Variable is not defined: %v", varName)
}

/*
SetLocalValue defines a variable in the local scope.
*/
func (s *varsScope) SetLocalValue(varName string, varValue interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.storage[varName] = varValue
	delete(s.consts, varName)

	return nil
}

/*
SetLocalConstValue defines a constant in the local scope.
*/
func (s *varsScope) SetLocalConstValue(varName string, varValue interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.storage[varName] = varValue
	s.consts[varName] = true

	return nil
}

/*
getScopeForVariable returns the scope (this or a parent scope) which holds a
given variable.
*/
func (s *varsScope) getScopeForVariable(varName string) *varsScope {

	_, ok := s.storage[varName]

	if ok {
		return s
	} else if s.parent != nil {
		return s.parent.(*varsScope).getScopeForVariable(varName)
	}

	return nil
}

/*
GetValue gets the current value of a variable.
*/
func (s *varsScope) GetValue(varName string) (interface{}, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if vs := s.getScopeForVariable(varName); vs != nil {
		return vs.storage[varName], true, nil
	}

	return nil, false, nil
}

/*
String returns a string representation of this varsScope and all its parents.
*/
func (s *varsScope) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.scopeStringParents("")
}

/*
ToJSONObject returns this scope as a JSON object.
*/
func (s *varsScope) ToJSONObject() map[string]interface{} {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ret := make(map[string]interface{})

	for k, v := range s.storage {
		var value interface{}

		value = fmt.Sprintf("ComplexDataStructure: %#v", v)

		bytes, err := json.Marshal(v)
		if err != nil {
			value = EvalToString(v)
		} else {
			json.Unmarshal(bytes, &value)
		}

		ret[k] = value
	}

	return ret
}

/*
scopeStringParents returns a string representation of this varsScope
and all its parents.
*/
func (s *varsScope) scopeStringParents(childrenString string) string {
	ss := s.scopeString(childrenString)

	if s.parent != nil {
		return s.parent.(*varsScope).scopeStringParents(ss)
	}

	return fmt.Sprint(ss)
}

/*
scopeString returns a string representation of this varsScope.
*/
func (s *varsScope) scopeString(childrenString string) string {
	buf := bytes.Buffer{}
	varList := []string{}

	buf.WriteString(fmt.Sprintf("%v {\n", s.name))

	for k := range s.storage {
		varList = append(varList, k)
	}

	sort.Strings(varList)

	for _, v := range varList {
		buf.WriteString(fmt.Sprintf("    %s (%T) : %v\n", v, s.storage[v],
			EvalToString(s.storage[v])))
	}

	if childrenString != "" {

		// Indent all

		buf.WriteString("    ")
		buf.WriteString(indentNewlines(childrenString))
		buf.WriteString("\n")
	}

	buf.WriteString("}")

	return buf.String()
}

/*
indentNewlines indents all lines of a given string by one indentation level.
*/
func indentNewlines(str string) string {
	var buf bytes.Buffer

	for _, r := range str {
		buf.WriteRune(r)
		if r == '\n' {
			buf.WriteString("    ")
		}
	}

	return buf.String()
}
