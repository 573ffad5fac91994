/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package stdlib

import (
	"fmt"
	"reflect"

	"devt.de/krotik/hanlang/parser"
)

/*
FunctionAdapter models a bridge adapter between a HanLang function and a Go function.
*/
type FunctionAdapter struct {
	funcval   reflect.Value
	docstring string
}

/*
NewFunctionAdapter creates a new FunctionAdapter.
*/
func NewFunctionAdapter(funcval reflect.Value, docstring string) *FunctionAdapter {
	return &FunctionAdapter{funcval, docstring}
}

/*
Run executes this function.
*/
func (fa *FunctionAdapter) Run(vs parser.Scope, args []interface{}) (ret interface{}, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Error: %v", r)
		}
	}()

	funcType := fa.funcval.Type()

	if len(args) != funcType.NumIn() {
		return nil, fmt.Errorf("Function requires %v parameters - got %v",
			funcType.NumIn(), len(args))
	}

	// Build arguments

	fargs := make([]reflect.Value, 0, len(args))
	for i, arg := range args {

		expectedType := funcType.In(i)

		// Try to convert number types into the expected form

		var numArg float64
		var isNum bool

		if int64Arg, ok := arg.(int64); ok {
			numArg = float64(int64Arg)
			isNum = true
		} else if float64Arg, ok := arg.(float64); ok {
			numArg = float64Arg
			isNum = true
		}

		if isNum {
			switch expectedType.Kind() {
			case reflect.Int:
				arg = int(numArg)
			case reflect.Int8:
				arg = int8(numArg)
			case reflect.Int16:
				arg = int16(numArg)
			case reflect.Int32:
				arg = int32(numArg)
			case reflect.Int64:
				arg = int64(numArg)
			case reflect.Uint:
				arg = uint(numArg)
			case reflect.Uint8:
				arg = uint8(numArg)
			case reflect.Uint16:
				arg = uint16(numArg)
			case reflect.Uint32:
				arg = uint32(numArg)
			case reflect.Uint64:
				arg = uint64(numArg)
			case reflect.Float32:
				arg = float32(numArg)
			case reflect.Float64:
				arg = numArg
			}
		}

		givenType := reflect.TypeOf(arg)

		// Check that the right types were given

		if givenType != expectedType &&
			expectedType != reflect.TypeOf([]interface{}{}) &&
			expectedType.Kind() != reflect.Interface {

			return nil, fmt.Errorf("Parameter %v should be of type %v but is of type %v",
				i+1, expectedType, givenType)
		}

		fargs = append(fargs, reflect.ValueOf(arg))
	}

	// Call the function

	vals := fa.funcval.Call(fargs)

	// Convert result values

	results := make([]interface{}, 0, len(vals))

	for i, v := range vals {

		if i == len(vals)-1 && funcType.Out(i) == reflect.TypeOf((*error)(nil)).Elem() {

			// The last return value may be an error

			if !v.IsNil() {
				return nil, v.Interface().(error)
			}

			continue
		}

		results = append(results, normalizeResult(v.Interface()))
	}

	if len(results) == 0 {
		return nil, nil
	} else if len(results) == 1 {
		return results[0], nil
	}

	return results, nil
}

/*
DocString returns the docstring of the wrapped function.
*/
func (fa *FunctionAdapter) DocString() (string, error) {
	return fa.docstring, nil
}

/*
normalizeResult converts a Go return value into a HanLang runtime value.
*/
func normalizeResult(res interface{}) interface{} {

	switch r := res.(type) {
	case int:
		return int64(r)
	case int8:
		return int64(r)
	case int16:
		return int64(r)
	case int32:
		return int64(r)
	case uint:
		return int64(r)
	case uint8:
		return int64(r)
	case uint16:
		return int64(r)
	case uint32:
		return int64(r)
	case uint64:
		return int64(r)
	case float32:
		return float64(r)
	}

	return res
}
