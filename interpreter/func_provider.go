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
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/util"
)

/*
InbuildFuncMap contains the mapping of inbuild functions.
*/
var InbuildFuncMap = map[string]util.Function{

	// Core functions

	"길이":    &lenFunc{&inbuildBaseFunc{}},
	"정수변환":  &toIntFunc{&inbuildBaseFunc{}},
	"실수변환":  &toFloatFunc{&inbuildBaseFunc{}},
	"문자열변환": &toStringFunc{&inbuildBaseFunc{}},
	"타입":    &typeFunc{&inbuildBaseFunc{}},
	"범위":    &rangeFunc{&inbuildBaseFunc{}},
	"절대값":   &absFunc{&inbuildBaseFunc{}},
	"최대값":   &maxFunc{&inbuildBaseFunc{}},
	"최소값":   &minFunc{&inbuildBaseFunc{}},
	"합계":    &sumFunc{&inbuildBaseFunc{}},
	"정렬":    &sortFunc{&inbuildBaseFunc{}},
	"뒤집기":   &reverseFunc{&inbuildBaseFunc{}},
	"포함":    &containsFunc{&inbuildBaseFunc{}},

	// List functions

	"추가":  &appendFunc{&inbuildBaseFunc{}},
	"제거":  &removeFunc{&inbuildBaseFunc{}},
	"삽입":  &insertFunc{&inbuildBaseFunc{}},
	"빼기":  &popFunc{&inbuildBaseFunc{}},
	"인덱스": &indexOfFunc{&inbuildBaseFunc{}},
	"개수":  &countFunc{&inbuildBaseFunc{}},
	"복사":  &copyFunc{&inbuildBaseFunc{}},
	"비우기": &clearFunc{&inbuildBaseFunc{}},

	// Dictionary functions

	"키값들":  &keysFunc{&inbuildBaseFunc{}},
	"값들":   &valuesFunc{&inbuildBaseFunc{}},
	"항목들":  &itemsFunc{&inbuildBaseFunc{}},
	"딕셔너리": &newDictFunc{&inbuildBaseFunc{}},

	// Math functions with optional arguments

	"반올림": &roundFunc{&inbuildBaseFunc{}},
	"로그":  &logFunc{&inbuildBaseFunc{}},
	"랜덤":  &randomFunc{&inbuildBaseFunc{}},
	"랜덤정수": &randintFunc{&inbuildBaseFunc{}},

	// String functions with optional arguments

	"분리":     &splitFunc{&inbuildBaseFunc{}},
	"결합":     &joinFunc{&inbuildBaseFunc{}},
	"찾기":     &findFunc{&inbuildBaseFunc{}},
	"자르기":    &sliceFunc{&inbuildBaseFunc{}},
	"채우기":    &centerFunc{&inbuildBaseFunc{}},
	"왼쪽채우기":  &ljustFunc{&inbuildBaseFunc{}},
	"오른쪽채우기": &rjustFunc{&inbuildBaseFunc{}},
}

/*
inbuildBaseFunc is the base structure for inbuild functions providing some
utility functions.
*/
type inbuildBaseFunc struct {
}

/*
AssertNumParam converts a general interface{} parameter into a float number.
*/
func (ibf *inbuildBaseFunc) AssertNumParam(index int, val interface{}) (float64, error) {

	if n, ok := toNumber(val); ok {
		return n, nil
	}

	return 0, fmt.Errorf("Parameter %v should be a number", index)
}

/*
AssertIntParam converts a general interface{} parameter into an integer number.
*/
func (ibf *inbuildBaseFunc) AssertIntParam(index int, val interface{}) (int64, error) {

	if i, ok := toInt(val); ok {
		return i, nil
	}

	return 0, fmt.Errorf("Parameter %v should be a number", index)
}

/*
AssertStringParam converts a general interface{} parameter into a string.
*/
func (ibf *inbuildBaseFunc) AssertStringParam(index int, val interface{}) (string, error) {

	if s, ok := val.(string); ok {
		return s, nil
	}

	return "", fmt.Errorf("Parameter %v should be a string", index)
}

/*
AssertListParam converts a general interface{} parameter into a list.
*/
func (ibf *inbuildBaseFunc) AssertListParam(index int, val interface{}) (*util.List, error) {

	if l, ok := val.(*util.List); ok {
		return l, nil
	}

	return nil, fmt.Errorf("Parameter %v should be a list", index)
}

/*
AssertMapParam converts a general interface{} parameter into a map.
*/
func (ibf *inbuildBaseFunc) AssertMapParam(index int, val interface{}) (*util.Dict, error) {

	if d, ok := val.(*util.Dict); ok {
		return d, nil
	}

	return nil, fmt.Errorf("Parameter %v should be a map", index)
}

/*
AssertArgCount checks the number of given arguments.
*/
func (ibf *inbuildBaseFunc) AssertArgCount(args []interface{}, min int, max int) error {

	if len(args) < min || len(args) > max {
		if min == max {
			return fmt.Errorf("Function requires %v parameters - got %v", min, len(args))
		}
		return fmt.Errorf("Function requires %v to %v parameters - got %v", min, max, len(args))
	}

	return nil
}

// Len
// ===

/*
lenFunc returns the length of a string, list or map.
*/
type lenFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *lenFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case string:
		return int64(utf8.RuneCountInString(v)), nil
	case *util.List:
		return int64(v.Len()), nil
	case *util.Dict:
		return int64(v.Len()), nil
	}

	return nil, fmt.Errorf("Parameter 1 should be a string, a list or a map")
}

/*
DocString returns a descriptive string.
*/
func (f *lenFunc) DocString() (string, error) {
	return "Returns the length of a string, list or map.", nil
}

// Type conversions
// ================

/*
toIntFunc converts a value into an integer number.
*/
type toIntFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *toIntFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(math.Trunc(v)), nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i, nil
		}
	}

	return nil, fmt.Errorf("Cannot convert %v to an integer", scope.EvalToRepr(args[0]))
}

/*
DocString returns a descriptive string.
*/
func (f *toIntFunc) DocString() (string, error) {
	return "Converts a value into an integer number.", nil
}

/*
toFloatFunc converts a value into a float number.
*/
type toFloatFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *toFloatFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n, nil
		}
	}

	return nil, fmt.Errorf("Cannot convert %v to a float", scope.EvalToRepr(args[0]))
}

/*
DocString returns a descriptive string.
*/
func (f *toFloatFunc) DocString() (string, error) {
	return "Converts a value into a float number.", nil
}

/*
toStringFunc converts a value into a string using the canonical display rule.
*/
type toStringFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *toStringFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	return scope.EvalToString(args[0]), nil
}

/*
DocString returns a descriptive string.
*/
func (f *toStringFunc) DocString() (string, error) {
	return "Converts a value into a string.", nil
}

/*
typeFunc returns the type name of a value.
*/
type typeFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *typeFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch args[0].(type) {
	case nil:
		return "없음", nil
	case bool:
		return "참거짓", nil
	case int64:
		return "정수", nil
	case float64:
		return "실수", nil
	case string:
		return "문자열", nil
	case *util.List:
		return "리스트", nil
	case *util.Dict:
		return "딕셔너리", nil
	case *function:
		return "함수", nil
	case *lambda:
		return "람다", nil
	case *class:
		return "클래스", nil
	case *instance:
		return "인스턴스", nil
	case *boundMethod:
		return "메서드", nil
	case util.Function:
		return "내장함수", nil
	}

	return fmt.Sprintf("%T", args[0]), nil
}

/*
DocString returns a descriptive string.
*/
func (f *typeFunc) DocString() (string, error) {
	return "Returns the type name of a value.", nil
}

// Range
// =====

/*
rangeFunc returns a list of numbers. The stop value is exclusive.
*/
type rangeFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *rangeFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {
	var start, stop int64
	var step int64 = 1

	if err := f.AssertArgCount(args, 1, 3); err != nil {
		return nil, err
	}

	stop, err := f.AssertIntParam(1, args[0])
	if err != nil {
		return nil, err
	}

	if len(args) > 1 {
		start = stop

		if stop, err = f.AssertIntParam(2, args[1]); err != nil {
			return nil, err
		}
	}

	if len(args) > 2 {
		if step, err = f.AssertIntParam(3, args[2]); err != nil {
			return nil, err
		}

		if step == 0 {
			return nil, fmt.Errorf("Step value must not be zero")
		}
	}

	ret := util.NewList()

	if step > 0 {
		for i := start; i < stop; i += step {
			ret.Append(i)
		}
	} else {
		for i := start; i > stop; i += step {
			ret.Append(i)
		}
	}

	return ret, nil
}

/*
DocString returns a descriptive string.
*/
func (f *rangeFunc) DocString() (string, error) {
	return "Returns a list of numbers from start (inclusive) to stop (exclusive).", nil
}

// Numeric functions
// =================

/*
absFunc returns the absolute value of a number.
*/
type absFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *absFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	if i, ok := args[0].(int64); ok {
		if i < 0 {
			return -i, nil
		}
		return i, nil
	}

	n, err := f.AssertNumParam(1, args[0])
	if err != nil {
		return nil, err
	}

	return math.Abs(n), nil
}

/*
DocString returns a descriptive string.
*/
func (f *absFunc) DocString() (string, error) {
	return "Returns the absolute value of a number.", nil
}

/*
pickValue selects an extreme value from a list of candidates. Candidates must
be either all numbers or all strings.
*/
func pickValue(candidates []interface{}, pickFirst func(interface{}, interface{}) (bool, error)) (interface{}, error) {

	if len(candidates) == 0 {
		return nil, fmt.Errorf("Cannot pick a value from an empty list")
	}

	best := candidates[0]

	for _, c := range candidates[1:] {
		pick, err := pickFirst(c, best)

		if err != nil {
			return nil, err
		}

		if pick {
			best = c
		}
	}

	return best, nil
}

/*
compareValues orders two values. Numbers are ordered numerically and strings
lexicographically.
*/
func compareValues(val1 interface{}, val2 interface{}) (int, error) {

	if n1, ok := toNumber(val1); ok {
		if n2, ok := toNumber(val2); ok {
			if n1 < n2 {
				return -1, nil
			} else if n1 > n2 {
				return 1, nil
			}
			return 0, nil
		}
	}

	if s1, ok := val1.(string); ok {
		if s2, ok := val2.(string); ok {
			return strings.Compare(s1, s2), nil
		}
	}

	return 0, fmt.Errorf("Cannot order %v and %v",
		scope.EvalToRepr(val1), scope.EvalToRepr(val2))
}

/*
maxFunc returns the largest of the given values or of a single given list.
*/
type maxFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *maxFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if len(args) == 0 {
		return nil, fmt.Errorf("Function requires at least 1 parameter")
	}

	candidates := args

	if len(args) == 1 {
		list, err := f.AssertListParam(1, args[0])

		if err != nil {
			return nil, err
		}

		candidates = list.Items()
	}

	return pickValue(candidates, func(c interface{}, best interface{}) (bool, error) {
		res, err := compareValues(c, best)
		return res > 0, err
	})
}

/*
DocString returns a descriptive string.
*/
func (f *maxFunc) DocString() (string, error) {
	return "Returns the largest of the given values or of a single given list.", nil
}

/*
minFunc returns the smallest of the given values or of a single given list.
*/
type minFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *minFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if len(args) == 0 {
		return nil, fmt.Errorf("Function requires at least 1 parameter")
	}

	candidates := args

	if len(args) == 1 {
		list, err := f.AssertListParam(1, args[0])

		if err != nil {
			return nil, err
		}

		candidates = list.Items()
	}

	return pickValue(candidates, func(c interface{}, best interface{}) (bool, error) {
		res, err := compareValues(c, best)
		return res < 0, err
	})
}

/*
DocString returns a descriptive string.
*/
func (f *minFunc) DocString() (string, error) {
	return "Returns the smallest of the given values or of a single given list.", nil
}

/*
sumFunc returns the sum of a list of numbers.
*/
type sumFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *sumFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	var intSum int64
	var floatSum float64
	var isFloat bool

	for _, item := range list.Items() {

		if i, ok := item.(int64); ok {
			intSum += i
			continue
		}

		n, ok := toNumber(item)

		if !ok {
			return nil, fmt.Errorf("Cannot sum %v", scope.EvalToRepr(item))
		}

		floatSum += n
		isFloat = true
	}

	if isFloat {
		return floatSum + float64(intSum), nil
	}

	return intSum, nil
}

/*
DocString returns a descriptive string.
*/
func (f *sumFunc) DocString() (string, error) {
	return "Returns the sum of a list of numbers.", nil
}

/*
sortFunc returns a new sorted list. The items must be either all numbers or
all strings.
*/
type sortFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *sortFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	allNumbers := true
	allStrings := true

	for _, item := range list.Items() {
		if _, ok := toNumber(item); !ok {
			allNumbers = false
		}
		if _, ok := item.(string); !ok {
			allStrings = false
		}
	}

	ret := list.Copy()

	if allNumbers {
		items := ret.Items()

		sort.Slice(items, func(i, j int) bool {
			n1, _ := toNumber(items[i])
			n2, _ := toNumber(items[j])
			return n1 < n2
		})

		return ret, nil
	}

	if allStrings {
		sortutil.InterfaceStrings(ret.Items())
		return ret, nil
	}

	return nil, fmt.Errorf("Cannot sort a list with mixed values")
}

/*
DocString returns a descriptive string.
*/
func (f *sortFunc) DocString() (string, error) {
	return "Returns a new sorted list.", nil
}

/*
reverseFunc returns a reversed copy of a list or a string.
*/
type reverseFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *reverseFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	if s, ok := args[0].(string); ok {
		runes := []rune(s)

		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}

		return string(runes), nil
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	ret := util.NewList()

	for i := list.Len() - 1; i >= 0; i-- {
		ret.Append(list.Get(i))
	}

	return ret, nil
}

/*
DocString returns a descriptive string.
*/
func (f *reverseFunc) DocString() (string, error) {
	return "Returns a reversed copy of a list or a string.", nil
}

/*
containsFunc checks if a container holds a given item. Lists check their
values, maps their keys and strings check for a substring.
*/
type containsFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *containsFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	switch c := args[0].(type) {

	case *util.List:
		for _, item := range c.Items() {
			if valuesEqual(item, args[1]) {
				return true, nil
			}
		}
		return false, nil

	case *util.Dict:
		_, ok := c.Get(args[1])
		return ok, nil

	case string:
		sub, err := f.AssertStringParam(2, args[1])
		if err != nil {
			return nil, err
		}
		return strings.Contains(c, sub), nil
	}

	return nil, fmt.Errorf("Parameter 1 should be a string, a list or a map")
}

/*
DocString returns a descriptive string.
*/
func (f *containsFunc) DocString() (string, error) {
	return "Checks if a container holds a given item.", nil
}

// List functions
// ==============

/*
appendFunc adds an item to the end of a list. Returns the list.
*/
type appendFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *appendFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	list.Append(args[1])

	return list, nil
}

/*
DocString returns a descriptive string.
*/
func (f *appendFunc) DocString() (string, error) {
	return "Adds an item to the end of a list.", nil
}

/*
removeFunc removes the first occurrence of an item from a list. Returns the list.
*/
type removeFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *removeFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	for i := 0; i < list.Len(); i++ {
		if valuesEqual(list.Get(i), args[1]) {
			list.Pop(i)
			return list, nil
		}
	}

	return nil, fmt.Errorf("Item %v is not in the list", scope.EvalToRepr(args[1]))
}

/*
DocString returns a descriptive string.
*/
func (f *removeFunc) DocString() (string, error) {
	return "Removes the first occurrence of an item from a list.", nil
}

/*
insertFunc inserts an item into a list before a given index. Returns the list.
*/
type insertFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *insertFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 3, 3); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	index, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	list.Insert(int(index), args[2])

	return list, nil
}

/*
DocString returns a descriptive string.
*/
func (f *insertFunc) DocString() (string, error) {
	return "Inserts an item into a list before a given index.", nil
}

/*
popFunc removes and returns the item at a given index (the last item by default).
*/
type popFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *popFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 2); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	index := int64(-1)

	if len(args) > 1 {
		if index, err = f.AssertIntParam(2, args[1]); err != nil {
			return nil, err
		}
	}

	if index < 0 {
		index = int64(list.Len()) + index
	}

	if index < 0 || index >= int64(list.Len()) {
		return nil, fmt.Errorf("Index %v is out of range", index)
	}

	return list.Pop(int(index)), nil
}

/*
DocString returns a descriptive string.
*/
func (f *popFunc) DocString() (string, error) {
	return "Removes and returns the item at a given index (the last item by default).", nil
}

/*
indexOfFunc returns the index of the first occurrence of an item in a list.
*/
type indexOfFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *indexOfFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	for i := 0; i < list.Len(); i++ {
		if valuesEqual(list.Get(i), args[1]) {
			return int64(i), nil
		}
	}

	return nil, fmt.Errorf("Item %v is not in the list", scope.EvalToRepr(args[1]))
}

/*
DocString returns a descriptive string.
*/
func (f *indexOfFunc) DocString() (string, error) {
	return "Returns the index of the first occurrence of an item in a list.", nil
}

/*
countFunc counts the occurrences of an item in a list.
*/
type countFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *countFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(1, args[0])
	if err != nil {
		return nil, err
	}

	var count int64

	for _, item := range list.Items() {
		if valuesEqual(item, args[1]) {
			count++
		}
	}

	return count, nil
}

/*
DocString returns a descriptive string.
*/
func (f *countFunc) DocString() (string, error) {
	return "Counts the occurrences of an item in a list.", nil
}

/*
copyFunc returns a shallow copy of a list or a map.
*/
type copyFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *copyFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch c := args[0].(type) {
	case *util.List:
		return c.Copy(), nil
	case *util.Dict:
		return c.Copy(), nil
	case string:
		return c, nil
	}

	return nil, fmt.Errorf("Cannot copy %v", scope.EvalToRepr(args[0]))
}

/*
DocString returns a descriptive string.
*/
func (f *copyFunc) DocString() (string, error) {
	return "Returns a shallow copy of a list or a map.", nil
}

/*
clearFunc removes all items from a list or a map. Returns the container.
*/
type clearFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *clearFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	switch c := args[0].(type) {
	case *util.List:
		c.Clear()
		return c, nil
	case *util.Dict:
		c.Clear()
		return c, nil
	}

	return nil, fmt.Errorf("Parameter 1 should be a list or a map")
}

/*
DocString returns a descriptive string.
*/
func (f *clearFunc) DocString() (string, error) {
	return "Removes all items from a list or a map.", nil
}

// Dictionary functions
// ====================

/*
keysFunc returns the keys of a map in insertion order.
*/
type keysFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *keysFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	dict, err := f.AssertMapParam(1, args[0])
	if err != nil {
		return nil, err
	}

	return util.NewListFromItems(dict.Keys()), nil
}

/*
DocString returns a descriptive string.
*/
func (f *keysFunc) DocString() (string, error) {
	return "Returns the keys of a map in insertion order.", nil
}

/*
valuesFunc returns the values of a map in insertion order of their keys.
*/
type valuesFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *valuesFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	dict, err := f.AssertMapParam(1, args[0])
	if err != nil {
		return nil, err
	}

	return util.NewListFromItems(dict.Values()), nil
}

/*
DocString returns a descriptive string.
*/
func (f *valuesFunc) DocString() (string, error) {
	return "Returns the values of a map in insertion order of their keys.", nil
}

/*
itemsFunc returns the key / value pairs of a map as a list of lists.
*/
type itemsFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *itemsFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 1); err != nil {
		return nil, err
	}

	dict, err := f.AssertMapParam(1, args[0])
	if err != nil {
		return nil, err
	}

	ret := util.NewList()

	for _, item := range dict.Items() {
		ret.Append(util.NewListFromItems(item))
	}

	return ret, nil
}

/*
DocString returns a descriptive string.
*/
func (f *itemsFunc) DocString() (string, error) {
	return "Returns the key / value pairs of a map as a list of lists.", nil
}

/*
newDictFunc returns a new empty map.
*/
type newDictFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *newDictFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 0, 0); err != nil {
		return nil, err
	}

	return util.NewDict(), nil
}

/*
DocString returns a descriptive string.
*/
func (f *newDictFunc) DocString() (string, error) {
	return "Returns a new empty map.", nil
}

// Math functions
// ==============

/*
roundFunc rounds a number to a given precision. Without a precision the
result is an integer - rounding uses round-half-to-even.
*/
type roundFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *roundFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 2); err != nil {
		return nil, err
	}

	n, err := f.AssertNumParam(1, args[0])
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return int64(math.RoundToEven(n)), nil
	}

	digits, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	shift := math.Pow(10, float64(digits))

	return math.RoundToEven(n*shift) / shift, nil
}

/*
DocString returns a descriptive string.
*/
func (f *roundFunc) DocString() (string, error) {
	return "Rounds a number to a given precision.", nil
}

/*
logFunc calculates the logarithm of a number - natural by default or to a
given base.
*/
type logFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *logFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 2); err != nil {
		return nil, err
	}

	n, err := f.AssertNumParam(1, args[0])
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, fmt.Errorf("Cannot calculate the logarithm of %v", n)
	}

	if len(args) == 1 {
		return math.Log(n), nil
	}

	base, err := f.AssertNumParam(2, args[1])
	if err != nil {
		return nil, err
	}

	if base <= 0 || base == 1 {
		return nil, fmt.Errorf("Invalid logarithm base %v", base)
	}

	return math.Log(n) / math.Log(base), nil
}

/*
DocString returns a descriptive string.
*/
func (f *logFunc) DocString() (string, error) {
	return "Calculates the logarithm of a number - natural by default or to a given base.", nil
}

/*
randomFunc returns a random float between 0 (inclusive) and 1 (exclusive).
*/
type randomFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *randomFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 0, 0); err != nil {
		return nil, err
	}

	return rand.Float64(), nil
}

/*
DocString returns a descriptive string.
*/
func (f *randomFunc) DocString() (string, error) {
	return "Returns a random float between 0 (inclusive) and 1 (exclusive).", nil
}

/*
randintFunc returns a random integer in a given inclusive range.
*/
type randintFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *randintFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	low, err := f.AssertIntParam(1, args[0])
	if err != nil {
		return nil, err
	}

	high, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	if high < low {
		return nil, fmt.Errorf("Invalid range %v to %v", low, high)
	}

	return low + rand.Int63n(high-low+1), nil
}

/*
DocString returns a descriptive string.
*/
func (f *randintFunc) DocString() (string, error) {
	return "Returns a random integer in a given inclusive range.", nil
}

// String functions
// ================

/*
splitFunc splits a string on a separator (a single space by default).
*/
type splitFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *splitFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 1, 2); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	sep := " "

	if len(args) > 1 {
		if sep, err = f.AssertStringParam(2, args[1]); err != nil {
			return nil, err
		}

		if sep == "" {
			return nil, fmt.Errorf("Separator must not be empty")
		}
	}

	ret := util.NewList()

	for _, part := range strings.Split(s, sep) {
		ret.Append(part)
	}

	return ret, nil
}

/*
DocString returns a descriptive string.
*/
func (f *splitFunc) DocString() (string, error) {
	return "Splits a string on a separator (a single space by default).", nil
}

/*
joinFunc joins the items of a list with a separator string.
*/
type joinFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *joinFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	sep, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	list, err := f.AssertListParam(2, args[1])
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, list.Len())

	for _, item := range list.Items() {
		parts = append(parts, scope.EvalToString(item))
	}

	return strings.Join(parts, sep), nil
}

/*
DocString returns a descriptive string.
*/
func (f *joinFunc) DocString() (string, error) {
	return "Joins the items of a list with a separator string.", nil
}

/*
findFunc returns the character index of the first occurrence of a substring
or -1 if the substring is not found.
*/
type findFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *findFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 2); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	sub, err := f.AssertStringParam(2, args[1])
	if err != nil {
		return nil, err
	}

	idx := strings.Index(s, sub)

	if idx == -1 {
		return int64(-1), nil
	}

	return int64(utf8.RuneCountInString(s[:idx])), nil
}

/*
DocString returns a descriptive string.
*/
func (f *findFunc) DocString() (string, error) {
	return "Returns the character index of the first occurrence of a substring or -1.", nil
}

/*
sliceFunc returns a substring. Negative offsets count from the end of the
string - offsets are clamped to the string boundaries.
*/
type sliceFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *sliceFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 3); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	runes := []rune(s)

	clamp := func(idx int64) int64 {
		if idx < 0 {
			idx = int64(len(runes)) + idx
		}
		if idx < 0 {
			idx = 0
		}
		if idx > int64(len(runes)) {
			idx = int64(len(runes))
		}
		return idx
	}

	start, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	end := int64(len(runes))

	if len(args) > 2 {
		if end, err = f.AssertIntParam(3, args[2]); err != nil {
			return nil, err
		}
	}

	start = clamp(start)
	end = clamp(end)

	if start >= end {
		return "", nil
	}

	return string(runes[start:end]), nil
}

/*
DocString returns a descriptive string.
*/
func (f *sliceFunc) DocString() (string, error) {
	return "Returns a substring between a start and an end offset.", nil
}

/*
padChar extracts the optional padding character of the padding functions.
*/
func (ibf *inbuildBaseFunc) padChar(args []interface{}, index int) (string, error) {

	if len(args) <= index {
		return " ", nil
	}

	pad, err := ibf.AssertStringParam(index+1, args[index])
	if err != nil {
		return "", err
	}

	if utf8.RuneCountInString(pad) != 1 {
		return "", fmt.Errorf("The fill character must be exactly one character long")
	}

	return pad, nil
}

/*
centerFunc centers a string in a field of a given width.
*/
type centerFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *centerFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 3); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	width, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	pad, err := f.padChar(args, 2)
	if err != nil {
		return nil, err
	}

	length := int64(utf8.RuneCountInString(s))

	if width <= length {
		return s, nil
	}

	margin := width - length
	left := margin / 2

	return strings.Repeat(pad, int(left)) + s + strings.Repeat(pad, int(margin-left)), nil
}

/*
DocString returns a descriptive string.
*/
func (f *centerFunc) DocString() (string, error) {
	return "Centers a string in a field of a given width.", nil
}

/*
ljustFunc left-justifies a string in a field of a given width.
*/
type ljustFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *ljustFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 3); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	width, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	pad, err := f.padChar(args, 2)
	if err != nil {
		return nil, err
	}

	length := int64(utf8.RuneCountInString(s))

	if width <= length {
		return s, nil
	}

	return s + strings.Repeat(pad, int(width-length)), nil
}

/*
DocString returns a descriptive string.
*/
func (f *ljustFunc) DocString() (string, error) {
	return "Left-justifies a string in a field of a given width.", nil
}

/*
rjustFunc right-justifies a string in a field of a given width.
*/
type rjustFunc struct {
	*inbuildBaseFunc
}

/*
Run executes this function.
*/
func (f *rjustFunc) Run(vs parser.Scope, args []interface{}) (interface{}, error) {

	if err := f.AssertArgCount(args, 2, 3); err != nil {
		return nil, err
	}

	s, err := f.AssertStringParam(1, args[0])
	if err != nil {
		return nil, err
	}

	width, err := f.AssertIntParam(2, args[1])
	if err != nil {
		return nil, err
	}

	pad, err := f.padChar(args, 2)
	if err != nil {
		return nil, err
	}

	length := int64(utf8.RuneCountInString(s))

	if width <= length {
		return s, nil
	}

	return strings.Repeat(pad, int(width-length)) + s, nil
}

/*
DocString returns a descriptive string.
*/
func (f *rjustFunc) DocString() (string, error) {
	return "Right-justifies a string in a field of a given width.", nil
}
