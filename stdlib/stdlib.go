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
Package stdlib exposes selected Go standard library functions to HanLang
programs. The functions are registered under their Korean names and are
bridged through a reflection adapter.
*/
package stdlib

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"

	"devt.de/krotik/hanlang/util"
)

/*
internalStdlibFuncMap holds all registered functions
*/
var internalStdlibFuncMap = make(map[string]util.Function)

/*
internalStdlibConstMap holds all registered constants
*/
var internalStdlibConstMap = map[string]interface{}{
	"파이":   math.Pi,
	"자연상수": math.E,
	"무한대":  math.Inf(1),
}

func init() {

	// Math functions

	register("제곱근", "Calculates the square root of a number.",
		func(x float64) (float64, error) {
			if x < 0 {
				return 0, fmt.Errorf("Cannot calculate the square root of %v", x)
			}
			return math.Sqrt(x), nil
		})

	register("거듭제곱", "Raises a number to the power of another number.", math.Pow)

	register("올림", "Rounds a number up to the nearest integer.",
		func(x float64) int64 { return int64(math.Ceil(x)) })

	register("내림", "Rounds a number down to the nearest integer.",
		func(x float64) int64 { return int64(math.Floor(x)) })

	register("사인", "Calculates the sine of a radian value.", math.Sin)
	register("코사인", "Calculates the cosine of a radian value.", math.Cos)
	register("탄젠트", "Calculates the tangent of a radian value.", math.Tan)

	register("아크사인", "Calculates the inverse sine of a value.",
		func(x float64) (float64, error) {
			if x < -1 || x > 1 {
				return 0, fmt.Errorf("Value %v is outside of the domain [-1, 1]", x)
			}
			return math.Asin(x), nil
		})

	register("아크코사인", "Calculates the inverse cosine of a value.",
		func(x float64) (float64, error) {
			if x < -1 || x > 1 {
				return 0, fmt.Errorf("Value %v is outside of the domain [-1, 1]", x)
			}
			return math.Acos(x), nil
		})

	register("아크탄젠트", "Calculates the inverse tangent of a value.", math.Atan)

	register("로그10", "Calculates the decimal logarithm of a number.",
		func(x float64) (float64, error) {
			if x <= 0 {
				return 0, fmt.Errorf("Cannot calculate the logarithm of %v", x)
			}
			return math.Log10(x), nil
		})

	// String functions

	register("대문자", "Converts a string to upper case.", strings.ToUpper)
	register("소문자", "Converts a string to lower case.", strings.ToLower)

	register("공백제거", "Removes leading and trailing whitespace from a string.",
		strings.TrimSpace)

	register("왼쪽공백제거", "Removes leading whitespace from a string.",
		func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) })

	register("오른쪽공백제거", "Removes trailing whitespace from a string.",
		func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) })

	register("시작확인", "Checks if a string starts with a given prefix.", strings.HasPrefix)
	register("끝확인", "Checks if a string ends with a given suffix.", strings.HasSuffix)

	register("교체", "Replaces all occurrences of a substring with another string.",
		func(s string, old string, new string) string {
			return strings.Replace(s, old, new, -1)
		})

	register("반복문자", "Repeats a string a given number of times.",
		func(s string, n int64) string {
			if n < 1 {
				return ""
			}
			return strings.Repeat(s, int(n))
		})
}

/*
register adds a Go function to stdlib.
*/
func register(name string, docstring string, funcObj interface{}) {
	internalStdlibFuncMap[name] = NewFunctionAdapter(reflect.ValueOf(funcObj), docstring)
}

/*
AddStdlibFunc adds a function to stdlib. An already registered function with
the same name is replaced.
*/
func AddStdlibFunc(name string, funcObj util.Function) {
	internalStdlibFuncMap[name] = funcObj
}

/*
GetStdlibFunc returns a stdlib function.
*/
func GetStdlibFunc(name string) (util.Function, bool) {
	f, ok := internalStdlibFuncMap[name]
	return f, ok
}

/*
GetStdlibConst returns a stdlib constant.
*/
func GetStdlibConst(name string) (interface{}, bool) {
	c, ok := internalStdlibConstMap[name]
	return c, ok
}

/*
GetStdlibSymbols returns the names of all available stdlib functions and constants.
*/
func GetStdlibSymbols() ([]string, []string) {
	var funcs, consts []string

	for k := range internalStdlibFuncMap {
		funcs = append(funcs, k)
	}

	for k := range internalStdlibConstMap {
		consts = append(consts, k)
	}

	return funcs, consts
}
