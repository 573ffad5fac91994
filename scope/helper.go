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
Package scope contains the lexical scope implementation for the scripting language HanLang.
*/
package scope

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/util"
)

/*
Default scope names
*/
const (
	GlobalScope = "GlobalScope"
	FuncPrefix  = "func:"
)

/*
NameFromASTNode returns a scope name from a given ASTNode.
*/
func NameFromASTNode(node *parser.ASTNode) string {
	if node.Token == nil {
		return fmt.Sprintf("block: %v", node.Name)
	}
	return fmt.Sprintf("block: %v (Line:%d Pos:%d)", node.Name, node.Token.Lline, node.Token.Lpos)
}

/*
EvalToString converts a runtime value into its canonical display string.
Booleans and the null value render as their HanLang lexemes, integers render
without a decimal part and float values always carry one.
*/
func EvalToString(v interface{}) string {

	switch val := v.(type) {

	case nil:
		return "없음"

	case bool:
		if val {
			return "참"
		}
		return "거짓"

	case int64:
		return strconv.FormatInt(val, 10)

	case float64:
		return formatFloat(val)

	case string:
		return val

	case *util.List:
		var buf bytes.Buffer

		buf.WriteString("[")
		for i, item := range val.Items() {
			buf.WriteString(EvalToRepr(item))
			if i < val.Len()-1 {
				buf.WriteString(", ")
			}
		}
		buf.WriteString("]")

		return buf.String()

	case *util.Dict:
		var buf bytes.Buffer

		buf.WriteString("{")
		for i, key := range val.Keys() {
			item, _ := val.Get(key)
			buf.WriteString(EvalToRepr(key))
			buf.WriteString(": ")
			buf.WriteString(EvalToRepr(item))
			if i < val.Len()-1 {
				buf.WriteString(", ")
			}
		}
		buf.WriteString("}")

		return buf.String()
	}

	return fmt.Sprint(v)
}

/*
EvalToRepr converts a runtime value into its display string for use inside
container renderings. Strings are quoted - all other values render as with
EvalToString.
*/
func EvalToRepr(v interface{}) string {

	if str, ok := v.(string); ok {
		return fmt.Sprintf("'%v'", str)
	}

	return EvalToString(v)
}

/*
formatFloat renders a float value. Integral values carry a trailing ".0" so
they remain distinguishable from integers.
*/
func formatFloat(val float64) string {

	if math.IsInf(val, 1) {
		return "무한대"
	} else if math.IsInf(val, -1) {
		return "-무한대"
	} else if math.IsNaN(val) {
		return "NaN"
	}

	ret := strconv.FormatFloat(val, 'g', -1, 64)

	if !bytes.ContainsAny([]byte(ret), ".eE") {
		ret += ".0"
	}

	return ret
}
