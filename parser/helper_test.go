/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"
)

func TestLABuffer(t *testing.T) {

	buf := NewLABuffer(Lex("test", "1 2 3"), 3)

	if token, ok := buf.Next(); token.Val != "1" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Next(); token.Val != "2" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	// Check Peek

	if token, ok := buf.Peek(0); token.Val != "3" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Peek(1); token.ID != TokenEOF || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Peek(2); token.ID != TokenEOF || ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Next(); token.Val != "3" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Next(); token.ID != TokenEOF || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	// The buffer is now empty

	if token, ok := buf.Next(); token.ID != TokenEOF || ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}
}

func TestLABufferGrowingPeek(t *testing.T) {

	// The look-ahead buffer grows on demand so the parser can look
	// arbitrarily far ahead (needed for lambda disambiguation)

	buf := NewLABuffer(Lex("test", "a, b, c, d, e, f"), 3)

	if token, ok := buf.Peek(10); token.Val != "f" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}

	if token, ok := buf.Next(); token.Val != "a" || !ok {
		t.Error("Unexpected result: ", token, ok)
		return
	}
}

func TestASTNodeEquals(t *testing.T) {

	ast1, _ := Parse("test", "변수 x = 1 + 2")
	ast2, _ := Parse("test", "변수 x = 1 +    2")
	ast3, _ := Parse("test", "변수 x = 1 - 2")
	ast4, _ := Parse("test", "변수 x = 1 + 3")

	if ok, msg := ast1.Equals(ast2, true); !ok {
		t.Error("ASTs should be equal: ", msg)
		return
	}

	if ok, _ := ast1.Equals(ast2, false); ok {
		t.Error("ASTs should not be equal with position checking")
		return
	}

	if ok, _ := ast1.Equals(ast3, true); ok {
		t.Error("ASTs with different nodes should not be equal")
		return
	}

	if ok, _ := ast1.Equals(ast4, true); ok {
		t.Error("ASTs with different values should not be equal")
		return
	}
}

func TestASTNodeString(t *testing.T) {

	ast, _ := Parse("test", "변수 x = [1, \"a\"]")

	if ast.String() != `
statements
  let
    identifier: x
    list
      integer: 1
      string: 'a'
`[1:] {
		t.Error("Unexpected result: ", ast.String())
		return
	}
}

func TestASTToJSONObject(t *testing.T) {

	ast, _ := Parse("test", "변수 x")

	jsonObject := ast.ToJSONObject()

	if jsonObject["name"] != NodeSTATEMENTS {
		t.Error("Unexpected result: ", jsonObject)
		return
	}

	children := jsonObject["children"].([]map[string]interface{})

	if len(children) != 1 || children[0]["name"] != NodeLET {
		t.Error("Unexpected result: ", children)
		return
	}
}
