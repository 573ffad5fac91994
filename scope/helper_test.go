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
	"math"
	"testing"

	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/util"
)

func TestNameFromASTNode(t *testing.T) {

	ast, err := parser.Parse("test", "만약 참 {\n}")

	if err != nil {
		t.Error(err)
		return
	}

	if res := NameFromASTNode(ast.Children[0]); res != "block: if (Line:1 Pos:1)" {
		t.Error("Unexpected result: ", res)
		return
	}

	// Constructed nodes have no token

	if res := NameFromASTNode(ast.Children[0].Children[1]); res != "block: statements" {
		t.Error("Unexpected result: ", res)
		return
	}
}

func TestEvalToString(t *testing.T) {

	for _, tc := range []struct {
		val interface{}
		exp string
	}{
		{nil, "없음"},
		{true, "참"},
		{false, "거짓"},
		{int64(42), "42"},
		{int64(-1), "-1"},
		{3.0, "3.0"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
		{math.Inf(1), "무한대"},
		{math.Inf(-1), "-무한대"},
		{"text", "text"},
	} {
		if res := EvalToString(tc.val); res != tc.exp {
			t.Error("Unexpected result: ", res, " expected: ", tc.exp)
			return
		}
	}

	list := util.NewListFromItems([]interface{}{int64(1), "a", nil})

	if res := EvalToString(list); res != "[1, 'a', 없음]" {
		t.Error("Unexpected result: ", res)
		return
	}

	dict := util.NewDict()
	dict.Set("k", util.NewListFromItems([]interface{}{int64(1)}))
	dict.Set(int64(2), 2.5)

	if res := EvalToString(dict); res != "{'k': [1], 2: 2.5}" {
		t.Error("Unexpected result: ", res)
		return
	}

	// Strings are only quoted inside containers

	if res := EvalToRepr("a"); res != "'a'" {
		t.Error("Unexpected result: ", res)
		return
	}

	if res := EvalToRepr(int64(1)); res != "1" {
		t.Error("Unexpected result: ", res)
		return
	}
}
