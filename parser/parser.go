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
	"fmt"
)

/*
Map of AST nodes corresponding to lexer tokens. The map determines how a given
sequence of lexer tokens are organized into an AST.
*/
var astNodeMap map[LexTokenID]*ASTNode

func init() {
	astNodeMap = map[LexTokenID]*ASTNode{
		TokenEOF: {NodeEOF, nil, nil, nil, 0, ndTerm, nil},

		// The newline token separates statements - it has no denotations

		TokenNEWLINE: {"", nil, nil, nil, 0, nil, nil},

		// Value tokens

		TokenSTRING:     {NodeSTRING, nil, nil, nil, 0, ndTerm, nil},
		TokenINTEGER:    {NodeINTEGER, nil, nil, nil, 0, ndTerm, nil},
		TokenFLOAT:      {NodeFLOAT, nil, nil, nil, 0, ndTerm, nil},
		TokenIDENTIFIER: {NodeIDENTIFIER, nil, nil, nil, 0, ndTerm, nil},

		// Constructed tokens

		TokenSTATEMENTS: {NodeSTATEMENTS, nil, nil, nil, 0, nil, nil},
		TokenFUNCCALL:   {NodeFUNCCALL, nil, nil, nil, 0, nil, nil},
		TokenLIST:       {NodeLIST, nil, nil, nil, 0, nil, nil},
		TokenMAP:        {NodeMAP, nil, nil, nil, 0, nil, nil},
		TokenKVP:        {NodeKVP, nil, nil, nil, 0, nil, nil},
		TokenINDEX:      {NodeINDEX, nil, nil, nil, 0, nil, nil},
		TokenPARAMS:     {NodePARAMS, nil, nil, nil, 0, nil, nil},
		TokenGUARD:      {NodeGUARD, nil, nil, nil, 0, nil, nil},

		// Condition operators

		TokenGEQ: {NodeGEQ, nil, nil, nil, 60, nil, ldInfix},
		TokenLEQ: {NodeLEQ, nil, nil, nil, 60, nil, ldInfix},
		TokenNEQ: {NodeNEQ, nil, nil, nil, 60, nil, ldInfix},
		TokenEQ:  {NodeEQ, nil, nil, nil, 60, nil, ldInfix},
		TokenGT:  {NodeGT, nil, nil, nil, 60, nil, ldInfix},
		TokenLT:  {NodeLT, nil, nil, nil, 60, nil, ldInfix},

		// Grouping symbols

		TokenLPAREN: {"", nil, nil, nil, 150, ndParenOrLambda, ldCall},
		TokenRPAREN: {"", nil, nil, nil, 0, nil, nil},
		TokenLBRACK: {"", nil, nil, nil, 150, ndList, ldIndex},
		TokenRBRACK: {"", nil, nil, nil, 0, nil, nil},
		TokenLBRACE: {"", nil, nil, nil, 0, ndMap, nil},
		TokenRBRACE: {"", nil, nil, nil, 0, nil, nil},

		// Separators

		TokenDOT:       {NodeATTRIBUTE, nil, nil, nil, 150, nil, ldAttribute},
		TokenCOMMA:     {"", nil, nil, nil, 0, nil, nil},
		TokenCOLON:     {"", nil, nil, nil, 0, nil, nil},
		TokenSEMICOLON: {"", nil, nil, nil, 0, nil, nil},

		// Ternary operator

		TokenQUESTION: {NodeTERNARY, nil, nil, nil, 30, nil, ldTernary},

		// Arrows

		TokenARROW:       {"", nil, nil, nil, 0, nil, nil},
		TokenLAMBDAARROW: {NodeLAMBDA, nil, nil, nil, 0, nil, nil},

		// Arithmetic operators

		TokenPLUS:   {NodePLUS, nil, nil, nil, 110, nil, ldInfix},
		TokenMINUS:  {NodeMINUS, nil, nil, nil, 110, ndPrefix, ldInfix},
		TokenTIMES:  {NodeTIMES, nil, nil, nil, 120, nil, ldInfix},
		TokenDIV:    {NodeDIV, nil, nil, nil, 120, nil, ldInfix},
		TokenMODINT: {NodeMODINT, nil, nil, nil, 120, nil, ldInfix},
		TokenPOW:    {NodePOW, nil, nil, nil, 130, nil, ldInfixRight},

		// Assignment statements

		TokenASSIGN:      {NodeASSIGN, nil, nil, nil, 10, nil, ldAssign},
		TokenPLUSASSIGN:  {NodePLUSASSIGN, nil, nil, nil, 10, nil, ldAssign},
		TokenMINUSASSIGN: {NodeMINUSASSIGN, nil, nil, nil, 10, nil, ldAssign},
		TokenTIMESASSIGN: {NodeTIMESASSIGN, nil, nil, nil, 10, nil, ldAssign},
		TokenDIVASSIGN:   {NodeDIVASSIGN, nil, nil, nil, 10, nil, ldAssign},

		// Declarations

		TokenLET:   {NodeLET, nil, nil, nil, 0, ndVarDecl, nil},
		TokenCONST: {NodeCONST, nil, nil, nil, 0, ndVarDecl, nil},

		// Function definition

		TokenFUNC:   {NodeFUNC, nil, nil, nil, 0, ndFunc, nil},
		TokenRETURN: {NodeRETURN, nil, nil, nil, 0, ndReturn, nil},

		// Class definition

		TokenCLASS: {NodeCLASS, nil, nil, nil, 0, ndClass, nil},

		// Boolean operators

		TokenAND: {NodeAND, nil, nil, nil, 40, nil, ldInfix},
		TokenOR:  {NodeOR, nil, nil, nil, 30, nil, ldInfix},
		TokenNOT: {NodeNOT, nil, nil, nil, 20, ndPrefix, nil},

		// Constant terminals

		TokenFALSE: {NodeFALSE, nil, nil, nil, 0, ndTerm, nil},
		TokenTRUE:  {NodeTRUE, nil, nil, nil, 0, ndTerm, nil},
		TokenNULL:  {NodeNULL, nil, nil, nil, 0, ndTerm, nil},

		// Conditional statements

		TokenIF:   {NodeIF, nil, nil, nil, 0, ndGuard, nil},
		TokenELIF: {"", nil, nil, nil, 0, nil, nil},
		TokenELSE: {"", nil, nil, nil, 0, nil, nil},

		// Loop statements

		TokenFOR:      {NodeLOOP, nil, nil, nil, 0, ndLoop, nil},
		TokenWHILE:    {NodeWHILE, nil, nil, nil, 0, ndWhile, nil},
		TokenBREAK:    {NodeBREAK, nil, nil, nil, 0, ndTerm, nil},
		TokenCONTINUE: {NodeCONTINUE, nil, nil, nil, 0, ndTerm, nil},

		// Try statement

		TokenTRY:     {NodeTRY, nil, nil, nil, 0, ndTry, nil},
		TokenCATCH:   {NodeCATCH, nil, nil, nil, 0, nil, nil},
		TokenFINALLY: {NodeFINALLY, nil, nil, nil, 0, nil, nil},
		TokenTHROW:   {NodeTHROW, nil, nil, nil, 0, ndThrow, nil},

		// IO statements

		TokenPRINT: {NodePRINT, nil, nil, nil, 0, ndPrint, nil},
		TokenINPUT: {NodeINPUT, nil, nil, nil, 0, ndInput, nil},
	}
}

// Parser
// ======

/*
Parser data structure
*/
type parser struct {
	name   string          // Name to identify the input
	node   *ASTNode        // Current ast node
	tokens *LABuffer       // Buffer which is connected to the channel which contains lex tokens
	rp     RuntimeProvider // Runtime provider which creates runtime components
}

/*
Parse parses a given input string and returns an AST.
*/
func Parse(name string, input string) (*ASTNode, error) {
	return ParseWithRuntime(name, input, nil)
}

/*
ParseWithRuntime parses a given input string and returns an AST decorated with
runtime components.
*/
func ParseWithRuntime(name string, input string, rp RuntimeProvider) (*ASTNode, error) {

	// Create a new parser with a look-ahead buffer of 3

	p := &parser{name, nil, NewLABuffer(Lex(name, input), 3), rp}

	// Read and set initial AST node

	node, err := p.next()

	if err != nil {
		return nil, err
	}

	p.node = node

	// The top level node is always a statements node

	st := astNodeMap[TokenSTATEMENTS].instance(p, nil)

	for err == nil {

		if err = skipStatementSeparators(p); err != nil {
			break
		}

		if p.node.Token.ID == TokenEOF {
			break
		}

		var n *ASTNode

		if n, err = p.run(0); err == nil {
			st.Children = append(st.Children, n)
		}
	}

	return st, err
}

/*
run models the main parser function.
*/
func (p *parser) run(rightBinding int) (*ASTNode, error) {
	var err error

	n := p.node

	p.node, err = p.next()
	if err != nil {
		return nil, err
	}

	// Start with the null denotation of this statement / expression

	if n.nullDenotation == nil {
		return nil, p.newParserError(ErrImpossibleNullDenotation,
			n.Token.String(), *n.Token)
	}

	left, err := n.nullDenotation(p, n)
	if err != nil {
		return nil, err
	}

	// Collect left denotations as long as the left binding power is greater
	// than the initial right one

	for rightBinding < p.node.binding {
		var nleft *ASTNode

		n = p.node

		if n.leftDenotation == nil {
			return nil, p.newParserError(ErrImpossibleLeftDenotation,
				n.Token.String(), *n.Token)
		}

		p.node, err = p.next()

		if err != nil {
			return nil, err
		}

		// Get the next left denotation

		nleft, err = n.leftDenotation(p, n, left)

		left = nleft

		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

/*
next retrieves the next lexer token.
*/
func (p *parser) next() (*ASTNode, error) {

	token, more := p.tokens.Next()

	if !more {

		// Unexpected end of input - the associated token is an empty error token

		return nil, p.newParserError(ErrUnexpectedEnd, "", token)

	} else if token.ID == TokenError {

		// There was a lexer error wrap it in a parser error

		return nil, p.newParserError(ErrLexicalError, token.Val, token)

	} else if node, ok := astNodeMap[token.ID]; ok {

		// We got a normal AST component

		return node.instance(p, &token), nil
	}

	return nil, p.newParserError(ErrUnknownToken, fmt.Sprintf("id:%v (%v)", token.ID, token), token)
}

// Standard null denotation functions
// ==================================

/*
ndTerm is used for terminals.
*/
func ndTerm(p *parser, self *ASTNode) (*ASTNode, error) {
	return self, nil
}

/*
ndPrefix is used for prefix operators.
*/
func ndPrefix(p *parser, self *ASTNode) (*ASTNode, error) {

	// Make sure a prefix will only prefix the next item

	val, err := p.run(self.binding + 20)
	if err != nil {
		return nil, err
	}

	self.Children = append(self.Children, val)

	return self, nil
}

// Null denotation functions for specific expressions
// ==================================================

/*
ndParenOrLambda is used to parse a parenthesized expression or a lambda
expression. The decision is made with a look-ahead which does not consume
any input.
*/
func ndParenOrLambda(p *parser, self *ASTNode) (*ASTNode, error) {

	if isLambdaAhead(p) {
		var err error

		// Create a lambda node

		lambda := astNodeMap[TokenLAMBDAARROW].instance(p, self.Token)

		params := astNodeMap[TokenPARAMS].instance(p, nil)
		lambda.Children = append(lambda.Children, params)

		for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRPAREN}) {

			if err = acceptChild(p, params, TokenIDENTIFIER); err == nil {

				if p.node.Token.ID == TokenCOMMA {
					err = skipToken(p, TokenCOMMA)
				}
			}
		}

		if err == nil {
			if err = skipToken(p, TokenRPAREN); err == nil {
				err = skipToken(p, TokenLAMBDAARROW)
			}
		}

		if err == nil {
			var body *ASTNode

			if body, err = p.run(10); err == nil {
				lambda.Children = append(lambda.Children, body)
			}
		}

		return lambda, err
	}

	// Get the inner expression - we return here the inner expression
	// discarding the bracket tokens

	exp, err := p.run(10)
	if err != nil {
		return nil, err
	}

	return exp, skipToken(p, TokenRPAREN)
}

/*
isLambdaAhead checks if the tokens after an already consumed left parenthesis
form the start of a lambda expression. The look-ahead must not consume input.
*/
func isLambdaAhead(p *parser) bool {

	if p.node.Token.ID == TokenRPAREN {
		t, _ := p.tokens.Peek(0)
		return t.ID == TokenLAMBDAARROW
	}

	if p.node.Token.ID != TokenIDENTIFIER {
		return false
	}

	for i := 0; ; {
		t, _ := p.tokens.Peek(i)

		if t.ID == TokenCOMMA {

			if nt, _ := p.tokens.Peek(i + 1); nt.ID != TokenIDENTIFIER {
				return false
			}

			i += 2

		} else if t.ID == TokenRPAREN {

			nt, _ := p.tokens.Peek(i + 1)
			return nt.ID == TokenLAMBDAARROW

		} else {

			return false
		}
	}
}

/*
ndList is used to collect elements of a list.
*/
func ndList(p *parser, self *ASTNode) (*ASTNode, error) {
	var err error
	var exp *ASTNode

	// Create a list token

	st := astNodeMap[TokenLIST].instance(p, self.Token)

	// Get the inner expressions

	for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRBRACK}) {

		if exp, err = p.run(10); err == nil {
			st.Children = append(st.Children, exp)

			if p.node.Token.ID == TokenCOMMA {
				err = skipToken(p, TokenCOMMA)
			}
		}
	}

	if err == nil {
		err = skipToken(p, TokenRBRACK)
	}

	// Must have a closing bracket

	return st, err
}

/*
ndMap is used to collect elements of a map. Newlines are allowed between
entries and a trailing comma is permitted.
*/
func ndMap(p *parser, self *ASTNode) (*ASTNode, error) {

	// Create a map token

	st := astNodeMap[TokenMAP].instance(p, self.Token)

	err := skipStatementSeparators(p)

	for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRBRACE}) {
		var key, val *ASTNode

		if key, err = p.run(10); err != nil {
			break
		}

		if err = skipToken(p, TokenCOLON); err != nil {
			break
		}

		if val, err = p.run(10); err != nil {
			break
		}

		kvp := astNodeMap[TokenKVP].instance(p, nil)
		kvp.Children = append(kvp.Children, key)
		kvp.Children = append(kvp.Children, val)
		st.Children = append(st.Children, kvp)

		if p.node.Token.ID != TokenCOMMA {
			break
		}

		if err = skipToken(p, TokenCOMMA); err == nil {
			err = skipStatementSeparators(p)
		}
	}

	if err == nil {
		if err = skipStatementSeparators(p); err == nil {
			err = skipToken(p, TokenRBRACE)
		}
	}

	// Must have a closing brace

	return st, err
}

/*
ndVarDecl is used to parse variable and constant declarations.
*/
func ndVarDecl(p *parser, self *ASTNode) (*ASTNode, error) {

	// Must specify a name

	err := acceptChild(p, self, TokenIDENTIFIER)

	if err == nil && p.node.Token.ID == TokenASSIGN {

		// Parse the initial value

		if err = skipToken(p, TokenASSIGN); err == nil {
			var exp *ASTNode

			if exp, err = p.run(10); err == nil {
				self.Children = append(self.Children, exp)
			}
		}
	}

	return self, err
}

/*
ndFunc is used to parse function definitions.
*/
func ndFunc(p *parser, self *ASTNode) (*ASTNode, error) {

	// Must specify a function name

	err := acceptChild(p, self, TokenIDENTIFIER)

	// Read in parameters

	if err == nil {
		err = skipToken(p, TokenLPAREN)

		params := astNodeMap[TokenPARAMS].instance(p, nil)
		self.Children = append(self.Children, params)

		for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRPAREN}) {

			if err = acceptChild(p, params, TokenIDENTIFIER); err == nil {

				if p.node.Token.ID == TokenCOMMA {
					err = skipToken(p, TokenCOMMA)
				}
			}
		}

		if err == nil {
			err = skipToken(p, TokenRPAREN)
		}
	}

	if err == nil {

		// Parse the body

		self, err = parseInnerStatements(p, self)
	}

	return self, err
}

/*
ndReturn is used to parse return statements.
*/
func ndReturn(p *parser, self *ASTNode) (*ASTNode, error) {
	var err error

	if !IsNotEndAndNotTokens(p, []LexTokenID{TokenNEWLINE,
		TokenSEMICOLON, TokenRBRACE}) {

		// Return without a value

		return self, err
	}

	var val *ASTNode

	if val, err = p.run(10); err == nil {
		self.Children = append(self.Children, val)
	}

	return self, err
}

/*
ndGuard is used to parse a conditional statement. An elif clause is flattened
into a further guard / block pair and a final else clause becomes a guard
which is always true.
*/
func ndGuard(p *parser, self *ASTNode) (*ASTNode, error) {
	var err error

	parseGuardAndStatements := func() error {

		exp, err := p.run(0)

		if err == nil {
			g := astNodeMap[TokenGUARD].instance(p, nil)
			g.Children = append(g.Children, exp)
			self.Children = append(self.Children, g)

			_, err = parseInnerStatements(p, self)
		}

		return err
	}

	if err = parseGuardAndStatements(); err == nil {

		if err = skipStatementSeparators(p); err == nil {

			for err == nil && IsNotEndAndToken(p, TokenELIF) {

				// Parse an elif

				if err = skipToken(p, TokenELIF); err == nil {
					if err = parseGuardAndStatements(); err == nil {
						err = skipStatementSeparators(p)
					}
				}
			}

			if err == nil && p.node.Token.ID == TokenELSE {

				// Parse else

				if err = skipToken(p, TokenELSE); err == nil {
					g := astNodeMap[TokenGUARD].instance(p, nil)
					g.Children = append(g.Children, astNodeMap[TokenTRUE].instance(p, nil))
					self.Children = append(self.Children, g)

					_, err = parseInnerStatements(p, self)
				}
			}
		}
	}

	return self, err
}

/*
ndLoop is used to parse a loop statement. The loop has the form

반복 <variable> = <start> : <end> { ... }
*/
func ndLoop(p *parser, self *ASTNode) (*ASTNode, error) {

	// Must specify the loop variable

	err := acceptChild(p, self, TokenIDENTIFIER)

	if err == nil {
		err = skipToken(p, TokenASSIGN)
	}

	if err == nil {
		var exp *ASTNode

		if exp, err = p.run(10); err == nil {
			self.Children = append(self.Children, exp)

			if err = skipToken(p, TokenCOLON); err == nil {

				if exp, err = p.run(10); err == nil {
					self.Children = append(self.Children, exp)
				}
			}
		}
	}

	if err == nil {

		// Parse the body

		self, err = parseInnerStatements(p, self)
	}

	return self, err
}

/*
ndWhile is used to parse a while statement.
*/
func ndWhile(p *parser, self *ASTNode) (*ASTNode, error) {

	exp, err := p.run(0)

	if err == nil {
		g := astNodeMap[TokenGUARD].instance(p, nil)
		g.Children = append(g.Children, exp)
		self.Children = append(self.Children, g)

		_, err = parseInnerStatements(p, self)
	}

	return self, err
}

/*
ndTry is used to parse a try block.
*/
func ndTry(p *parser, self *ASTNode) (*ASTNode, error) {

	_, err := parseInnerStatements(p, self)

	if err == nil {
		err = skipStatementSeparators(p)
	}

	if err == nil && p.node.Token.ID == TokenCATCH {
		catch := p.node

		if err = acceptChild(p, self, TokenCATCH); err == nil {

			// The catch variable is optional

			if p.node.Token.ID == TokenLPAREN {

				if err = skipToken(p, TokenLPAREN); err == nil {
					if err = acceptChild(p, catch, TokenIDENTIFIER); err == nil {
						err = skipToken(p, TokenRPAREN)
					}
				}
			}

			if err == nil {
				if _, err = parseInnerStatements(p, catch); err == nil {
					err = skipStatementSeparators(p)
				}
			}
		}
	}

	if err == nil && p.node.Token.ID == TokenFINALLY {
		finally := p.node

		if err = acceptChild(p, self, TokenFINALLY); err == nil {
			_, err = parseInnerStatements(p, finally)
		}
	}

	return self, err
}

/*
ndThrow is used to parse a throw statement.
*/
func ndThrow(p *parser, self *ASTNode) (*ASTNode, error) {

	val, err := p.run(10)

	if err == nil {
		self.Children = append(self.Children, val)
	}

	return self, err
}

/*
ndClass is used to parse a class declaration.
*/
func ndClass(p *parser, self *ASTNode) (*ASTNode, error) {

	// Must specify a class name

	err := acceptChild(p, self, TokenIDENTIFIER)

	if err == nil {

		// Parse the body

		self, err = parseInnerStatements(p, self)
	}

	return self, err
}

/*
ndPrint is used to parse a print statement.
*/
func ndPrint(p *parser, self *ASTNode) (*ASTNode, error) {
	var exp *ASTNode

	err := skipToken(p, TokenLPAREN)

	for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRPAREN}) {

		if exp, err = p.run(10); err == nil {
			self.Children = append(self.Children, exp)

			if p.node.Token.ID == TokenCOMMA {
				err = skipToken(p, TokenCOMMA)
			}
		}
	}

	if err == nil {
		err = skipToken(p, TokenRPAREN)
	}

	return self, err
}

/*
ndInput is used to parse an input expression with an optional prompt.
*/
func ndInput(p *parser, self *ASTNode) (*ASTNode, error) {

	err := skipToken(p, TokenLPAREN)

	if err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRPAREN}) {
		var exp *ASTNode

		if exp, err = p.run(10); err == nil {
			self.Children = append(self.Children, exp)
		}
	}

	if err == nil {
		err = skipToken(p, TokenRPAREN)
	}

	return self, err
}

// Standard left denotation functions
// ==================================

/*
ldInfix is used for infix operators.
*/
func ldInfix(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	right, err := p.run(self.binding)
	if err != nil {
		return nil, err
	}

	self.Children = append(self.Children, left)
	self.Children = append(self.Children, right)

	return self, nil
}

/*
ldInfixRight is used for right-associative infix operators.
*/
func ldInfixRight(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	right, err := p.run(self.binding - 1)
	if err != nil {
		return nil, err
	}

	self.Children = append(self.Children, left)
	self.Children = append(self.Children, right)

	return self, nil
}

/*
ldAssign is used for assignment statements. The left-hand side must be an
identifier, an index access or an attribute access.
*/
func ldAssign(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	if left.Name != NodeIDENTIFIER && left.Name != NodeINDEX &&
		left.Name != NodeATTRIBUTE {

		return nil, p.newParserError(ErrUnexpectedToken,
			fmt.Sprintf("invalid assignment target %v", left.Name), *self.Token)
	}

	return ldInfix(p, self, left)
}

/*
ldTernary is used to parse a ternary expression.
*/
func ldTernary(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	self.Children = append(self.Children, left)

	val, err := p.run(10)

	if err == nil {
		self.Children = append(self.Children, val)

		if err = skipToken(p, TokenCOLON); err == nil {

			if val, err = p.run(10); err == nil {
				self.Children = append(self.Children, val)
			}
		}
	}

	return self, err
}

/*
ldCall is used to parse function calls.
*/
func ldCall(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {
	var exp *ASTNode
	var err error

	fc := astNodeMap[TokenFUNCCALL].instance(p, self.Token)
	fc.Children = append(fc.Children, left)

	// Read in the call arguments

	for err == nil && IsNotEndAndNotTokens(p, []LexTokenID{TokenRPAREN}) {

		if exp, err = p.run(10); err == nil {
			fc.Children = append(fc.Children, exp)

			if p.node.Token.ID == TokenCOMMA {
				err = skipToken(p, TokenCOMMA)
			}
		}
	}

	if err == nil {
		err = skipToken(p, TokenRPAREN)
	}

	return fc, err
}

/*
ldIndex is used to parse an index access.
*/
func ldIndex(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	idx := astNodeMap[TokenINDEX].instance(p, self.Token)
	idx.Children = append(idx.Children, left)

	exp, err := p.run(10)

	if err == nil {
		idx.Children = append(idx.Children, exp)

		err = skipToken(p, TokenRBRACK)
	}

	return idx, err
}

/*
ldAttribute is used to parse an attribute access.
*/
func ldAttribute(p *parser, self *ASTNode, left *ASTNode) (*ASTNode, error) {

	self.Children = append(self.Children, left)

	return self, acceptChild(p, self, TokenIDENTIFIER)
}

// Helper functions
// ================

/*
IsNotEndAndToken checks if the next token is of a specific type or the end has been reached.
*/
func IsNotEndAndToken(p *parser, i LexTokenID) bool {
	return p.node != nil && p.node.Name != NodeEOF && p.node.Token.ID == i
}

/*
IsNotEndAndNotTokens checks if the next token is not of a specific type or the end has been reached.
*/
func IsNotEndAndNotTokens(p *parser, tokens []LexTokenID) bool {
	ret := p.node != nil && p.node.Name != NodeEOF
	for _, t := range tokens {
		ret = ret && p.node.Token.ID != t
	}
	return ret
}

/*
skipStatementSeparators skips newline and semicolon tokens.
*/
func skipStatementSeparators(p *parser) error {
	var err error

	for err == nil && (p.node.Token.ID == TokenNEWLINE ||
		p.node.Token.ID == TokenSEMICOLON) {

		err = skipToken(p, TokenNEWLINE, TokenSEMICOLON)
	}

	return err
}

/*
skipToken skips over a given token.
*/
func skipToken(p *parser, ids ...LexTokenID) error {
	var err error

	canSkip := func(id LexTokenID) bool {
		for _, i := range ids {
			if i == id {
				return true
			}
		}
		return false
	}

	if !canSkip(p.node.Token.ID) {
		if p.node.Token.ID == TokenEOF {
			return p.newParserError(ErrUnexpectedEnd, "", *p.node.Token)
		}
		return p.newParserError(ErrUnexpectedToken, p.node.Token.Val, *p.node.Token)
	}

	// This should never return an error unless we skip over EOF or complex tokens
	// like values

	p.node, err = p.next()

	return err
}

/*
acceptChild accepts the current token as a child.
*/
func acceptChild(p *parser, self *ASTNode, id LexTokenID) error {
	var err error

	current := p.node

	if p.node, err = p.next(); err == nil {

		if current.Token.ID == id {
			self.Children = append(self.Children, current)
		} else {
			err = p.newParserError(ErrUnexpectedToken, current.Token.Val, *current.Token)
		}
	}

	return err
}

/*
parseInnerStatements collects the inner statements of a block statement. It
is assumed that a block statement starts with a left brace '{' and ends with
a right brace '}'.
*/
func parseInnerStatements(p *parser, self *ASTNode) (*ASTNode, error) {

	// The opening brace may be on a following line

	err := skipStatementSeparators(p)

	if err == nil {
		err = skipToken(p, TokenLBRACE)
	}

	if err != nil {
		return nil, err
	}

	// Always create a statements node

	st := astNodeMap[TokenSTATEMENTS].instance(p, nil)
	self.Children = append(self.Children, st)

	for err == nil {

		if err = skipStatementSeparators(p); err != nil {
			break
		}

		if p.node.Token.ID == TokenRBRACE || p.node.Token.ID == TokenEOF {
			break
		}

		var n *ASTNode

		if n, err = p.run(0); err == nil {
			st.Children = append(st.Children, n)
		}
	}

	// Must end with a closing brace

	if err == nil {
		err = skipToken(p, TokenRBRACE)
	}

	return self, err
}
