package parser

import (
	"github.com/kdy1/go-oxc-core/internal/arena"
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/lexer"
)

// parseTSTypeAnnotation parses a TypeScript type annotation (: Type).
func (p *Parser) parseTSTypeAnnotation() (*ast.TSTypeAnnotation, error) {
	start := p.current.Pos

	tsType, err := p.parseTSType()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeAnnotation{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeAnnotation.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		TypeAnnotation: tsType,
	}), nil
}

// tryParseTSTypeAnnotation attempts to parse a type annotation, returning nil if it fails.
func (p *Parser) tryParseTSTypeAnnotation() (*ast.TSTypeAnnotation, error) {
	// This is a simplified version - in production, we'd need better lookahead
	return p.parseTSTypeAnnotation()
}

// parseTSType parses a TypeScript type.
func (p *Parser) parseTSType() (ast.TSNode, error) {
	return p.parseTSUnionOrIntersectionType()
}

// parseTSUnionOrIntersectionType parses union or intersection types (A | B or A & B).
func (p *Parser) parseTSUnionOrIntersectionType() (ast.TSNode, error) {
	// Parse first type
	typ, err := p.parseTSPrimaryType()
	if err != nil {
		return nil, err
	}

	// Check for union or intersection
	if p.current.Type == lexer.OR {
		// Union type
		types := []ast.TSNode{typ}
		for p.consume(lexer.OR) {
			t, err := p.parseTSPrimaryType()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		return arena.New(p.arena, ast.TSUnionType{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSUnionType.String(),
			},
			Types: types,
		}), nil
	} else if p.current.Type == lexer.AND {
		// Intersection type
		types := []ast.TSNode{typ}
		for p.consume(lexer.AND) {
			t, err := p.parseTSPrimaryType()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		return arena.New(p.arena, ast.TSIntersectionType{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSIntersectionType.String(),
			},
			Types: types,
		}), nil
	}

	return typ, nil
}

// parseTSPrimaryType parses a primary TypeScript type.
func (p *Parser) parseTSPrimaryType() (ast.TSNode, error) {
	start := p.current.Pos

	switch p.current.Type {
	case lexer.ANY:
		p.nextToken()
		return arena.New(p.arena, ast.TSAnyKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSAnyKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.UNKNOWN:
		p.nextToken()
		return arena.New(p.arena, ast.TSUnknownKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSUnknownKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.NEVER:
		p.nextToken()
		return arena.New(p.arena, ast.TSNeverKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSNeverKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.StringKeyword:
		p.nextToken()
		return arena.New(p.arena, ast.TSStringKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSStringKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.NumberKeyword:
		p.nextToken()
		return arena.New(p.arena, ast.TSNumberKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSNumberKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.BOOLEAN:
		p.nextToken()
		return arena.New(p.arena, ast.TSBooleanKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSBooleanKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.SYMBOL:
		p.nextToken()
		return arena.New(p.arena, ast.TSSymbolKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSSymbolKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.VOID:
		p.nextToken()
		return arena.New(p.arena, ast.TSVoidKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSVoidKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.UNDEFINED:
		p.nextToken()
		return arena.New(p.arena, ast.TSUndefinedKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSUndefinedKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.NULL:
		p.nextToken()
		return arena.New(p.arena, ast.TSNullKeyword{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSNullKeyword.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.THIS:
		p.nextToken()
		return arena.New(p.arena, ast.TSThisType{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSThisType.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
		}), nil

	case lexer.IDENT:
		return p.parseTSTypeReference()

	case lexer.LBRACE:
		return p.parseTSTypeLiteral()

	case lexer.LBRACK:
		return p.parseTSTupleType()

	case lexer.LPAREN:
		return p.parseTSFunctionType()

	case lexer.NEW:
		return p.parseTSConstructorType()

	case lexer.TYPEOF:
		return p.parseTSTypeQuery()

	case lexer.IMPORT:
		return p.parseTSImportType()

	case lexer.STRING, lexer.NUMBER, lexer.TRUE, lexer.FALSE:
		// Literal type
		tokType := p.current.Type
		raw := p.current.Literal
		lit := arena.New(p.arena, ast.Literal{
			BaseNode: ast.BaseNode{NodeType: ast.KindLiteral.String()},
			Raw:      raw,
		})
		switch tokType {
		case lexer.NUMBER:
			num, bigint := parseNumericLiteralText(raw)
			lit.Value = num
			lit.BigInt = bigint
		case lexer.TRUE:
			lit.Value = true
		case lexer.FALSE:
			lit.Value = false
		default:
			lit.Value = raw
		}
		p.nextToken()
		return arena.New(p.arena, ast.TSLiteralType{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSLiteralType.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
			Literal: lit,
		}), nil

	default:
		return nil, p.errorAtCurrent("expected type")
	}
}

// parseTSTypeReference parses a type reference (e.g., Foo, Array<T>).
func (p *Parser) parseTSTypeReference() (*ast.TSTypeReference, error) {
	start := p.current.Pos

	typeName, err := p.parseTSEntityName()
	if err != nil {
		return nil, err
	}

	var typeParameters *ast.TSTypeParameterInstantiation
	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSTypeReference{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeReference.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		TypeName:       typeName,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSEntityName parses a type name (identifier or qualified name).
func (p *Parser) parseTSEntityName() (ast.Node, error) {
	start := p.current.Pos

	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected identifier")
	}

	name := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{start, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	// Check for qualified name (e.g., A.B.C)
	for p.consume(lexer.PERIOD) {
		if p.current.Type != lexer.IDENT {
			return nil, p.errorAtCurrent("expected identifier after '.'")
		}

		right := p.internIdentifier(arena.New(p.arena, ast.Identifier{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindIdentifier.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Name: p.current.Literal,
		}))
		p.nextToken()

		name = p.internIdentifier(arena.New(p.arena, ast.Identifier{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindIdentifier.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
			Name: name.Name + "." + right.Name,
		}))
	}

	return name, nil
}

// parseTSTypeLiteral parses a type literal {a: string, b: number}.
func (p *Parser) parseTSTypeLiteral() (*ast.TSTypeLiteral, error) {
	start := p.current.Pos
	p.nextToken() // consume '{'

	members := []interface{}{}

	for !p.match(lexer.RBRACE) && !p.isAtEnd() {
		member, err := p.parseTSTypeElement()
		if err != nil {
			p.synchronize()
			continue
		}
		members = append(members, member)

		// Consume optional separator
		p.consume(lexer.SEMICOLON)
		p.consume(lexer.COMMA)
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeLiteral{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeLiteral.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Members: members,
	}), nil
}

// parseTSTypeElement parses a type element (property signature, method signature, etc.).
func (p *Parser) parseTSTypeElement() (ast.Node, error) {
	start := p.current.Pos

	// Check for index signature
	if p.current.Type == lexer.LBRACK {
		return p.parseTSIndexSignature()
	}

	// Check for call signature
	if p.current.Type == lexer.LPAREN || p.current.Type == lexer.LSS {
		return p.parseTSCallSignature()
	}

	// Check for construct signature
	if p.consume(lexer.NEW) {
		return p.parseTSConstructSignature()
	}

	// Parse property or method signature
	readonly := p.consume(lexer.READONLY)

	// Parse key
	computed := false
	var key ast.Expression
	var err error

	if p.consume(lexer.LBRACK) {
		computed = true
		key, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACK); err != nil {
			return nil, err
		}
	} else if p.current.Type == lexer.IDENT {
		key = p.internIdentifier(arena.New(p.arena, ast.Identifier{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindIdentifier.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Name: p.current.Literal,
		}))
		p.nextToken()
	} else {
		return nil, p.errorAtCurrent("expected property name")
	}

	optional := p.consume(lexer.QUESTION)

	// Check for method signature
	if p.current.Type == lexer.LPAREN || p.current.Type == lexer.LSS {
		// Method signature
		var typeParameters *ast.TSTypeParameterDeclaration
		if p.current.Type == lexer.LSS {
			typeParameters, err = p.parseTSTypeParameters()
			if err != nil {
				return nil, err
			}
		}

		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}

		params, err := p.parseTSFunctionParams()
		if err != nil {
			return nil, err
		}

		var returnType *ast.TSTypeAnnotation
		if p.consume(lexer.COLON) {
			returnType, err = p.parseTSTypeAnnotation()
			if err != nil {
				return nil, err
			}
		}

		return arena.New(p.arena, ast.TSMethodSignature{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindTSMethodSignature.String(),
				Range:    &ast.Range{start, p.current.Pos},
			},
			Key:            key,
			Computed:       computed,
			Optional:       optional,
			Params:         params,
			ReturnType:     returnType,
			TypeParameters: typeParameters,
		}), nil
	}

	// Property signature
	var typeAnnotation *ast.TSTypeAnnotation
	if p.consume(lexer.COLON) {
		typeAnnotation, err = p.parseTSTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSPropertySignature{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSPropertySignature.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Key:            key,
		Computed:       computed,
		Optional:       optional,
		Readonly:       readonly,
		TypeAnnotation: typeAnnotation,
	}), nil
}

// parseTSIndexSignature parses an index signature [key: string]: Type.
func (p *Parser) parseTSIndexSignature() (*ast.TSIndexSignature, error) {
	start := p.current.Pos
	p.nextToken() // consume '['

	// Parse parameter
	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected identifier")
	}

	param := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{p.current.Pos, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	// Parse parameter type
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}

	paramType, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	param.TypeAnnotation = paramType

	if err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}

	// Parse index type
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}

	typeAnnotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSIndexSignature{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSIndexSignature.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Parameters:     []ast.Pattern{param},
		TypeAnnotation: typeAnnotation,
	}), nil
}

// parseTSCallSignature parses a call signature (x: string): string.
func (p *Parser) parseTSCallSignature() (*ast.TSCallSignatureDeclaration, error) {
	start := p.current.Pos

	var typeParameters *ast.TSTypeParameterDeclaration
	var err error

	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseTSFunctionParams()
	if err != nil {
		return nil, err
	}

	var returnType *ast.TSTypeAnnotation
	if p.consume(lexer.COLON) {
		returnType, err = p.parseTSTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSCallSignatureDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSCallSignatureDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params:         params,
		ReturnType:     returnType,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSConstructSignature parses a construct signature new (x: string): Type.
func (p *Parser) parseTSConstructSignature() (*ast.TSConstructSignatureDeclaration, error) {
	start := p.current.Pos

	var typeParameters *ast.TSTypeParameterDeclaration
	var err error

	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseTSFunctionParams()
	if err != nil {
		return nil, err
	}

	var returnType *ast.TSTypeAnnotation
	if p.consume(lexer.COLON) {
		returnType, err = p.parseTSTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSConstructSignatureDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSConstructSignatureDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params:         params,
		ReturnType:     returnType,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSTupleType parses a tuple type [string, number].
func (p *Parser) parseTSTupleType() (*ast.TSTupleType, error) {
	start := p.current.Pos
	p.nextToken() // consume '['

	elementTypes := []ast.TSNode{}

	for !p.match(lexer.RBRACK) && !p.isAtEnd() {
		// Handle rest element
		if p.consume(lexer.ELLIPSIS) {
			elemType, err := p.parseTSType()
			if err != nil {
				return nil, err
			}
			elementTypes = append(elementTypes, arena.New(p.arena, ast.TSRestType{
				BaseNode: ast.BaseNode{
					NodeType: ast.KindTSRestType.String(),
				},
				TypeAnnotation: elemType,
			}))
			break
		}

		elemType, err := p.parseTSType()
		if err != nil {
			return nil, err
		}

		// Check for optional element
		if p.consume(lexer.QUESTION) {
			elemType = arena.New(p.arena, ast.TSOptionalType{
				BaseNode: ast.BaseNode{
					NodeType: ast.KindTSOptionalType.String(),
				},
				TypeAnnotation: elemType,
			})
		}

		elementTypes = append(elementTypes, elemType)

		if !p.consume(lexer.COMMA) {
			break
		}
	}

	if err := p.expect(lexer.RBRACK); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTupleType{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTupleType.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ElementTypes: elementTypes,
	}), nil
}

// parseTSFunctionType parses a function type (x: string) => string.
func (p *Parser) parseTSFunctionType() (*ast.TSFunctionType, error) {
	start := p.current.Pos

	var typeParameters *ast.TSTypeParameterDeclaration
	var err error

	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseTSFunctionParams()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.ARROW); err != nil {
		return nil, err
	}

	returnType, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSFunctionType{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSFunctionType.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params:         params,
		ReturnType:     returnType,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSConstructorType parses a constructor type new (x: string) => Type.
func (p *Parser) parseTSConstructorType() (*ast.TSConstructorType, error) {
	start := p.current.Pos
	p.nextToken() // consume 'new'

	var typeParameters *ast.TSTypeParameterDeclaration
	var err error

	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseTSFunctionParams()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.ARROW); err != nil {
		return nil, err
	}

	returnType, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSConstructorType{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSConstructorType.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params:         params,
		ReturnType:     returnType,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSTypeQuery parses a typeof query typeof x.
func (p *Parser) parseTSTypeQuery() (*ast.TSTypeQuery, error) {
	start := p.current.Pos
	p.nextToken() // consume 'typeof'

	exprName, err := p.parseTSEntityName()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeQuery{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeQuery.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ExprName: exprName,
	}), nil
}

// parseTSImportType parses an import type import('module').Type.
func (p *Parser) parseTSImportType() (*ast.TSImportType, error) {
	start := p.current.Pos
	p.nextToken() // consume 'import'

	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	if p.current.Type != lexer.STRING {
		return nil, p.errorAtCurrent("expected string literal")
	}

	literal := arena.New(p.arena, ast.Literal{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindLiteral.String(),
		},
		Value: p.current.Literal,
		Raw:   p.current.Literal,
	})
	p.nextToken()

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	argument := arena.New(p.arena, ast.TSLiteralType{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSLiteralType.String(),
		},
		Literal: literal,
	})

	var qualifier ast.Node
	var err error
	if p.consume(lexer.PERIOD) {
		qualifier, err = p.parseTSEntityName()
		if err != nil {
			return nil, err
		}
	}

	var typeParameters *ast.TSTypeParameterInstantiation
	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSImportType{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSImportType.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Argument:       argument,
		Qualifier:      qualifier,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSFunctionParams parses TypeScript function parameters.
func (p *Parser) parseTSFunctionParams() ([]ast.Pattern, error) {
	params := []ast.Pattern{}

	for !p.match(lexer.RPAREN) && !p.isAtEnd() {
		// Handle rest parameter
		if p.consume(lexer.ELLIPSIS) {
			param, err := p.parseBindingPattern()
			if err != nil {
				return nil, err
			}

			if id, ok := param.(*ast.Identifier); ok {
				if p.consume(lexer.COLON) {
					typeAnnotation, err := p.parseTSTypeAnnotation()
					if err != nil {
						return nil, err
					}
					id.TypeAnnotation = typeAnnotation
				}
			}

			params = append(params, arena.New(p.arena, ast.RestElement{
				BaseNode: ast.BaseNode{
					NodeType: ast.KindRestElement.String(),
				},
				Argument: param,
			}))
			break
		}

		param, err := p.parseBindingPattern()
		if err != nil {
			return nil, err
		}

		// Parse type annotation (TypeScript)
		if id, ok := param.(*ast.Identifier); ok {
			if p.consume(lexer.QUESTION) {
				id.Optional = true
			}
			if p.consume(lexer.COLON) {
				typeAnnotation, err := p.parseTSTypeAnnotation()
				if err != nil {
					return nil, err
				}
				id.TypeAnnotation = typeAnnotation
			}
		}

		// Parse default value
		if p.consume(lexer.ASSIGN) {
			init, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
			param = arena.New(p.arena, ast.AssignmentPattern{
				BaseNode: ast.BaseNode{
					NodeType: ast.KindAssignmentPattern.String(),
				},
				Left:  param,
				Right: init,
			})
		}

		params = append(params, param)

		if !p.consume(lexer.COMMA) {
			break
		}
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	return params, nil
}

// parseTSTypeParameters parses type parameter declaration <T, U>.
func (p *Parser) parseTSTypeParameters() (*ast.TSTypeParameterDeclaration, error) {
	start := p.current.Pos
	if err := p.expect(lexer.LSS); err != nil {
		return nil, err
	}

	params := []ast.TSTypeParameter{}

	for !p.match(lexer.GTR) && !p.isAtEnd() {
		param, err := p.parseTSTypeParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, *param)

		if !p.consume(lexer.COMMA) {
			break
		}
	}

	if err := p.expect(lexer.GTR); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeParameterDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeParameterDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params: params,
	}), nil
}

// parseTSTypeParameter parses a single type parameter T extends Constraint = Default.
func (p *Parser) parseTSTypeParameter() (*ast.TSTypeParameter, error) {
	start := p.current.Pos

	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected type parameter name")
	}

	name := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{p.current.Pos, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	var constraint ast.TSNode
	if p.consume(lexer.EXTENDS) {
		var err error
		constraint, err = p.parseTSType()
		if err != nil {
			return nil, err
		}
	}

	var defaultType ast.TSNode
	if p.consume(lexer.ASSIGN) {
		var err error
		defaultType, err = p.parseTSType()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSTypeParameter{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeParameter.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Name:       name,
		Constraint: constraint,
		Default:    defaultType,
	}), nil
}

// parseTSTypeArguments parses type arguments <string, number>.
func (p *Parser) parseTSTypeArguments() (*ast.TSTypeParameterInstantiation, error) {
	start := p.current.Pos
	if err := p.expect(lexer.LSS); err != nil {
		return nil, err
	}

	params := []ast.TSNode{}

	for !p.match(lexer.GTR) && !p.isAtEnd() {
		param, err := p.parseTSType()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.consume(lexer.COMMA) {
			break
		}
	}

	if err := p.expect(lexer.GTR); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeParameterInstantiation{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeParameterInstantiation.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Params: params,
	}), nil
}

// parseTSTypeAssertion parses a type assertion <Type>expr.
func (p *Parser) parseTSTypeAssertion() (*ast.TSTypeAssertion, error) {
	start := p.current.Pos
	p.nextToken() // consume '<'

	typeAnnotation, err := p.parseTSType()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.GTR); err != nil {
		return nil, err
	}

	expression, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSTypeAssertion{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeAssertion.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		TypeAnnotation: typeAnnotation,
		Expression:     expression,
	}), nil
}

// parseTSInterfaceDeclaration parses an interface declaration.
func (p *Parser) parseTSInterfaceDeclaration() (*ast.TSInterfaceDeclaration, error) {
	start := p.current.Pos
	p.nextToken() // consume 'interface'

	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected interface name")
	}

	id := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{p.current.Pos, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	// Parse type parameters
	var typeParameters *ast.TSTypeParameterDeclaration
	if p.current.Type == lexer.LSS {
		var err error
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	// Parse extends clause
	var extends []ast.TSInterfaceHeritage
	if p.consume(lexer.EXTENDS) {
		for {
			heritage, err := p.parseTSInterfaceHeritage()
			if err != nil {
				return nil, err
			}
			extends = append(extends, *heritage)

			if !p.consume(lexer.COMMA) {
				break
			}
		}
	}

	// Parse body
	body, err := p.parseTSInterfaceBody()
	if err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSInterfaceDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSInterfaceDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ID:             id,
		TypeParameters: typeParameters,
		Extends:        extends,
		Body:           body,
	}), nil
}

// parseTSInterfaceHeritage parses an interface heritage clause.
func (p *Parser) parseTSInterfaceHeritage() (*ast.TSInterfaceHeritage, error) {
	start := p.current.Pos

	expressionNode, err := p.parseTSEntityName()
	if err != nil {
		return nil, err
	}

	// Cast to Expression - TSEntityName returns Identifier/TSQualifiedName which implement Expression
	expression, _ := expressionNode.(ast.Expression)

	var typeParameters *ast.TSTypeParameterInstantiation
	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSInterfaceHeritage{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSInterfaceHeritage.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Expression:     expression,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSInterfaceBody parses an interface body.
func (p *Parser) parseTSInterfaceBody() (*ast.TSInterfaceBody, error) {
	start := p.current.Pos
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	body := []interface{}{}

	for !p.match(lexer.RBRACE) && !p.isAtEnd() {
		member, err := p.parseTSTypeElement()
		if err != nil {
			p.synchronize()
			continue
		}
		body = append(body, member)

		// Consume optional separator
		p.consume(lexer.SEMICOLON)
		p.consume(lexer.COMMA)
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSInterfaceBody{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSInterfaceBody.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Body: body,
	}), nil
}

// parseTSTypeAliasDeclaration parses a type alias declaration.
func (p *Parser) parseTSTypeAliasDeclaration() (*ast.TSTypeAliasDeclaration, error) {
	start := p.current.Pos
	p.nextToken() // consume 'type'

	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected type alias name")
	}

	id := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{p.current.Pos, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	// Parse type parameters
	var typeParameters *ast.TSTypeParameterDeclaration
	if p.current.Type == lexer.LSS {
		var err error
		typeParameters, err = p.parseTSTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}

	typeAnnotation, err := p.parseTSType()
	if err != nil {
		return nil, err
	}

	p.consume(lexer.SEMICOLON)

	return arena.New(p.arena, ast.TSTypeAliasDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSTypeAliasDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ID:             id,
		TypeAnnotation: typeAnnotation,
		TypeParameters: typeParameters,
	}), nil
}

// parseTSEnumDeclaration parses an enum declaration.
func (p *Parser) parseTSEnumDeclaration() (*ast.TSEnumDeclaration, error) {
	start := p.current.Pos
	p.nextToken() // consume 'enum'

	if p.current.Type != lexer.IDENT {
		return nil, p.errorAtCurrent("expected enum name")
	}

	id := p.internIdentifier(arena.New(p.arena, ast.Identifier{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindIdentifier.String(),
			Range:    &ast.Range{p.current.Pos, p.current.End},
		},
		Name: p.current.Literal,
	}))
	p.nextToken()

	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	members := []ast.TSEnumMember{}

	for !p.match(lexer.RBRACE) && !p.isAtEnd() {
		member, err := p.parseTSEnumMember()
		if err != nil {
			p.synchronize()
			continue
		}
		members = append(members, *member)

		if !p.consume(lexer.COMMA) {
			break
		}
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSEnumDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSEnumDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ID:      id,
		Members: members,
	}), nil
}

// parseTSEnumMember parses an enum member.
func (p *Parser) parseTSEnumMember() (*ast.TSEnumMember, error) {
	start := p.current.Pos

	var id ast.Node
	if p.current.Type == lexer.IDENT {
		id = p.internIdentifier(arena.New(p.arena, ast.Identifier{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindIdentifier.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Name: p.current.Literal,
		}))
		p.nextToken()
	} else if p.current.Type == lexer.STRING {
		id = arena.New(p.arena, ast.Literal{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindLiteral.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Value: p.current.Literal,
			Raw:   p.current.Literal,
		})
		p.nextToken()
	} else {
		return nil, p.errorAtCurrent("expected enum member name")
	}

	var initializer ast.Expression
	if p.consume(lexer.ASSIGN) {
		var err error
		initializer, err = p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSEnumMember{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSEnumMember.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ID:          id,
		Initializer: initializer,
	}), nil
}

// parseTSModuleDeclaration parses a module/namespace declaration.
func (p *Parser) parseTSModuleDeclaration() (*ast.TSModuleDeclaration, error) {
	start := p.current.Pos
	p.nextToken() // consume 'namespace' or 'module'

	if p.current.Type != lexer.IDENT && p.current.Type != lexer.STRING {
		return nil, p.errorAtCurrent("expected module name")
	}

	var id ast.Node
	if p.current.Type == lexer.IDENT {
		id = p.internIdentifier(arena.New(p.arena, ast.Identifier{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindIdentifier.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Name: p.current.Literal,
		}))
	} else {
		id = arena.New(p.arena, ast.Literal{
			BaseNode: ast.BaseNode{
				NodeType: ast.KindLiteral.String(),
				Range:    &ast.Range{p.current.Pos, p.current.End},
			},
			Value: p.current.Literal,
			Raw:   p.current.Literal,
		})
	}
	p.nextToken()

	// Parse body
	var body ast.Node
	if p.current.Type == lexer.LBRACE {
		bodyBlock, err := p.parseTSModuleBlock()
		if err != nil {
			return nil, err
		}
		body = bodyBlock
	} else {
		return nil, p.errorAtCurrent("expected module body")
	}

	return arena.New(p.arena, ast.TSModuleDeclaration{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSModuleDeclaration.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		ID:   id,
		Body: body,
	}), nil
}

// parseTSModuleBlock parses a module block.
func (p *Parser) parseTSModuleBlock() (*ast.TSModuleBlock, error) {
	start := p.current.Pos
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	body := []ast.Statement{}

	for !p.match(lexer.RBRACE) && !p.isAtEnd() {
		stmt, err := p.parseStatementListItem()
		if err != nil {
			p.synchronize()
			continue
		}
		body = append(body, stmt)
	}

	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return arena.New(p.arena, ast.TSModuleBlock{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSModuleBlock.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Body: body,
	}), nil
}

// parseTSClassImplements parses a class implements clause.
func (p *Parser) parseTSClassImplements() (*ast.TSClassImplements, error) {
	start := p.current.Pos

	expressionNode, err := p.parseTSEntityName()
	if err != nil {
		return nil, err
	}

	// Cast to Expression - TSEntityName returns Identifier/TSQualifiedName which implement Expression
	expression, _ := expressionNode.(ast.Expression)

	var typeParameters *ast.TSTypeParameterInstantiation
	if p.current.Type == lexer.LSS {
		typeParameters, err = p.parseTSTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	return arena.New(p.arena, ast.TSClassImplements{
		BaseNode: ast.BaseNode{
			NodeType: ast.KindTSClassImplements.String(),
			Range:    &ast.Range{start, p.current.Pos},
		},
		Expression:     expression,
		TypeParameters: typeParameters,
	}), nil
}
