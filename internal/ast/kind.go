package ast

// Kind represents the type of an AST node.
// This is equivalent to AST_NODE_TYPES in TypeScript ESTree.
type Kind int

// AST Node Types - Complete enumeration of all ESTree and TypeScript-specific node types.
// Based on: https://typescript-eslint.io/packages/typescript-estree/ast-spec/
const (
	// KindUnknown represents an unknown or uninitialized node type.
	KindUnknown Kind = iota

	// ==================== Program & Core ====================

	// KindProgram represents the root node of an AST.
	KindProgram

	// ==================== Identifiers & Literals ====================

	// KindIdentifier represents an identifier (variable name, function name, etc.).
	KindIdentifier
	// KindPrivateIdentifier represents a private identifier (#field).
	KindPrivateIdentifier
	// KindLiteral represents a literal value (string, number, boolean, null, regex).
	KindLiteral

	// ==================== Expressions ====================

	// KindThisExpression represents the 'this' keyword.
	KindThisExpression
	// KindSuper represents the 'super' keyword.
	KindSuper

	// KindArrayExpression represents an array literal [1, 2, 3].
	KindArrayExpression
	// KindObjectExpression represents an object literal {a: 1, b: 2}.
	KindObjectExpression
	// KindProperty represents a property in an object expression.
	KindProperty

	// KindFunctionExpression represents a function expression.
	KindFunctionExpression
	// KindArrowFunctionExpression represents an arrow function expression.
	KindArrowFunctionExpression

	// KindClassExpression represents a class expression.
	KindClassExpression

	// KindUnaryExpression represents a unary operation (+x, -x, !x, ~x, typeof x, void x, delete x).
	KindUnaryExpression
	// KindUpdateExpression represents an update expression (++x, x++, --x, x--).
	KindUpdateExpression

	// KindBinaryExpression represents a binary operation (x + y, x - y, x * y, etc.).
	KindBinaryExpression
	// KindLogicalExpression represents a logical operation (x && y, x || y, x ?? y).
	KindLogicalExpression
	// KindAssignmentExpression represents an assignment (x = y, x += y, etc.).
	KindAssignmentExpression

	// KindConditionalExpression represents a ternary conditional (x ? y : z).
	KindConditionalExpression
	// KindSequenceExpression represents a sequence of expressions (x, y, z).
	KindSequenceExpression

	// KindMemberExpression represents a member access (obj.prop, obj[prop]).
	KindMemberExpression
	// KindCallExpression represents a function call.
	KindCallExpression
	// KindNewExpression represents a new expression (new Foo()).
	KindNewExpression
	// KindMetaProperty represents a meta property (new.target, import.meta).
	KindMetaProperty

	// KindTemplateLiteral represents a template literal `hello ${world}`.
	KindTemplateLiteral
	// KindTaggedTemplateExpression represents a tagged template expression.
	KindTaggedTemplateExpression
	// KindTemplateElement represents an element in a template literal.
	KindTemplateElement

	// KindYieldExpression represents a yield expression.
	KindYieldExpression
	// KindAwaitExpression represents an await expression.
	KindAwaitExpression
	// KindChainExpression represents an optional chaining expression (obj?.prop).
	KindChainExpression
	// KindImportExpression represents a dynamic import expression import().
	KindImportExpression
	// KindSpreadElement represents a spread element (...x).
	KindSpreadElement

	// ==================== Statements ====================

	// KindBlockStatement represents a block of statements {}.
	KindBlockStatement
	// KindExpressionStatement represents an expression used as a statement.
	KindExpressionStatement
	// KindEmptyStatement represents an empty statement (;).
	KindEmptyStatement
	// KindDebuggerStatement represents a debugger statement.
	KindDebuggerStatement
	// KindReturnStatement represents a return statement.
	KindReturnStatement
	// KindBreakStatement represents a break statement.
	KindBreakStatement
	// KindContinueStatement represents a continue statement.
	KindContinueStatement
	// KindLabeledStatement represents a labeled statement.
	KindLabeledStatement

	// KindIfStatement represents an if statement.
	KindIfStatement
	// KindSwitchStatement represents a switch statement.
	KindSwitchStatement
	// KindSwitchCase represents a case or default clause in a switch statement.
	KindSwitchCase

	// KindWhileStatement represents a while loop.
	KindWhileStatement
	// KindDoWhileStatement represents a do-while loop.
	KindDoWhileStatement
	// KindForStatement represents a for loop.
	KindForStatement
	// KindForInStatement represents a for-in loop.
	KindForInStatement
	// KindForOfStatement represents a for-of loop.
	KindForOfStatement

	// KindThrowStatement represents a throw statement.
	KindThrowStatement
	// KindTryStatement represents a try-catch-finally statement.
	KindTryStatement
	// KindCatchClause represents a catch clause.
	KindCatchClause

	// KindWithStatement represents a with statement.
	KindWithStatement

	// ==================== Declarations ====================

	// KindVariableDeclaration represents a variable declaration (var, let, const).
	KindVariableDeclaration
	// KindVariableDeclarator represents a variable declarator.
	KindVariableDeclarator
	// KindFunctionDeclaration represents a function declaration.
	KindFunctionDeclaration

	// KindClassDeclaration represents a class declaration.
	KindClassDeclaration
	// KindClassBody represents the body of a class.
	KindClassBody
	// KindMethodDefinition represents a method in a class.
	KindMethodDefinition
	// KindPropertyDefinition represents a property in a class.
	KindPropertyDefinition
	// KindAccessorProperty represents an accessor property (getter/setter shorthand).
	KindAccessorProperty
	// KindStaticBlock represents a static initialization block in a class.
	KindStaticBlock

	// KindImportDeclaration represents an import declaration.
	KindImportDeclaration
	// KindImportSpecifier represents a named import specifier.
	KindImportSpecifier
	// KindImportDefaultSpecifier represents a default import specifier.
	KindImportDefaultSpecifier
	// KindImportNamespaceSpecifier represents a namespace import specifier (* as x).
	KindImportNamespaceSpecifier
	// KindImportAttribute represents an import attribute (with clause).
	KindImportAttribute

	// KindExportNamedDeclaration represents a named export declaration.
	KindExportNamedDeclaration
	// KindExportDefaultDeclaration represents a default export declaration.
	KindExportDefaultDeclaration
	// KindExportAllDeclaration represents an export * declaration.
	KindExportAllDeclaration
	// KindExportSpecifier represents an export specifier.
	KindExportSpecifier

	// ==================== Patterns (Destructuring) ====================

	// KindArrayPattern represents an array destructuring pattern.
	KindArrayPattern
	// KindObjectPattern represents an object destructuring pattern.
	KindObjectPattern
	// KindRestElement represents a rest element in destructuring (...rest).
	KindRestElement
	// KindAssignmentPattern represents a default value in destructuring (x = 1).
	KindAssignmentPattern

	// ==================== JSX (React) ====================

	// KindJSXElement represents a JSX element.
	KindJSXElement
	// KindJSXFragment represents a JSX fragment (<>...</>).
	KindJSXFragment
	// KindJSXOpeningElement represents a JSX opening element (<div>).
	KindJSXOpeningElement
	// KindJSXClosingElement represents a JSX closing element (</div>).
	KindJSXClosingElement
	// KindJSXOpeningFragment represents a JSX opening fragment (<>).
	KindJSXOpeningFragment
	// KindJSXClosingFragment represents a JSX closing fragment (</>).
	KindJSXClosingFragment

	// KindJSXAttribute represents a JSX attribute.
	KindJSXAttribute
	// KindJSXSpreadAttribute represents a JSX spread attribute ({...props}).
	KindJSXSpreadAttribute
	// KindJSXIdentifier represents a JSX identifier.
	KindJSXIdentifier
	// KindJSXNamespacedName represents a JSX namespaced name (ns:name).
	KindJSXNamespacedName
	// KindJSXMemberExpression represents a JSX member expression (obj.prop).
	KindJSXMemberExpression
	// KindJSXExpressionContainer represents a JSX expression container {expr}.
	KindJSXExpressionContainer
	// KindJSXEmptyExpression represents an empty JSX expression {}.
	KindJSXEmptyExpression
	// KindJSXText represents JSX text content.
	KindJSXText
	// KindJSXSpreadChild represents a JSX spread child ({...children}).
	KindJSXSpreadChild

	// ==================== Decorators ====================

	// KindDecorator represents a decorator (@decorator).
	KindDecorator

	// ==================== TypeScript Type Keywords ====================

	// KindTSAnyKeyword represents the 'any' type keyword.
	KindTSAnyKeyword
	// KindTSBigIntKeyword represents the 'bigint' type keyword.
	KindTSBigIntKeyword
	// KindTSBooleanKeyword represents the 'boolean' type keyword.
	KindTSBooleanKeyword
	// KindTSIntrinsicKeyword represents the 'intrinsic' type keyword.
	KindTSIntrinsicKeyword
	// KindTSNeverKeyword represents the 'never' type keyword.
	KindTSNeverKeyword
	// KindTSNullKeyword represents the 'null' type keyword.
	KindTSNullKeyword
	// KindTSNumberKeyword represents the 'number' type keyword.
	KindTSNumberKeyword
	// KindTSObjectKeyword represents the 'object' type keyword.
	KindTSObjectKeyword
	// KindTSStringKeyword represents the 'string' type keyword.
	KindTSStringKeyword
	// KindTSSymbolKeyword represents the 'symbol' type keyword.
	KindTSSymbolKeyword
	// KindTSUndefinedKeyword represents the 'undefined' type keyword.
	KindTSUndefinedKeyword
	// KindTSUnknownKeyword represents the 'unknown' type keyword.
	KindTSUnknownKeyword
	// KindTSVoidKeyword represents the 'void' type keyword.
	KindTSVoidKeyword

	// ==================== TypeScript Type Expressions ====================

	// KindTSArrayType represents an array type (T[]).
	KindTSArrayType
	// KindTSTupleType represents a tuple type ([T, U]).
	KindTSTupleType
	// KindTSUnionType represents a union type (T | U).
	KindTSUnionType
	// KindTSIntersectionType represents an intersection type (T & U).
	KindTSIntersectionType
	// KindTSConditionalType represents a conditional type (T extends U ? X : Y).
	KindTSConditionalType
	// KindTSInferType represents an infer type (infer T).
	KindTSInferType
	// KindTSTypeReference represents a type reference (Foo, Array<T>).
	KindTSTypeReference
	// KindTSTypeQuery represents a typeof type query (typeof x).
	KindTSTypeQuery
	// KindTSTypeLiteral represents a type literal ({a: string}).
	KindTSTypeLiteral
	// KindTSFunctionType represents a function type ((x: T) => U).
	KindTSFunctionType
	// KindTSConstructorType represents a constructor type (new () => T).
	KindTSConstructorType
	// KindTSMappedType represents a mapped type ({[K in T]: U}).
	KindTSMappedType
	// KindTSLiteralType represents a literal type ('foo', 42).
	KindTSLiteralType
	// KindTSIndexedAccessType represents an indexed access type (T[K]).
	KindTSIndexedAccessType
	// KindTSOptionalType represents an optional type (T?).
	KindTSOptionalType
	// KindTSRestType represents a rest type (...T[]).
	KindTSRestType
	// KindTSThisType represents the 'this' type.
	KindTSThisType
	// KindTSTypeOperator represents a type operator (keyof T, readonly T).
	KindTSTypeOperator
	// KindTSTemplateLiteralType represents a template literal type.
	KindTSTemplateLiteralType

	// ==================== TypeScript Type Declarations ====================

	// KindTSTypeAnnotation represents a type annotation (: T).
	KindTSTypeAnnotation
	// KindTSTypeAliasDeclaration represents a type alias declaration.
	KindTSTypeAliasDeclaration
	// KindTSInterfaceDeclaration represents an interface declaration.
	KindTSInterfaceDeclaration
	// KindTSInterfaceBody represents the body of an interface.
	KindTSInterfaceBody
	// KindTSInterfaceHeritage represents an interface extends clause.
	KindTSInterfaceHeritage
	// KindTSEnumDeclaration represents an enum declaration.
	KindTSEnumDeclaration
	// KindTSEnumBody represents the body of an enum.
	KindTSEnumBody
	// KindTSEnumMember represents a member of an enum.
	KindTSEnumMember
	// KindTSModuleDeclaration represents a module or namespace declaration.
	KindTSModuleDeclaration
	// KindTSModuleBlock represents the body of a module.
	KindTSModuleBlock

	// ==================== TypeScript Type Components ====================

	// KindTSTypeParameter represents a type parameter (<T>).
	KindTSTypeParameter
	// KindTSTypeParameterDeclaration represents a type parameter declaration.
	KindTSTypeParameterDeclaration
	// KindTSTypeParameterInstantiation represents a type parameter instantiation.
	KindTSTypeParameterInstantiation
	// KindTSCallSignatureDeclaration represents a call signature.
	KindTSCallSignatureDeclaration
	// KindTSConstructSignatureDeclaration represents a construct signature.
	KindTSConstructSignatureDeclaration
	// KindTSPropertySignature represents a property signature in a type.
	KindTSPropertySignature
	// KindTSMethodSignature represents a method signature in a type.
	KindTSMethodSignature
	// KindTSIndexSignature represents an index signature.
	KindTSIndexSignature
	// KindTSNamedTupleMember represents a named tuple member.
	KindTSNamedTupleMember

	// ==================== TypeScript Type Assertions & Expressions ====================

	// KindTSAsExpression represents a type assertion using 'as' (x as T).
	KindTSAsExpression
	// KindTSTypeAssertion represents a type assertion using angle brackets (<T>x).
	KindTSTypeAssertion
	// KindTSNonNullExpression represents a non-null assertion (x!).
	KindTSNonNullExpression
	// KindTSSatisfiesExpression represents a satisfies expression (x satisfies T).
	KindTSSatisfiesExpression
	// KindTSInstantiationExpression represents a type instantiation (Foo<T>).
	KindTSInstantiationExpression

	// ==================== TypeScript Type Predicates ====================

	// KindTSTypePredicate represents a type predicate (x is T).
	KindTSTypePredicate

	// ==================== TypeScript Modifier Keywords ====================

	// KindTSAbstractKeyword represents the 'abstract' modifier keyword.
	KindTSAbstractKeyword
	// KindTSAsyncKeyword represents the 'async' modifier keyword.
	KindTSAsyncKeyword
	// KindTSDeclareKeyword represents the 'declare' modifier keyword.
	KindTSDeclareKeyword
	// KindTSExportKeyword represents the 'export' modifier keyword.
	KindTSExportKeyword
	// KindTSPrivateKeyword represents the 'private' modifier keyword.
	KindTSPrivateKeyword
	// KindTSProtectedKeyword represents the 'protected' modifier keyword.
	KindTSProtectedKeyword
	// KindTSPublicKeyword represents the 'public' modifier keyword.
	KindTSPublicKeyword
	// KindTSReadonlyKeyword represents the 'readonly' modifier keyword.
	KindTSReadonlyKeyword
	// KindTSStaticKeyword represents the 'static' modifier keyword.
	KindTSStaticKeyword

	// ==================== TypeScript Abstract Members ====================

	// KindTSAbstractAccessorProperty represents an abstract accessor property.
	KindTSAbstractAccessorProperty
	// KindTSAbstractMethodDefinition represents an abstract method.
	KindTSAbstractMethodDefinition
	// KindTSAbstractPropertyDefinition represents an abstract property.
	KindTSAbstractPropertyDefinition

	// ==================== TypeScript Import/Export ====================

	// KindTSImportEqualsDeclaration represents an import = declaration.
	KindTSImportEqualsDeclaration
	// KindTSImportType represents an import type (import('module').Type).
	KindTSImportType
	// KindTSExternalModuleReference represents an external module reference.
	KindTSExternalModuleReference
	// KindTSExportAssignment represents an export = statement.
	KindTSExportAssignment
	// KindTSNamespaceExportDeclaration represents a namespace export declaration.
	KindTSNamespaceExportDeclaration

	// ==================== TypeScript Other ====================

	// KindTSQualifiedName represents a qualified name (A.B.C).
	KindTSQualifiedName
	// KindTSParameterProperty represents a parameter property in a constructor.
	KindTSParameterProperty
	// KindTSDeclareFunction represents a declare function statement.
	KindTSDeclareFunction
	// KindTSEmptyBodyFunctionExpression represents a function with no body.
	KindTSEmptyBodyFunctionExpression
	// KindTSClassImplements represents a class implements clause.
	KindTSClassImplements
)

//nolint:gochecknoglobals // Map is used for efficient string conversion
var nodeTypeNames = map[Kind]string{
	KindUnknown:                         "Unknown",
	KindProgram:                         "Program",
	KindIdentifier:                      "Identifier",
	KindPrivateIdentifier:               "PrivateIdentifier",
	KindLiteral:                         "Literal",
	KindThisExpression:                  "ThisExpression",
	KindSuper:                           "Super",
	KindArrayExpression:                 "ArrayExpression",
	KindObjectExpression:                "ObjectExpression",
	KindProperty:                        "Property",
	KindFunctionExpression:              "FunctionExpression",
	KindArrowFunctionExpression:         "ArrowFunctionExpression",
	KindClassExpression:                 "ClassExpression",
	KindUnaryExpression:                 "UnaryExpression",
	KindUpdateExpression:                "UpdateExpression",
	KindBinaryExpression:                "BinaryExpression",
	KindLogicalExpression:               "LogicalExpression",
	KindAssignmentExpression:            "AssignmentExpression",
	KindConditionalExpression:           "ConditionalExpression",
	KindSequenceExpression:              "SequenceExpression",
	KindMemberExpression:                "MemberExpression",
	KindCallExpression:                  "CallExpression",
	KindNewExpression:                   "NewExpression",
	KindMetaProperty:                    "MetaProperty",
	KindTemplateLiteral:                 "TemplateLiteral",
	KindTaggedTemplateExpression:        "TaggedTemplateExpression",
	KindTemplateElement:                 "TemplateElement",
	KindYieldExpression:                 "YieldExpression",
	KindAwaitExpression:                 "AwaitExpression",
	KindChainExpression:                 "ChainExpression",
	KindImportExpression:                "ImportExpression",
	KindSpreadElement:                   "SpreadElement",
	KindBlockStatement:                  "BlockStatement",
	KindExpressionStatement:             "ExpressionStatement",
	KindEmptyStatement:                  "EmptyStatement",
	KindDebuggerStatement:               "DebuggerStatement",
	KindReturnStatement:                 "ReturnStatement",
	KindBreakStatement:                  "BreakStatement",
	KindContinueStatement:               "ContinueStatement",
	KindLabeledStatement:                "LabeledStatement",
	KindIfStatement:                     "IfStatement",
	KindSwitchStatement:                 "SwitchStatement",
	KindSwitchCase:                      "SwitchCase",
	KindWhileStatement:                  "WhileStatement",
	KindDoWhileStatement:                "DoWhileStatement",
	KindForStatement:                    "ForStatement",
	KindForInStatement:                  "ForInStatement",
	KindForOfStatement:                  "ForOfStatement",
	KindThrowStatement:                  "ThrowStatement",
	KindTryStatement:                    "TryStatement",
	KindCatchClause:                     "CatchClause",
	KindWithStatement:                   "WithStatement",
	KindVariableDeclaration:             "VariableDeclaration",
	KindVariableDeclarator:              "VariableDeclarator",
	KindFunctionDeclaration:             "FunctionDeclaration",
	KindClassDeclaration:                "ClassDeclaration",
	KindClassBody:                       "ClassBody",
	KindMethodDefinition:                "MethodDefinition",
	KindPropertyDefinition:              "PropertyDefinition",
	KindAccessorProperty:                "AccessorProperty",
	KindStaticBlock:                     "StaticBlock",
	KindImportDeclaration:               "ImportDeclaration",
	KindImportSpecifier:                 "ImportSpecifier",
	KindImportDefaultSpecifier:          "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier:        "ImportNamespaceSpecifier",
	KindImportAttribute:                 "ImportAttribute",
	KindExportNamedDeclaration:          "ExportNamedDeclaration",
	KindExportDefaultDeclaration:        "ExportDefaultDeclaration",
	KindExportAllDeclaration:            "ExportAllDeclaration",
	KindExportSpecifier:                 "ExportSpecifier",
	KindArrayPattern:                    "ArrayPattern",
	KindObjectPattern:                   "ObjectPattern",
	KindRestElement:                     "RestElement",
	KindAssignmentPattern:               "AssignmentPattern",
	KindJSXElement:                      "JSXElement",
	KindJSXFragment:                     "JSXFragment",
	KindJSXOpeningElement:               "JSXOpeningElement",
	KindJSXClosingElement:               "JSXClosingElement",
	KindJSXOpeningFragment:              "JSXOpeningFragment",
	KindJSXClosingFragment:              "JSXClosingFragment",
	KindJSXAttribute:                    "JSXAttribute",
	KindJSXSpreadAttribute:              "JSXSpreadAttribute",
	KindJSXIdentifier:                   "JSXIdentifier",
	KindJSXNamespacedName:               "JSXNamespacedName",
	KindJSXMemberExpression:             "JSXMemberExpression",
	KindJSXExpressionContainer:          "JSXExpressionContainer",
	KindJSXEmptyExpression:              "JSXEmptyExpression",
	KindJSXText:                         "JSXText",
	KindJSXSpreadChild:                  "JSXSpreadChild",
	KindDecorator:                       "Decorator",
	KindTSAnyKeyword:                    "TSAnyKeyword",
	KindTSBigIntKeyword:                 "TSBigIntKeyword",
	KindTSBooleanKeyword:                "TSBooleanKeyword",
	KindTSIntrinsicKeyword:              "TSIntrinsicKeyword",
	KindTSNeverKeyword:                  "TSNeverKeyword",
	KindTSNullKeyword:                   "TSNullKeyword",
	KindTSNumberKeyword:                 "TSNumberKeyword",
	KindTSObjectKeyword:                 "TSObjectKeyword",
	KindTSStringKeyword:                 "TSStringKeyword",
	KindTSSymbolKeyword:                 "TSSymbolKeyword",
	KindTSUndefinedKeyword:              "TSUndefinedKeyword",
	KindTSUnknownKeyword:                "TSUnknownKeyword",
	KindTSVoidKeyword:                   "TSVoidKeyword",
	KindTSArrayType:                     "TSArrayType",
	KindTSTupleType:                     "TSTupleType",
	KindTSUnionType:                     "TSUnionType",
	KindTSIntersectionType:              "TSIntersectionType",
	KindTSConditionalType:               "TSConditionalType",
	KindTSInferType:                     "TSInferType",
	KindTSTypeReference:                 "TSTypeReference",
	KindTSTypeQuery:                     "TSTypeQuery",
	KindTSTypeLiteral:                   "TSTypeLiteral",
	KindTSFunctionType:                  "TSFunctionType",
	KindTSConstructorType:               "TSConstructorType",
	KindTSMappedType:                    "TSMappedType",
	KindTSLiteralType:                   "TSLiteralType",
	KindTSIndexedAccessType:             "TSIndexedAccessType",
	KindTSOptionalType:                  "TSOptionalType",
	KindTSRestType:                      "TSRestType",
	KindTSThisType:                      "TSThisType",
	KindTSTypeOperator:                  "TSTypeOperator",
	KindTSTemplateLiteralType:           "TSTemplateLiteralType",
	KindTSTypeAnnotation:                "TSTypeAnnotation",
	KindTSTypeAliasDeclaration:          "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:          "TSInterfaceDeclaration",
	KindTSInterfaceBody:                 "TSInterfaceBody",
	KindTSInterfaceHeritage:             "TSInterfaceHeritage",
	KindTSEnumDeclaration:               "TSEnumDeclaration",
	KindTSEnumBody:                      "TSEnumBody",
	KindTSEnumMember:                    "TSEnumMember",
	KindTSModuleDeclaration:             "TSModuleDeclaration",
	KindTSModuleBlock:                   "TSModuleBlock",
	KindTSTypeParameter:                 "TSTypeParameter",
	KindTSTypeParameterDeclaration:      "TSTypeParameterDeclaration",
	KindTSTypeParameterInstantiation:    "TSTypeParameterInstantiation",
	KindTSCallSignatureDeclaration:      "TSCallSignatureDeclaration",
	KindTSConstructSignatureDeclaration: "TSConstructSignatureDeclaration",
	KindTSPropertySignature:             "TSPropertySignature",
	KindTSMethodSignature:               "TSMethodSignature",
	KindTSIndexSignature:                "TSIndexSignature",
	KindTSNamedTupleMember:              "TSNamedTupleMember",
	KindTSAsExpression:                  "TSAsExpression",
	KindTSTypeAssertion:                 "TSTypeAssertion",
	KindTSNonNullExpression:             "TSNonNullExpression",
	KindTSSatisfiesExpression:           "TSSatisfiesExpression",
	KindTSInstantiationExpression:       "TSInstantiationExpression",
	KindTSTypePredicate:                 "TSTypePredicate",
	KindTSAbstractKeyword:               "TSAbstractKeyword",
	KindTSAsyncKeyword:                  "TSAsyncKeyword",
	KindTSDeclareKeyword:                "TSDeclareKeyword",
	KindTSExportKeyword:                 "TSExportKeyword",
	KindTSPrivateKeyword:                "TSPrivateKeyword",
	KindTSProtectedKeyword:              "TSProtectedKeyword",
	KindTSPublicKeyword:                 "TSPublicKeyword",
	KindTSReadonlyKeyword:               "TSReadonlyKeyword",
	KindTSStaticKeyword:                 "TSStaticKeyword",
	KindTSAbstractAccessorProperty:      "TSAbstractAccessorProperty",
	KindTSAbstractMethodDefinition:      "TSAbstractMethodDefinition",
	KindTSAbstractPropertyDefinition:    "TSAbstractPropertyDefinition",
	KindTSImportEqualsDeclaration:       "TSImportEqualsDeclaration",
	KindTSImportType:                    "TSImportType",
	KindTSExternalModuleReference:       "TSExternalModuleReference",
	KindTSExportAssignment:              "TSExportAssignment",
	KindTSNamespaceExportDeclaration:    "TSNamespaceExportDeclaration",
	KindTSQualifiedName:                 "TSQualifiedName",
	KindTSParameterProperty:             "TSParameterProperty",
	KindTSDeclareFunction:               "TSDeclareFunction",
	KindTSEmptyBodyFunctionExpression:   "TSEmptyBodyFunctionExpression",
	KindTSClassImplements:               "TSClassImplements",
}

// String returns the string representation of a Kind.
func (nt Kind) String() string {
	if name, ok := nodeTypeNames[nt]; ok {
		return name
	}
	return "Unknown"
}

var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, len(nodeTypeNames))
	for k, name := range nodeTypeNames {
		kindByName[name] = k
	}
}

// KindFromName resolves the ESTree type name (BaseNode.NodeType) back to its
// Kind tag. Node constructors throughout internal/parser set NodeType via
// composite literals rather than threading a Kind through every call site;
// BaseNode.NodeKind resolves lazily through this table instead of requiring
// every one of those literals to also set kind explicitly.
func KindFromName(name string) Kind {
	if k, ok := kindByName[name]; ok {
		return k
	}
	return KindUnknown
}
