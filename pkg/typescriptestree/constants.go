package typescriptestree

import (
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/lexer"
)

// AST_NODE_TYPES provides the string values for every single AST node's type property.
// This is equivalent to the AST_NODE_TYPES enum in @typescript-eslint/typescript-estree.
//
// Example usage:
//
//	if node.Type() == typescriptestree.AST_NODE_TYPES.Identifier {
//		// Handle identifier node
//	}
var AST_NODE_TYPES = struct {
	// ==================== Program & Core ====================
	Program string

	// ==================== Identifiers & Literals ====================
	Identifier        string
	PrivateIdentifier string
	Literal           string

	// ==================== Expressions ====================
	ThisExpression             string
	Super                      string
	ArrayExpression            string
	ObjectExpression           string
	Property                   string
	FunctionExpression         string
	ArrowFunctionExpression    string
	ClassExpression            string
	UnaryExpression            string
	UpdateExpression           string
	BinaryExpression           string
	LogicalExpression          string
	AssignmentExpression       string
	ConditionalExpression      string
	SequenceExpression         string
	MemberExpression           string
	CallExpression             string
	NewExpression              string
	MetaProperty               string
	TemplateLiteral            string
	TaggedTemplateExpression   string
	TemplateElement            string
	YieldExpression            string
	AwaitExpression            string
	ChainExpression            string
	ImportExpression           string
	SpreadElement              string

	// ==================== Statements ====================
	BlockStatement       string
	ExpressionStatement  string
	EmptyStatement       string
	DebuggerStatement    string
	ReturnStatement      string
	BreakStatement       string
	ContinueStatement    string
	LabeledStatement     string
	IfStatement          string
	SwitchStatement      string
	SwitchCase           string
	WhileStatement       string
	DoWhileStatement     string
	ForStatement         string
	ForInStatement       string
	ForOfStatement       string
	ThrowStatement       string
	TryStatement         string
	CatchClause          string
	WithStatement        string

	// ==================== Declarations ====================
	VariableDeclaration      string
	VariableDeclarator       string
	FunctionDeclaration      string
	ClassDeclaration         string
	ClassBody                string
	MethodDefinition         string
	PropertyDefinition       string
	AccessorProperty         string
	StaticBlock              string
	ImportDeclaration        string
	ImportSpecifier          string
	ImportDefaultSpecifier   string
	ImportNamespaceSpecifier string
	ImportAttribute          string
	ExportNamedDeclaration   string
	ExportDefaultDeclaration string
	ExportAllDeclaration     string
	ExportSpecifier          string

	// ==================== Patterns (Destructuring) ====================
	ArrayPattern      string
	ObjectPattern     string
	RestElement       string
	AssignmentPattern string

	// ==================== JSX (React) ====================
	JSXElement              string
	JSXFragment             string
	JSXOpeningElement       string
	JSXClosingElement       string
	JSXOpeningFragment      string
	JSXClosingFragment      string
	JSXAttribute            string
	JSXSpreadAttribute      string
	JSXIdentifier           string
	JSXNamespacedName       string
	JSXMemberExpression     string
	JSXExpressionContainer  string
	JSXEmptyExpression      string
	JSXText                 string
	JSXSpreadChild          string

	// ==================== Decorators ====================
	Decorator string

	// ==================== TypeScript Type Keywords ====================
	TSAnyKeyword       string
	TSBigIntKeyword    string
	TSBooleanKeyword   string
	TSIntrinsicKeyword string
	TSNeverKeyword     string
	TSNullKeyword      string
	TSNumberKeyword    string
	TSObjectKeyword    string
	TSStringKeyword    string
	TSSymbolKeyword    string
	TSUndefinedKeyword string
	TSUnknownKeyword   string
	TSVoidKeyword      string

	// ==================== TypeScript Type Expressions ====================
	TSArrayType             string
	TSTupleType             string
	TSUnionType             string
	TSIntersectionType      string
	TSConditionalType       string
	TSInferType             string
	TSTypeReference         string
	TSTypeQuery             string
	TSTypeLiteral           string
	TSFunctionType          string
	TSConstructorType       string
	TSMappedType            string
	TSLiteralType           string
	TSIndexedAccessType     string
	TSOptionalType          string
	TSRestType              string
	TSThisType              string
	TSTypeOperator          string
	TSTemplateLiteralType   string

	// ==================== TypeScript Type Declarations ====================
	TSTypeAnnotation        string
	TSTypeAliasDeclaration  string
	TSInterfaceDeclaration  string
	TSInterfaceBody         string
	TSInterfaceHeritage     string
	TSEnumDeclaration       string
	TSEnumBody              string
	TSEnumMember            string
	TSModuleDeclaration     string
	TSModuleBlock           string

	// ==================== TypeScript Type Components ====================
	TSTypeParameter                 string
	TSTypeParameterDeclaration      string
	TSTypeParameterInstantiation    string
	TSCallSignatureDeclaration      string
	TSConstructSignatureDeclaration string
	TSPropertySignature             string
	TSMethodSignature               string
	TSIndexSignature                string
	TSNamedTupleMember              string

	// ==================== TypeScript Type Assertions & Expressions ====================
	TSAsExpression            string
	TSTypeAssertion           string
	TSNonNullExpression       string
	TSSatisfiesExpression     string
	TSInstantiationExpression string

	// ==================== TypeScript Type Predicates ====================
	TSTypePredicate string

	// ==================== TypeScript Modifier Keywords ====================
	TSAbstractKeyword  string
	TSAsyncKeyword     string
	TSDeclareKeyword   string
	TSExportKeyword    string
	TSPrivateKeyword   string
	TSProtectedKeyword string
	TSPublicKeyword    string
	TSReadonlyKeyword  string
	TSStaticKeyword    string

	// ==================== TypeScript Abstract Members ====================
	TSAbstractAccessorProperty   string
	TSAbstractMethodDefinition   string
	TSAbstractPropertyDefinition string

	// ==================== TypeScript Import/Export ====================
	TSImportEqualsDeclaration    string
	TSImportType                 string
	TSExternalModuleReference    string
	TSExportAssignment           string
	TSNamespaceExportDeclaration string

	// ==================== TypeScript Other ====================
	TSQualifiedName                string
	TSParameterProperty            string
	TSDeclareFunction              string
	TSEmptyBodyFunctionExpression  string
	TSClassImplements              string
}{
	// Initialize all node type strings
	Program:                         ast.KindProgram.String(),
	Identifier:                      ast.KindIdentifier.String(),
	PrivateIdentifier:               ast.KindPrivateIdentifier.String(),
	Literal:                         ast.KindLiteral.String(),
	ThisExpression:                  ast.KindThisExpression.String(),
	Super:                           ast.KindSuper.String(),
	ArrayExpression:                 ast.KindArrayExpression.String(),
	ObjectExpression:                ast.KindObjectExpression.String(),
	Property:                        ast.KindProperty.String(),
	FunctionExpression:              ast.KindFunctionExpression.String(),
	ArrowFunctionExpression:         ast.KindArrowFunctionExpression.String(),
	ClassExpression:                 ast.KindClassExpression.String(),
	UnaryExpression:                 ast.KindUnaryExpression.String(),
	UpdateExpression:                ast.KindUpdateExpression.String(),
	BinaryExpression:                ast.KindBinaryExpression.String(),
	LogicalExpression:               ast.KindLogicalExpression.String(),
	AssignmentExpression:            ast.KindAssignmentExpression.String(),
	ConditionalExpression:           ast.KindConditionalExpression.String(),
	SequenceExpression:              ast.KindSequenceExpression.String(),
	MemberExpression:                ast.KindMemberExpression.String(),
	CallExpression:                  ast.KindCallExpression.String(),
	NewExpression:                   ast.KindNewExpression.String(),
	MetaProperty:                    ast.KindMetaProperty.String(),
	TemplateLiteral:                 ast.KindTemplateLiteral.String(),
	TaggedTemplateExpression:        ast.KindTaggedTemplateExpression.String(),
	TemplateElement:                 ast.KindTemplateElement.String(),
	YieldExpression:                 ast.KindYieldExpression.String(),
	AwaitExpression:                 ast.KindAwaitExpression.String(),
	ChainExpression:                 ast.KindChainExpression.String(),
	ImportExpression:                ast.KindImportExpression.String(),
	SpreadElement:                   ast.KindSpreadElement.String(),
	BlockStatement:                  ast.KindBlockStatement.String(),
	ExpressionStatement:             ast.KindExpressionStatement.String(),
	EmptyStatement:                  ast.KindEmptyStatement.String(),
	DebuggerStatement:               ast.KindDebuggerStatement.String(),
	ReturnStatement:                 ast.KindReturnStatement.String(),
	BreakStatement:                  ast.KindBreakStatement.String(),
	ContinueStatement:               ast.KindContinueStatement.String(),
	LabeledStatement:                ast.KindLabeledStatement.String(),
	IfStatement:                     ast.KindIfStatement.String(),
	SwitchStatement:                 ast.KindSwitchStatement.String(),
	SwitchCase:                      ast.KindSwitchCase.String(),
	WhileStatement:                  ast.KindWhileStatement.String(),
	DoWhileStatement:                ast.KindDoWhileStatement.String(),
	ForStatement:                    ast.KindForStatement.String(),
	ForInStatement:                  ast.KindForInStatement.String(),
	ForOfStatement:                  ast.KindForOfStatement.String(),
	ThrowStatement:                  ast.KindThrowStatement.String(),
	TryStatement:                    ast.KindTryStatement.String(),
	CatchClause:                     ast.KindCatchClause.String(),
	WithStatement:                   ast.KindWithStatement.String(),
	VariableDeclaration:             ast.KindVariableDeclaration.String(),
	VariableDeclarator:              ast.KindVariableDeclarator.String(),
	FunctionDeclaration:             ast.KindFunctionDeclaration.String(),
	ClassDeclaration:                ast.KindClassDeclaration.String(),
	ClassBody:                       ast.KindClassBody.String(),
	MethodDefinition:                ast.KindMethodDefinition.String(),
	PropertyDefinition:              ast.KindPropertyDefinition.String(),
	AccessorProperty:                ast.KindAccessorProperty.String(),
	StaticBlock:                     ast.KindStaticBlock.String(),
	ImportDeclaration:               ast.KindImportDeclaration.String(),
	ImportSpecifier:                 ast.KindImportSpecifier.String(),
	ImportDefaultSpecifier:          ast.KindImportDefaultSpecifier.String(),
	ImportNamespaceSpecifier:        ast.KindImportNamespaceSpecifier.String(),
	ImportAttribute:                 ast.KindImportAttribute.String(),
	ExportNamedDeclaration:          ast.KindExportNamedDeclaration.String(),
	ExportDefaultDeclaration:        ast.KindExportDefaultDeclaration.String(),
	ExportAllDeclaration:            ast.KindExportAllDeclaration.String(),
	ExportSpecifier:                 ast.KindExportSpecifier.String(),
	ArrayPattern:                    ast.KindArrayPattern.String(),
	ObjectPattern:                   ast.KindObjectPattern.String(),
	RestElement:                     ast.KindRestElement.String(),
	AssignmentPattern:               ast.KindAssignmentPattern.String(),
	JSXElement:                      ast.KindJSXElement.String(),
	JSXFragment:                     ast.KindJSXFragment.String(),
	JSXOpeningElement:               ast.KindJSXOpeningElement.String(),
	JSXClosingElement:               ast.KindJSXClosingElement.String(),
	JSXOpeningFragment:              ast.KindJSXOpeningFragment.String(),
	JSXClosingFragment:              ast.KindJSXClosingFragment.String(),
	JSXAttribute:                    ast.KindJSXAttribute.String(),
	JSXSpreadAttribute:              ast.KindJSXSpreadAttribute.String(),
	JSXIdentifier:                   ast.KindJSXIdentifier.String(),
	JSXNamespacedName:               ast.KindJSXNamespacedName.String(),
	JSXMemberExpression:             ast.KindJSXMemberExpression.String(),
	JSXExpressionContainer:          ast.KindJSXExpressionContainer.String(),
	JSXEmptyExpression:              ast.KindJSXEmptyExpression.String(),
	JSXText:                         ast.KindJSXText.String(),
	JSXSpreadChild:                  ast.KindJSXSpreadChild.String(),
	Decorator:                       ast.KindDecorator.String(),
	TSAnyKeyword:                    ast.KindTSAnyKeyword.String(),
	TSBigIntKeyword:                 ast.KindTSBigIntKeyword.String(),
	TSBooleanKeyword:                ast.KindTSBooleanKeyword.String(),
	TSIntrinsicKeyword:              ast.KindTSIntrinsicKeyword.String(),
	TSNeverKeyword:                  ast.KindTSNeverKeyword.String(),
	TSNullKeyword:                   ast.KindTSNullKeyword.String(),
	TSNumberKeyword:                 ast.KindTSNumberKeyword.String(),
	TSObjectKeyword:                 ast.KindTSObjectKeyword.String(),
	TSStringKeyword:                 ast.KindTSStringKeyword.String(),
	TSSymbolKeyword:                 ast.KindTSSymbolKeyword.String(),
	TSUndefinedKeyword:              ast.KindTSUndefinedKeyword.String(),
	TSUnknownKeyword:                ast.KindTSUnknownKeyword.String(),
	TSVoidKeyword:                   ast.KindTSVoidKeyword.String(),
	TSArrayType:                     ast.KindTSArrayType.String(),
	TSTupleType:                     ast.KindTSTupleType.String(),
	TSUnionType:                     ast.KindTSUnionType.String(),
	TSIntersectionType:              ast.KindTSIntersectionType.String(),
	TSConditionalType:               ast.KindTSConditionalType.String(),
	TSInferType:                     ast.KindTSInferType.String(),
	TSTypeReference:                 ast.KindTSTypeReference.String(),
	TSTypeQuery:                     ast.KindTSTypeQuery.String(),
	TSTypeLiteral:                   ast.KindTSTypeLiteral.String(),
	TSFunctionType:                  ast.KindTSFunctionType.String(),
	TSConstructorType:               ast.KindTSConstructorType.String(),
	TSMappedType:                    ast.KindTSMappedType.String(),
	TSLiteralType:                   ast.KindTSLiteralType.String(),
	TSIndexedAccessType:             ast.KindTSIndexedAccessType.String(),
	TSOptionalType:                  ast.KindTSOptionalType.String(),
	TSRestType:                      ast.KindTSRestType.String(),
	TSThisType:                      ast.KindTSThisType.String(),
	TSTypeOperator:                  ast.KindTSTypeOperator.String(),
	TSTemplateLiteralType:           ast.KindTSTemplateLiteralType.String(),
	TSTypeAnnotation:                ast.KindTSTypeAnnotation.String(),
	TSTypeAliasDeclaration:          ast.KindTSTypeAliasDeclaration.String(),
	TSInterfaceDeclaration:          ast.KindTSInterfaceDeclaration.String(),
	TSInterfaceBody:                 ast.KindTSInterfaceBody.String(),
	TSInterfaceHeritage:             ast.KindTSInterfaceHeritage.String(),
	TSEnumDeclaration:               ast.KindTSEnumDeclaration.String(),
	TSEnumBody:                      ast.KindTSEnumBody.String(),
	TSEnumMember:                    ast.KindTSEnumMember.String(),
	TSModuleDeclaration:             ast.KindTSModuleDeclaration.String(),
	TSModuleBlock:                   ast.KindTSModuleBlock.String(),
	TSTypeParameter:                 ast.KindTSTypeParameter.String(),
	TSTypeParameterDeclaration:      ast.KindTSTypeParameterDeclaration.String(),
	TSTypeParameterInstantiation:    ast.KindTSTypeParameterInstantiation.String(),
	TSCallSignatureDeclaration:      ast.KindTSCallSignatureDeclaration.String(),
	TSConstructSignatureDeclaration: ast.KindTSConstructSignatureDeclaration.String(),
	TSPropertySignature:             ast.KindTSPropertySignature.String(),
	TSMethodSignature:               ast.KindTSMethodSignature.String(),
	TSIndexSignature:                ast.KindTSIndexSignature.String(),
	TSNamedTupleMember:              ast.KindTSNamedTupleMember.String(),
	TSAsExpression:                  ast.KindTSAsExpression.String(),
	TSTypeAssertion:                 ast.KindTSTypeAssertion.String(),
	TSNonNullExpression:             ast.KindTSNonNullExpression.String(),
	TSSatisfiesExpression:           ast.KindTSSatisfiesExpression.String(),
	TSInstantiationExpression:       ast.KindTSInstantiationExpression.String(),
	TSTypePredicate:                 ast.KindTSTypePredicate.String(),
	TSAbstractKeyword:               ast.KindTSAbstractKeyword.String(),
	TSAsyncKeyword:                  ast.KindTSAsyncKeyword.String(),
	TSDeclareKeyword:                ast.KindTSDeclareKeyword.String(),
	TSExportKeyword:                 ast.KindTSExportKeyword.String(),
	TSPrivateKeyword:                ast.KindTSPrivateKeyword.String(),
	TSProtectedKeyword:              ast.KindTSProtectedKeyword.String(),
	TSPublicKeyword:                 ast.KindTSPublicKeyword.String(),
	TSReadonlyKeyword:               ast.KindTSReadonlyKeyword.String(),
	TSStaticKeyword:                 ast.KindTSStaticKeyword.String(),
	TSAbstractAccessorProperty:      ast.KindTSAbstractAccessorProperty.String(),
	TSAbstractMethodDefinition:      ast.KindTSAbstractMethodDefinition.String(),
	TSAbstractPropertyDefinition:    ast.KindTSAbstractPropertyDefinition.String(),
	TSImportEqualsDeclaration:       ast.KindTSImportEqualsDeclaration.String(),
	TSImportType:                    ast.KindTSImportType.String(),
	TSExternalModuleReference:       ast.KindTSExternalModuleReference.String(),
	TSExportAssignment:              ast.KindTSExportAssignment.String(),
	TSNamespaceExportDeclaration:    ast.KindTSNamespaceExportDeclaration.String(),
	TSQualifiedName:                 ast.KindTSQualifiedName.String(),
	TSParameterProperty:             ast.KindTSParameterProperty.String(),
	TSDeclareFunction:               ast.KindTSDeclareFunction.String(),
	TSEmptyBodyFunctionExpression:   ast.KindTSEmptyBodyFunctionExpression.String(),
	TSClassImplements:               ast.KindTSClassImplements.String(),
}

// AST_TOKEN_TYPES provides the string values for every single AST token's type property.
// This is equivalent to the AST_TOKEN_TYPES enum in @typescript-eslint/typescript-estree.
//
// Example usage:
//
//	if token.Type == typescriptestree.AST_TOKEN_TYPES.Identifier {
//		// Handle identifier token
//	}
var AST_TOKEN_TYPES = struct {
	// Special tokens
	EOF     string
	Illegal string
	Comment string

	// Literals
	Identifier string
	Number     string
	String     string
	Template   string
	RegExp     string

	// Keywords
	Break      string
	Case       string
	Catch      string
	Class      string
	Const      string
	Continue   string
	Debugger   string
	Default    string
	Delete     string
	Do         string
	Else       string
	Enum       string
	Export     string
	Extends    string
	False      string
	Finally    string
	For        string
	Function   string
	If         string
	Import     string
	In         string
	Instanceof string
	New        string
	Null       string
	Return     string
	Super      string
	Switch     string
	This       string
	Throw      string
	True       string
	Try        string
	Typeof     string
	Var        string
	Void       string
	While      string
	With       string
	Yield      string

	// TypeScript keywords
	As         string
	Async      string
	Await      string
	Declare    string
	Interface  string
	Let        string
	Module     string
	Namespace  string
	Of         string
	Package    string
	Private    string
	Protected  string
	Public     string
	Readonly   string
	Require    string
	Static     string
	Type       string
	From       string
	Satisfies  string
	Implements string
	Any        string
	Boolean    string
	Never      string
	Unknown    string
	Symbol     string
	Undefined  string

	// Operators and punctuation
	Add           string // +
	Sub           string // -
	Mul           string // *
	Quo           string // /
	Rem           string // %
	And           string // &
	Or            string // |
	Xor           string // ^
	BitwiseNot    string // ~
	ShiftLeft     string // <<
	ShiftRight    string // >>
	AddAssign     string // +=
	SubAssign     string // -=
	MulAssign     string // *=
	QuoAssign     string // /=
	RemAssign     string // %=
	AndAssign     string // &=
	OrAssign      string // |=
	XorAssign     string // ^=
	ShlAssign     string // <<=
	ShrAssign     string // >>=
	LogicalAnd    string // &&
	LogicalOr     string // ||
	Increment     string // ++
	Decrement     string // --
	Nullish       string // ??
	Equal         string // ==
	Less          string // <
	Greater       string // >
	Assign        string // =
	Not           string // !
	NotEqual      string // !=
	LessEqual     string // <=
	GreaterEqual  string // >=
	StrictEqual   string // ===
	StrictNotEqual string // !==
	LeftParen     string // (
	LeftBracket   string // [
	LeftBrace     string // {
	Comma         string // ,
	Period        string // .
	RightParen    string // )
	RightBracket  string // ]
	RightBrace    string // }
	Semicolon     string // ;
	Colon         string // :
	Question      string // ?
	Arrow         string // =>
	Ellipsis      string // ...
}{
	// Initialize all token type strings
	EOF:            lexer.EOF.String(),
	Illegal:        lexer.ILLEGAL.String(),
	Comment:        lexer.COMMENT.String(),
	Identifier:     lexer.IDENT.String(),
	Number:         lexer.NUMBER.String(),
	String:         lexer.STRING.String(),
	Template:       lexer.TEMPLATE.String(),
	RegExp:         lexer.REGEXP.String(),
	Break:          lexer.BREAK.String(),
	Case:           lexer.CASE.String(),
	Catch:          lexer.CATCH.String(),
	Class:          lexer.CLASS.String(),
	Const:          lexer.CONST.String(),
	Continue:       lexer.CONTINUE.String(),
	Debugger:       lexer.DEBUGGER.String(),
	Default:        lexer.DEFAULT.String(),
	Delete:         lexer.DELETE.String(),
	Do:             lexer.DO.String(),
	Else:           lexer.ELSE.String(),
	Enum:           lexer.ENUM.String(),
	Export:         lexer.EXPORT.String(),
	Extends:        lexer.EXTENDS.String(),
	False:          lexer.FALSE.String(),
	Finally:        lexer.FINALLY.String(),
	For:            lexer.FOR.String(),
	Function:       lexer.FUNCTION.String(),
	If:             lexer.IF.String(),
	Import:         lexer.IMPORT.String(),
	In:             lexer.IN.String(),
	Instanceof:     lexer.INSTANCEOF.String(),
	New:            lexer.NEW.String(),
	Null:           lexer.NULL.String(),
	Return:         lexer.RETURN.String(),
	Super:          lexer.SUPER.String(),
	Switch:         lexer.SWITCH.String(),
	This:           lexer.THIS.String(),
	Throw:          lexer.THROW.String(),
	True:           lexer.TRUE.String(),
	Try:            lexer.TRY.String(),
	Typeof:         lexer.TYPEOF.String(),
	Var:            lexer.VAR.String(),
	Void:           lexer.VOID.String(),
	While:          lexer.WHILE.String(),
	With:           lexer.WITH.String(),
	Yield:          lexer.YIELD.String(),
	As:             lexer.AS.String(),
	Async:          lexer.ASYNC.String(),
	Await:          lexer.AWAIT.String(),
	Declare:        lexer.DECLARE.String(),
	Interface:      lexer.INTERFACE.String(),
	Let:            lexer.LET.String(),
	Module:         lexer.MODULE.String(),
	Namespace:      lexer.NAMESPACE.String(),
	Of:             lexer.OF.String(),
	Package:        lexer.PACKAGE.String(),
	Private:        lexer.PRIVATE.String(),
	Protected:      lexer.PROTECTED.String(),
	Public:         lexer.PUBLIC.String(),
	Readonly:       lexer.READONLY.String(),
	Require:        lexer.REQUIRE.String(),
	Static:         lexer.STATIC.String(),
	Type:           lexer.TYPE.String(),
	From:           lexer.FROM.String(),
	Satisfies:      lexer.SATISFIES.String(),
	Implements:     lexer.IMPLEMENTS.String(),
	Any:            lexer.ANY.String(),
	Boolean:        lexer.BOOLEAN.String(),
	Never:          lexer.NEVER.String(),
	Unknown:        lexer.UNKNOWN.String(),
	Symbol:         lexer.SYMBOL.String(),
	Undefined:      lexer.UNDEFINED.String(),
	Add:            lexer.ADD.String(),
	Sub:            lexer.SUB.String(),
	Mul:            lexer.MUL.String(),
	Quo:            lexer.QUO.String(),
	Rem:            lexer.REM.String(),
	And:            lexer.AND.String(),
	Or:             lexer.OR.String(),
	Xor:            lexer.XOR.String(),
	BitwiseNot:     lexer.BNOT.String(),
	ShiftLeft:      lexer.SHL.String(),
	ShiftRight:     lexer.SHR.String(),
	AddAssign:      lexer.AddAssign.String(),
	SubAssign:      lexer.SubAssign.String(),
	MulAssign:      lexer.MulAssign.String(),
	QuoAssign:      lexer.QuoAssign.String(),
	RemAssign:      lexer.RemAssign.String(),
	AndAssign:      lexer.AndAssign.String(),
	OrAssign:       lexer.OrAssign.String(),
	XorAssign:      lexer.XorAssign.String(),
	ShlAssign:      lexer.ShlAssign.String(),
	ShrAssign:      lexer.ShrAssign.String(),
	LogicalAnd:     lexer.LAND.String(),
	LogicalOr:      lexer.LOR.String(),
	Increment:      lexer.INC.String(),
	Decrement:      lexer.DEC.String(),
	Nullish:        lexer.NULLISH.String(),
	Equal:          lexer.EQL.String(),
	Less:           lexer.LSS.String(),
	Greater:        lexer.GTR.String(),
	Assign:         lexer.ASSIGN.String(),
	Not:            lexer.NOT.String(),
	NotEqual:       lexer.NEQ.String(),
	LessEqual:      lexer.LEQ.String(),
	GreaterEqual:   lexer.GEQ.String(),
	StrictEqual:    lexer.EqlStrict.String(),
	StrictNotEqual: lexer.NeqStrict.String(),
	LeftParen:      lexer.LPAREN.String(),
	LeftBracket:    lexer.LBRACK.String(),
	LeftBrace:      lexer.LBRACE.String(),
	Comma:          lexer.COMMA.String(),
	Period:         lexer.PERIOD.String(),
	RightParen:     lexer.RPAREN.String(),
	RightBracket:   lexer.RBRACK.String(),
	RightBrace:     lexer.RBRACE.String(),
	Semicolon:      lexer.SEMICOLON.String(),
	Colon:          lexer.COLON.String(),
	Question:       lexer.QUESTION.String(),
	Arrow:          lexer.ARROW.String(),
	Ellipsis:       lexer.ELLIPSIS.String(),
}
