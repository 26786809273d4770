package ast

// StmtKind is the discriminant of a Statement.
type StmtKind uint8

const (
	StmtError StmtKind = iota
	StmtEmpty
	StmtExpression
	StmtDeclaration
	StmtReturn
	StmtBreak
	StmtContinue
	StmtThrow
	StmtIf
	StmtWhile
	StmtDo
	StmtFor
	StmtForIn
	StmtForOf
	StmtTry
	StmtBlock
	StmtLabeled
	StmtSwitch
	StmtFunction
	StmtClass

	stmtKindCount
)

var stmtKindNames = [...]string{
	StmtError:       "Error",
	StmtEmpty:       "Empty",
	StmtExpression:  "Expression",
	StmtDeclaration: "Declaration",
	StmtReturn:      "Return",
	StmtBreak:       "Break",
	StmtContinue:    "Continue",
	StmtThrow:       "Throw",
	StmtIf:          "If",
	StmtWhile:       "While",
	StmtDo:          "Do",
	StmtFor:         "For",
	StmtForIn:       "ForIn",
	StmtForOf:       "ForOf",
	StmtTry:         "Try",
	StmtBlock:       "Block",
	StmtLabeled:     "Labeled",
	StmtSwitch:      "Switch",
	StmtFunction:    "Function",
	StmtClass:       "Class",
}

func (k StmtKind) String() string {
	if k < stmtKindCount {
		return stmtKindNames[k]
	}
	return "StmtKind(?)"
}

// DeclarationKind is the keyword introducing a declaration statement.
type DeclarationKind uint8

const (
	DeclarationVar DeclarationKind = iota
	DeclarationLet
	DeclarationConst
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclarationLet:
		return "let"
	case DeclarationConst:
		return "const"
	}
	return "var"
}

type (
	Statement struct {
		Stmt
	}

	// All statement payloads implement the Stmt interface.
	Stmt interface {
		stmtKind() StmtKind
	}

	// ErrorStatement marks a statement that failed to parse.
	ErrorStatement struct{}

	EmptyStatement struct{}

	ExpressionStatement struct {
		Expression ExpressionNode
	}

	DeclarationStatement struct {
		Kind        DeclarationKind
		Declarators NodeList[Declarator]
	}

	Declarator struct {
		ID   PatternNode
		Init ExpressionNode
	}

	ReturnStatement struct {
		Value ExpressionNode
	}

	BreakStatement struct {
		Label IdentifierNode
	}

	ContinueStatement struct {
		Label IdentifierNode
	}

	ThrowStatement struct {
		Value ExpressionNode
	}

	IfStatement struct {
		Test       ExpressionNode
		Consequent StatementNode
		Alternate  StatementNode
	}

	WhileStatement struct {
		Test ExpressionNode
		Body StatementNode
	}

	DoStatement struct {
		Body StatementNode
		Test ExpressionNode
	}

	// ForStatement holds a declaration or expression statement as Init.
	ForStatement struct {
		Init   StatementNode
		Test   ExpressionNode
		Update ExpressionNode
		Body   StatementNode
	}

	ForInStatement struct {
		Left  StatementNode
		Right ExpressionNode
		Body  StatementNode
	}

	ForOfStatement struct {
		Left  StatementNode
		Right ExpressionNode
		Body  StatementNode
	}

	TryStatement struct {
		Block     StatementBlock
		Handler   Ptr[Loc[CatchClause]]
		Finalizer StatementBlock
	}

	CatchClause struct {
		Param PatternNode
		Body  StatementBlock
	}

	BlockStatement struct {
		Body StatementList
	}

	LabeledStatement struct {
		Label IdentifierNode
		Body  StatementNode
	}

	SwitchStatement struct {
		Discriminant ExpressionNode
		Cases        NodeList[SwitchCase]
	}

	// SwitchCase is a case clause; Test is nil for the default clause.
	SwitchCase struct {
		Test       ExpressionNode
		Consequent StatementList
	}

	FunctionStatement struct {
		Function[MandatoryName]
	}

	ClassStatement struct {
		Class[MandatoryName]
	}
)

// Kind returns the discriminant. A zero Statement is Empty.
func (s Statement) Kind() StmtKind {
	if s.Stmt == nil {
		return StmtEmpty
	}
	return s.Stmt.stmtKind()
}

func (*ErrorStatement) stmtKind() StmtKind       { return StmtError }
func (*EmptyStatement) stmtKind() StmtKind       { return StmtEmpty }
func (*ExpressionStatement) stmtKind() StmtKind  { return StmtExpression }
func (*DeclarationStatement) stmtKind() StmtKind { return StmtDeclaration }
func (*ReturnStatement) stmtKind() StmtKind      { return StmtReturn }
func (*BreakStatement) stmtKind() StmtKind       { return StmtBreak }
func (*ContinueStatement) stmtKind() StmtKind    { return StmtContinue }
func (*ThrowStatement) stmtKind() StmtKind       { return StmtThrow }
func (*IfStatement) stmtKind() StmtKind          { return StmtIf }
func (*WhileStatement) stmtKind() StmtKind       { return StmtWhile }
func (*DoStatement) stmtKind() StmtKind          { return StmtDo }
func (*ForStatement) stmtKind() StmtKind         { return StmtFor }
func (*ForInStatement) stmtKind() StmtKind       { return StmtForIn }
func (*ForOfStatement) stmtKind() StmtKind       { return StmtForOf }
func (*TryStatement) stmtKind() StmtKind         { return StmtTry }
func (*BlockStatement) stmtKind() StmtKind       { return StmtBlock }
func (*LabeledStatement) stmtKind() StmtKind     { return StmtLabeled }
func (*SwitchStatement) stmtKind() StmtKind      { return StmtSwitch }
func (*FunctionStatement) stmtKind() StmtKind    { return StmtFunction }
func (*ClassStatement) stmtKind() StmtKind       { return StmtClass }
