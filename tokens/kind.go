package tokens

type Kind uint8

const (
	EOF Kind = iota

	// punctuation
	SemiColon
	Colon
	Comma
	Dot
	OpenParen
	CloseParen
	OpenCurly
	CloseCurly
	OpenBracket
	CloseBracket

	// operators
	Assign
	And
	Or
	Lower
	Greater
	LowerEqual
	GreaterEqual
	Equals
	NotEquals
	Add
	Sub
	Mul
	Div
	Not

	// keywords
	Class
	If
	Else
	Do
	While
	Int
	Float
	String
	Null
	False
	True
	Read
	Write

	// variable text
	Identifier
	IntLiteral
	FloatLiteral
	StringLiteral

	numKinds
)

type kindInfo struct {
	name   string
	lexeme string
}

var kinds = [numKinds]kindInfo{
	EOF: {"END_OF_FILE", ""},

	SemiColon:    {"SEMI_COLON", ";"},
	Colon:        {"COLON", ":"},
	Comma:        {"COMMA", ","},
	Dot:          {"DOT", "."},
	OpenParen:    {"OPEN_PAR", "("},
	CloseParen:   {"CLOSE_PAR", ")"},
	OpenCurly:    {"OPEN_CUR", "{"},
	CloseCurly:   {"CLOSE_CUR", "}"},
	OpenBracket:  {"OPEN_BRA", "["},
	CloseBracket: {"CLOSE_BRA", "]"},

	Assign:       {"ASSIGN", "="},
	And:          {"AND", "&&"},
	Or:           {"OR", "||"},
	Lower:        {"LOWER", "<"},
	Greater:      {"GREATER", ">"},
	LowerEqual:   {"LOWER_EQUAL", "<="},
	GreaterEqual: {"GREATER_EQUAL", ">="},
	Equals:       {"EQUALS", "=="},
	NotEquals:    {"NOT_EQUALS", "!="},
	Add:          {"ADD", "+"},
	Sub:          {"SUB", "-"},
	Mul:          {"MUL", "*"},
	Div:          {"DIV", "/"},
	Not:          {"NOT", "!"},

	Class:  {"CLASS", "class"},
	If:     {"IF", "if"},
	Else:   {"ELSE", "else"},
	Do:     {"DO", "do"},
	While:  {"WHILE", "while"},
	Int:    {"INT", "int"},
	Float:  {"FLOAT", "float"},
	String: {"STRING", "string"},
	Null:   {"NULL", "null"},
	False:  {"FALSE", "False"},
	True:   {"TRUE", "True"},
	Read:   {"READ", "read"},
	Write:  {"WRITE", "write"},

	Identifier:    {"IDENTIFIER", ""},
	IntLiteral:    {"INTEGER_CONST", ""},
	FloatLiteral:  {"REAL_CONST", ""},
	StringLiteral: {"LITERAL", ""},
}

var byLexeme = func() map[string]Kind {
	ret := make(map[string]Kind)
	for kind, info := range kinds {
		if info.lexeme == "" {
			continue
		}
		if _, ok := ret[info.lexeme]; ok {
			panic("duplicated lexeme " + info.lexeme)
		}
		ret[info.lexeme] = Kind(kind)
	}
	return ret
}()

// Lookup maps a fixed lexeme back to its kind.
// Variable-text kinds are never returned.
func Lookup(lexeme string) (Kind, bool) {
	kind, ok := byLexeme[lexeme]
	return kind, ok
}

// Lexeme returns the canonical text of fixed-text kinds, or "" for the others.
func (k Kind) Lexeme() string {
	if k >= numKinds {
		return ""
	}
	return kinds[k].lexeme
}

func (k Kind) String() string {
	if k >= numKinds {
		return "INVALID"
	}
	return kinds[k].name
}

func (k Kind) IsKeyword() bool {
	return k >= Class && k <= Write
}

// HasPayload reports whether tokens of this kind carry source-dependent data.
func (k Kind) HasPayload() bool {
	return k >= Identifier && k < numKinds
}

// Describe renders a kind for diagnostics, preferring the lexeme when there is one.
func (k Kind) Describe() string {
	if lexeme := k.Lexeme(); lexeme != "" {
		return "'" + lexeme + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case Identifier:
		return "identifier"
	case IntLiteral:
		return "integer literal"
	case FloatLiteral:
		return "float literal"
	case StringLiteral:
		return "string literal"
	}
	return k.String()
}
