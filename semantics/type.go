package semantics

type Type int8

const (
	Void Type = iota
	Int
	Float
	String
	Boolean
	Error Type = -1
)

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	}
	return "error"
}

// Compatible treats Void as a wildcard; other types must be equal.
func Compatible(a, b Type) bool {
	if a == Void || b == Void {
		return true
	}
	return a == b
}

func (t Type) Numeric() bool {
	return t == Int || t == Float
}
