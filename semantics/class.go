package semantics

type Class int8

const (
	ClassName Class = iota + 1
	Variable
	ClassError Class = -1
)

func (c Class) String() string {
	switch c {
	case ClassName:
		return "class"
	case Variable:
		return "variable"
	}
	return "error"
}
