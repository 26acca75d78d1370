package lexers

type state uint8

const (
	stateStart state = iota
	stateIdentifier
	stateLeadingZero
	stateInteger
	stateFloat
	stateString
	stateAmpersand
	stateSlash
	stateLineComment
	stateBlockComment
	stateBlockCommentStar
	statePipe
	stateRelop
)

var stateNames = [...]string{
	stateStart:            "start",
	stateIdentifier:       "identifier",
	stateLeadingZero:      "leading-zero",
	stateInteger:          "integer",
	stateFloat:            "float",
	stateString:           "string",
	stateAmpersand:        "ampersand",
	stateSlash:            "slash",
	stateLineComment:      "line-comment",
	stateBlockComment:     "block-comment",
	stateBlockCommentStar: "block-comment-star",
	statePipe:             "pipe",
	stateRelop:            "relop",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}
