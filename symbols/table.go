package symbols

import (
	"fmt"
	"iter"
	"strings"

	"github.com/reusee/classcheck/semantics"
)

type Entry struct {
	Lexeme   string
	Type     semantics.Type
	Class    semantics.Class
	HasType  bool
	HasClass bool
	// Offset is reserved for storage allocation; only variables get one.
	Offset int
	// Line where the lexeme was first seen.
	Line int
}

func (e Entry) Declared() bool {
	return e.HasType || e.HasClass
}

// Table maps identifier lexemes to their attributes.
// Rows are created when an identifier is first seen and filled at its declaration.
// It is owned by a single compilation run and is not safe for concurrent use.
type Table struct {
	entries    map[string]*Entry
	order      []string
	nextOffset int
}

func New() *Table {
	return &Table{
		entries: make(map[string]*Entry),
	}
}

// DeclareIfAbsent creates an empty row for lexeme and reports whether it was inserted.
func (t *Table) DeclareIfAbsent(lexeme string, line int) bool {
	if _, ok := t.entries[lexeme]; ok {
		return false
	}
	t.entries[lexeme] = &Entry{
		Lexeme: lexeme,
		Line:   line,
	}
	t.order = append(t.order, lexeme)
	return true
}

func (t *Table) row(lexeme string) *Entry {
	t.DeclareIfAbsent(lexeme, 0)
	return t.entries[lexeme]
}

func (t *Table) SetType(lexeme string, typ semantics.Type) {
	e := t.row(lexeme)
	e.Type = typ
	e.HasType = true
}

func (t *Table) SetClass(lexeme string, class semantics.Class) {
	e := t.row(lexeme)
	if class == semantics.Variable && !(e.HasClass && e.Class == semantics.Variable) {
		e.Offset = t.nextOffset
		t.nextOffset++
	}
	e.Class = class
	e.HasClass = true
}

func (t *Table) Type(lexeme string) (semantics.Type, bool) {
	e, ok := t.entries[lexeme]
	if !ok || !e.HasType {
		return semantics.Error, false
	}
	return e.Type, true
}

func (t *Table) Class(lexeme string) (semantics.Class, bool) {
	e, ok := t.entries[lexeme]
	if !ok || !e.HasClass {
		return semantics.ClassError, false
	}
	return e.Class, true
}

// Lookup returns false only for lexemes never seen.
// A seen but undeclared lexeme yields an entry with neither field set.
func (t *Table) Lookup(lexeme string) (Entry, bool) {
	e, ok := t.entries[lexeme]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

func (t *Table) Declared(lexeme string) bool {
	e, ok := t.entries[lexeme]
	return ok && e.Declared()
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries yields rows in first-seen order.
func (t *Table) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, lexeme := range t.order {
			if !yield(*t.entries[lexeme]) {
				return
			}
		}
	}
}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol Table:\n")
	fmt.Fprintf(&sb, "%-16s %-8s %-9s %s\n", "ID", "TYPE", "CLASS", "OFFSET")
	for e := range t.Entries() {
		typ, class, offset := "-", "-", "-"
		if e.HasType {
			typ = e.Type.String()
		}
		if e.HasClass {
			class = e.Class.String()
			if e.Class == semantics.Variable {
				offset = fmt.Sprint(e.Offset)
			}
		}
		fmt.Fprintf(&sb, "%-16s %-8s %-9s %s\n", e.Lexeme, typ, class, offset)
	}
	return sb.String()
}
