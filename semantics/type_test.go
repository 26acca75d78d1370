package semantics

import "testing"

func TestCompatible(t *testing.T) {
	all := []Type{Void, Int, Float, String, Boolean}
	for _, a := range all {
		for _, b := range all {
			want := a == b || a == Void || b == Void
			if got := Compatible(a, b); got != want {
				t.Fatalf("Compatible(%v, %v) = %v", a, b, got)
			}
		}
	}
	if Compatible(Int, Error) {
		t.Fatal()
	}
}

func TestStrings(t *testing.T) {
	if Boolean.String() != "boolean" {
		t.Fatal()
	}
	if Type(42).String() != "error" {
		t.Fatal()
	}
	if Variable.String() != "variable" || ClassName.String() != "class" {
		t.Fatal()
	}
	if Class(0).String() != "error" {
		t.Fatal()
	}
}
