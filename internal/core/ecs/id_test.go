package ecs

import "testing"

func TestIdEqualIgnoresLinks(t *testing.T) {
	a := Id{Index: 1, NextFreeIndex: 2, Generation: 5}
	b := Id{Index: 1, NextFreeIndex: NullIndex, Generation: 5}
	if !a.Equal(b) {
		t.Fatal("ids with the same generation differ")
	}
	if a.Equal(Id{Index: 1, Generation: 6}) {
		t.Fatal("ids with different generations equal")
	}
}

func TestNullId(t *testing.T) {
	if !NullId.IsNull() {
		t.Fatal("NullId not null")
	}
	if NullId.String() != "Id(null)" {
		t.Fatalf("String = %q", NullId.String())
	}
	if got := (Id{Index: 3, Generation: 9}).String(); got != "Id(3:9)" {
		t.Fatalf("String = %q", got)
	}
}
