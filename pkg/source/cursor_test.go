package source

import "testing"

func TestCursorNextAndPeek(t *testing.T) {
	c := New("ab")
	if r, ok := c.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v, want 'a', true", r, ok)
	}
	if r, ok := c.Next(); !ok || r != 'a' {
		t.Fatalf("Next() = %q, %v, want 'a', true", r, ok)
	}
	if r, ok := c.Next(); !ok || r != 'b' {
		t.Fatalf("Next() = %q, %v, want 'b', true", r, ok)
	}
	if _, ok := c.Next(); ok {
		t.Fatalf("Next() on exhausted cursor reported ok")
	}
}

func TestCursorSkipUntil(t *testing.T) {
	c := New("pragma solidity ^0.8.0;\ncontract C {}")
	c.Consume("pragma")
	c.SkipUntil(';')
	c.SkipWhitespace()
	if !c.HasPrefix("contract") {
		t.Fatalf("after SkipUntil, remaining = %q, want prefix 'contract'", c.Remaining())
	}
}

func TestCursorReadBalancedNested(t *testing.T) {
	c := New(`uint x; if (a) { uint y; } return x; }`)
	body := c.ReadBalanced('{', '}')
	want := `uint x; if (a) { uint y; } return x; `
	if body != want {
		t.Errorf("ReadBalanced() = %q, want %q", body, want)
	}
	if !c.Done() {
		t.Errorf("cursor not exhausted after ReadBalanced: remaining = %q", c.Remaining())
	}
}

func TestCursorHasPrefixAndConsume(t *testing.T) {
	c := New("contract Foo {")
	if !c.HasPrefix("contract") {
		t.Fatalf("HasPrefix(contract) = false")
	}
	if !c.Consume("contract") {
		t.Fatalf("Consume(contract) = false")
	}
	if c.HasPrefix("contract") {
		t.Fatalf("HasPrefix(contract) still true after Consume")
	}
}

func TestCursorPeekAt(t *testing.T) {
	c := New("<<=")
	r0, _ := c.PeekAt(0)
	r1, _ := c.PeekAt(1)
	r2, _ := c.PeekAt(2)
	if r0 != '<' || r1 != '<' || r2 != '=' {
		t.Fatalf("PeekAt sequence = %q %q %q, want < < =", r0, r1, r2)
	}
	if _, ok := c.PeekAt(10); ok {
		t.Fatalf("PeekAt out of range reported ok")
	}
}
