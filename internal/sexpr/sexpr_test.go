package sexpr

import "testing"

func TestReadAtoms(t *testing.T) {
	forms, errs := Read("<test>", []byte(`1 2.5 #t #f foo "hi" #\a`))
	if len(errs) != 0 {
		t.Fatalf("unexpected read errors: %v", errs)
	}
	if len(forms) != 7 {
		t.Fatalf("expected 7 forms, got %d", len(forms))
	}
	if i, ok := forms[0].(*Int); !ok || i.Value != 1 {
		t.Fatalf("form 0: expected Int(1), got %#v", forms[0])
	}
	if f, ok := forms[1].(*Float); !ok || f.Value != 2.5 {
		t.Fatalf("form 1: expected Float(2.5), got %#v", forms[1])
	}
	if b, ok := forms[2].(*Bool); !ok || !b.Value {
		t.Fatalf("form 2: expected Bool(true), got %#v", forms[2])
	}
	if b, ok := forms[3].(*Bool); !ok || b.Value {
		t.Fatalf("form 3: expected Bool(false), got %#v", forms[3])
	}
	if s, ok := forms[4].(*Symbol); !ok || s.Name != "foo" {
		t.Fatalf("form 4: expected Symbol(foo), got %#v", forms[4])
	}
	if s, ok := forms[5].(*String); !ok || s.Value != "hi" {
		t.Fatalf("form 5: expected String(hi), got %#v", forms[5])
	}
	if c, ok := forms[6].(*Char); !ok || c.Value != 'a' {
		t.Fatalf("form 6: expected Char(a), got %#v", forms[6])
	}
}

func TestReadNestedList(t *testing.T) {
	forms, errs := Read("<test>", []byte(`(define (f x) (+ x 1))`))
	if len(errs) != 0 {
		t.Fatalf("unexpected read errors: %v", errs)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	l, ok := forms[0].(*List)
	if !ok {
		t.Fatalf("expected top-level list, got %#v", forms[0])
	}
	if len(l.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(l.Elements))
	}
	name, ok := l.HeadSymbol()
	if !ok || name != "define" {
		t.Fatalf("expected head symbol 'define', got %q ok=%v", name, ok)
	}
}

func TestReadSkipsComments(t *testing.T) {
	forms, errs := Read("<test>", []byte("; a comment\n42 ; trailing\n"))
	if len(errs) != 0 {
		t.Fatalf("unexpected read errors: %v", errs)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
}

func TestReadUnterminatedList(t *testing.T) {
	_, errs := Read("<test>", []byte("(foo bar"))
	if len(errs) == 0 {
		t.Fatal("expected an unterminated list error")
	}
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	_, errs := Read("<test>", []byte(")"))
	if len(errs) == 0 {
		t.Fatal("expected an unexpected ')' error")
	}
}

func TestListStringRoundTrip(t *testing.T) {
	forms, errs := Read("<test>", []byte(`(lambda (x y) (+ x y))`))
	if len(errs) != 0 {
		t.Fatalf("unexpected read errors: %v", errs)
	}
	if got, want := forms[0].String(), "(lambda (x y) (+ x y))"; got != want {
		t.Fatalf("String() round-trip: got %q, want %q", got, want)
	}
}

func TestNormalizeStripsBOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	src := append(append([]byte{}, bom...), []byte("42")...)
	forms, errs := Read("<test>", src)
	if len(errs) != 0 {
		t.Fatalf("unexpected read errors: %v", errs)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form after stripping BOM, got %d", len(forms))
	}
}
