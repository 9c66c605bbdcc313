package diag

import (
	"testing"

	"lumen/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError}) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(Diagnostic{Code: InfTooManyArguments, Severity: SevError}) {
		t.Fatal("second add rejected")
	}
	if bag.Add(Diagnostic{Code: InfInfo, Severity: SevInfo}) {
		t.Fatal("add beyond the limit accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports findings")
	}
	bag.Add(Diagnostic{Code: ChkDeprecatedCallable, Severity: SevWarning})
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not seen")
	}
	bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError})
	if !bag.HasErrors() {
		t.Error("error not seen")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(8)
	spanAt := func(file source.FileID, start uint32) source.Span {
		return source.Span{File: file, Start: start, End: start + 1}
	}
	bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError, Primary: spanAt(1, 50)})
	bag.Add(Diagnostic{Code: InfInfo, Severity: SevInfo, Primary: spanAt(0, 10)})
	bag.Add(Diagnostic{Code: ChkDeprecatedCallable, Severity: SevWarning, Primary: spanAt(0, 10)})
	bag.Add(Diagnostic{Code: InfTooManyArguments, Severity: SevError, Primary: spanAt(0, 5)})

	bag.Sort()

	items := bag.Items()
	// File asc, start asc, severity desc at the same position.
	if items[0].Code != InfTooManyArguments {
		t.Errorf("items[0] = %v", items[0].Code)
	}
	if items[1].Code != ChkDeprecatedCallable || items[2].Code != InfInfo {
		t.Error("same-position ordering must put higher severity first")
	}
	if items[3].Code != InfTypeMismatch {
		t.Errorf("items[3] = %v", items[3].Code)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	sp := source.Span{File: 0, Start: 1, End: 2}
	bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError, Primary: sp, Message: "a"})
	bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError, Primary: sp, Message: "b"})
	bag.Add(Diagnostic{Code: InfTypeMismatch, Severity: SevError, Primary: source.Span{File: 0, Start: 9, End: 10}})

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: InfInfo})
	b := NewBag(2)
	b.Add(Diagnostic{Code: ResInfo})
	b.Add(Diagnostic{Code: ChkInfo})

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
}
