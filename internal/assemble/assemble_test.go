package assemble_test

import (
	"errors"
	"testing"

	"github.com/takaaki-mizuno/local-book-translator/internal/assemble"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

func TestJoin_OrdersByIndex(t *testing.T) {
	results := []translate.Result{
		{Index: 2, Text: "三"},
		{Index: 0, Text: "一"},
		{Index: 1, Text: "二"},
	}
	got, err := assemble.Join(results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "一\n\n二\n\n三" {
		t.Fatalf("unexpected document: %q", got)
	}
}

func TestJoin_SingleResult(t *testing.T) {
	got, err := assemble.Join([]translate.Result{{Index: 0, Text: "本文"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "本文" {
		t.Fatalf("unexpected document: %q", got)
	}
}

func TestJoin_Empty(t *testing.T) {
	got, err := assemble.Join(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty document, got %q", got)
	}
}

func TestJoin_MissingIndex(t *testing.T) {
	results := []translate.Result{
		{Index: 0, Text: "一"},
		{Index: 2, Text: "三"},
	}
	_, err := assemble.Join(results)

	var missing *assemble.MissingIndexError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingIndexError, got %v", err)
	}
	if missing.Index != 1 {
		t.Fatalf("missing index %d, want 1", missing.Index)
	}
}

func TestJoin_DuplicateIndex(t *testing.T) {
	results := []translate.Result{
		{Index: 0, Text: "一"},
		{Index: 0, Text: "重複"},
	}
	_, err := assemble.Join(results)

	var missing *assemble.MissingIndexError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingIndexError, got %v", err)
	}
	if missing.Index != 1 {
		t.Fatalf("missing index %d, want 1", missing.Index)
	}
}

func TestJoin_NegativeIndex(t *testing.T) {
	_, err := assemble.Join([]translate.Result{{Index: -1, Text: "x"}})
	var missing *assemble.MissingIndexError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingIndexError, got %v", err)
	}
}
