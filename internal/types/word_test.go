package types

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestWordListReleaseCountsEveryAllocation(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
	}{
		{"Empty", nil},
		{"One", []Word{{Pos: 0, Text: "big"}}},
		{"Three", []Word{{0, "big"}, {4, "dog"}, {8, "cat"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewWordList(tt.words)
			allocations := list.Allocations()

			if allocations != len(tt.words)+1 {
				t.Fatalf("expected %d allocations, got %d", len(tt.words)+1, allocations)
			}

			released, err := list.Release()
			if err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}
			if released != allocations {
				t.Errorf("expected %d releases, got %d", allocations, released)
			}
			if list.Len() != 0 || !list.Released() {
				t.Errorf("released list should be empty")
			}
		})
	}
}

func TestWordListDoubleRelease(t *testing.T) {
	list := NewWordList([]Word{{0, "big"}})

	if _, err := list.Release(); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}

	n, err := list.Release()
	if !errors.Is(err, ErrAlreadyReleased) {
		t.Fatalf("expected ErrAlreadyReleased, got %v", err)
	}
	if n != 0 {
		t.Errorf("second release should release nothing, got %d", n)
	}
}

func TestWordListTerminated(t *testing.T) {
	list := NewWordList([]Word{{0, "big"}, {4, "dog"}})
	got := list.Terminated()
	want := []string{"big", "dog", Sentinel}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestVerdictJSON(t *testing.T) {
	data, err := json.Marshal(VerdictIllegal)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if string(data) != `"illegal"` {
		t.Fatalf("expected \"illegal\", got %s", data)
	}

	var v Verdict
	if err := json.Unmarshal([]byte(`"legal"`), &v); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if v != VerdictLegal {
		t.Fatalf("expected VerdictLegal, got %v", v)
	}

	if err := json.Unmarshal([]byte(`"maybe"`), &v); err == nil {
		t.Fatalf("expected error for unknown verdict")
	}
}

func TestMatchJSON(t *testing.T) {
	m := Match{Word: Word{Pos: 4, Text: "dog"}, Index: 2, Char: 'g'}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	want := `{"word":{"pos":4,"text":"dog"},"index":2,"char":"g"}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}
