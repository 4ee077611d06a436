package idgen

import (
	"strings"
	"testing"
)

func TestGenerate_PrefixAndAlphabet(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id, err := Generate(FormPrefix)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !strings.HasPrefix(id, FormPrefix) {
			t.Fatalf("missing prefix: %s", id)
		}
		body := strings.TrimPrefix(id, FormPrefix)
		if len(body) != Length {
			t.Fatalf("unexpected length %d for %s", len(body), id)
		}
		for _, r := range body {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("rune %q outside alphabet in %s", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
