// Package trie_test contains unit tests for the prefix tree and the wildcard
// dictionary.
package trie_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/algopat/trie"
)

func TestTrie_InsertSearchStartsWith(t *testing.T) {
	tr := trie.NewTrie()
	for _, w := range []string{"apple", "app", "banana"} {
		if err := tr.Insert(w); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}

	for _, tc := range []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"app", true},
		{"appl", false}, // prefix of apple, never inserted itself
		{"banana", true},
		{"ban", false},
		{"bananas", false},
		{"", false}, // empty word never inserted
	} {
		if got := tr.Search(tc.word); got != tc.want {
			t.Errorf("Search(%q) = %v; want %v", tc.word, got, tc.want)
		}
	}

	for _, tc := range []struct {
		prefix string
		want   bool
	}{
		{"app", true},
		{"appl", true},
		{"apple", true},
		{"b", true},
		{"c", false},
		{"applepie", false},
		{"", true}, // every word starts with the empty prefix
	} {
		if got := tr.StartsWith(tc.prefix); got != tc.want {
			t.Errorf("StartsWith(%q) = %v; want %v", tc.prefix, got, tc.want)
		}
	}
}

func TestTrie_EmptyWord(t *testing.T) {
	tr := trie.NewTrie()
	if err := tr.Insert(""); err != nil {
		t.Fatal(err)
	}
	if !tr.Search("") {
		t.Error("empty word should be searchable once inserted")
	}
}

func TestTrie_BadRune(t *testing.T) {
	tr := trie.NewTrie()
	for _, w := range []string{"Apple", "naïve", "a b", "x.y"} {
		if err := tr.Insert(w); !errors.Is(err, trie.ErrBadRune) {
			t.Errorf("Insert(%q): err = %v; want ErrBadRune", w, err)
		}
	}

	// A rejected insert must leave no partial path.
	if tr.StartsWith("x") {
		t.Error("rejected insert left a partial path behind")
	}

	// Queries with invalid bytes simply miss.
	if tr.Search("Apple") || tr.StartsWith("A") {
		t.Error("queries with invalid bytes should return false, not match")
	}
}

func TestWordDictionary_Match(t *testing.T) {
	d := trie.NewWordDictionary()
	for _, w := range []string{"bad", "dad", "mad"} {
		if err := d.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}

	for _, tc := range []struct {
		pattern string
		want    bool
	}{
		{"pad", false},
		{"bad", true},
		{".ad", true},
		{"b..", true},
		{"...", true},
		{"..", false},   // length must match exactly
		{"....", false}, // ditto
		{".a.", true},
		{"b.t", false},
		{"", false},
	} {
		if got := d.Match(tc.pattern); got != tc.want {
			t.Errorf("Match(%q) = %v; want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestWordDictionary_WildcardOnlyFansOut(t *testing.T) {
	d := trie.NewWordDictionary()
	if err := d.AddWord("zzz"); err != nil {
		t.Fatal(err)
	}
	if !d.Match("..z") {
		t.Error("wildcards must reach children late in the alphabet")
	}
	if d.Match("z.") {
		t.Error("pattern shorter than the word must not match")
	}
}

func TestWordDictionary_BadInput(t *testing.T) {
	d := trie.NewWordDictionary()
	if err := d.AddWord("a.c"); !errors.Is(err, trie.ErrBadRune) {
		t.Errorf("AddWord with '.': err = %v; want ErrBadRune", err)
	}
	if err := d.AddWord("abc"); err != nil {
		t.Fatal(err)
	}
	if d.Match("a-c") {
		t.Error("non-letter, non-wildcard pattern byte should match nothing")
	}
}
