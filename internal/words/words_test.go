package words

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// fixedPicker returns the queued indexes in order, then 0.
func fixedPicker(idx ...int) Picker {
	return func(n int) int {
		if len(idx) == 0 {
			return 0
		}
		v := idx[0]
		idx = idx[1:]
		return v % n
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.txt"), "Alpha\n\n  beta \n")
	writeFile(t, filepath.Join(dir, "categories", "fruits.txt"), "apple\nBANANA\n")
	writeFile(t, filepath.Join(dir, "categories", "CARS.txt"), "volvo\n")
	writeFile(t, filepath.Join(dir, "categories", "empty.txt"), "\n\n")

	l, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := l.Categories()
	want := []string{"All", "Cars", "Fruits"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
	if w := l.Words("All"); len(w) != 2 || w[0] != "alpha" || w[1] != "beta" {
		t.Fatalf("All = %v", w)
	}
	if w := l.Words("Fruits"); len(w) != 2 || w[1] != "banana" {
		t.Fatalf("Fruits = %v", w)
	}
	if l.Count() != 5 {
		t.Fatalf("count = %d, want 5", l.Count())
	}
}

func TestLoadFallsBackToEmbeddedDefaults(t *testing.T) {
	l, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := l.Categories()
	want := []string{"Animals", "Countries", "Programming", "Science"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
	if l.Count() != 60 {
		t.Fatalf("count = %d, want 60", l.Count())
	}
}

func TestRandomWithKnownCategory(t *testing.T) {
	l := New(map[string][]string{
		"A": {"one", "two"},
		"B": {"three"},
	}, WithPicker(fixedPicker(1)))

	word, cat := l.Random("A")
	if word != "two" || cat != "A" {
		t.Fatalf("got %q/%q, want two/A", word, cat)
	}
}

func TestRandomWithUnknownOrEmptyCategory(t *testing.T) {
	for _, filter := range []string{"", "Nope"} {
		l := New(map[string][]string{
			"A": {"one", "two"},
			"B": {"three", "four"},
		}, WithPicker(fixedPicker(1, 0)))

		word, cat := l.Random(filter)
		if word != "three" || cat != "B" {
			t.Fatalf("filter %q: got %q/%q, want three/B", filter, word, cat)
		}
	}
}

func TestRandomDefaultPickerStaysInRange(t *testing.T) {
	l := New(map[string][]string{"X": {"a", "b", "c"}, "Y": {"d"}})
	for i := 0; i < 50; i++ {
		word, cat := l.Random("")
		found := false
		for _, w := range l.Words(cat) {
			if w == word {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q not in category %q", word, cat)
		}
	}
}

func TestRandomOnEmptyList(t *testing.T) {
	l := New(nil)
	if w, c := l.Random(""); w != "" || c != "" {
		t.Fatalf("got %q/%q from empty list", w, c)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{"animals": "Animals", "CARS": "Cars", "": "", "éclair": "Éclair"}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
