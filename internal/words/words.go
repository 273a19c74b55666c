// internal/words/words.go
//
// Provides word list management for the game.
//
// Responsibilities:
//   - Load categorised word lists from a words directory, or fall back to embedded defaults.
//   - List categories in a stable order for the category menu.
//   - Pick a random (word, category) pair, optionally restricted to one category.
//
// Directory layout (Load):
//   <dir>/words.txt             → category "All"
//   <dir>/categories/<name>.txt → category "<Name>" (file stem, capitalised)
//
// Lists are trimmed and lowercased, one word per line; blank lines are dropped.
// Word content is not otherwise validated. Categories that end up empty are
// skipped so that Random never has to pick from an empty list.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/hangman/assets"
)

// AllCategory is the category name used for <dir>/words.txt.
const AllCategory = "All"

// Picker returns a value in [0, n). n is always > 0.
type Picker func(n int) int

// List is a loaded set of categorised words.
type List struct {
	categories map[string][]string
	order      []string
	pick       Picker
}

// Option configures a List.
type Option func(*List)

// WithPicker replaces the default crypto/rand picker (useful for tests).
func WithPicker(p Picker) Option {
	return func(l *List) { l.pick = p }
}

// New builds a List from an in-memory mapping. Empty categories are dropped.
func New(categories map[string][]string, opts ...Option) *List {
	l := &List{categories: make(map[string][]string, len(categories)), pick: cryptoPick}
	for name, list := range categories {
		if len(list) == 0 {
			continue
		}
		l.categories[name] = append([]string(nil), list...)
	}
	l.order = orderCategories(l.categories)
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads word lists from dir. When dir holds no usable lists the embedded
// defaults are used instead.
func Load(dir string, opts ...Option) (*List, error) {
	cats := make(map[string][]string)

	mainFile := filepath.Join(dir, "words.txt")
	if list, err := readWordFile(mainFile); err == nil {
		cats[AllCategory] = list
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", mainFile, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "categories", "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("glob categories: %w", err)
	}
	for _, f := range files {
		list, err := readWordFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		cats[capitalize(strings.TrimSuffix(filepath.Base(f), ".txt"))] = list
	}

	l := New(cats, opts...)
	if len(l.order) > 0 {
		log.Info().Str("dir", dir).Int("categories", len(l.order)).Int("words", l.Count()).Msg("loaded word lists")
		return l, nil
	}

	defaults, err := assets.DefaultCategories()
	if err != nil {
		return nil, fmt.Errorf("load embedded words: %w", err)
	}
	named := make(map[string][]string, len(defaults))
	for stem, list := range defaults {
		named[capitalize(stem)] = list
	}
	l = New(named, opts...)
	if len(l.order) == 0 {
		return nil, errors.New("words: no words available")
	}
	log.Info().Str("dir", dir).Int("categories", len(l.order)).Msg("using embedded word lists")
	return l, nil
}

// Categories returns category names: "All" first when present, then the rest sorted.
func (l *List) Categories() []string {
	return append([]string(nil), l.order...)
}

// Words returns the words of a category, or nil if it is unknown.
func (l *List) Words(category string) []string {
	return append([]string(nil), l.categories[category]...)
}

// Count returns the total number of words across categories.
func (l *List) Count() int {
	n := 0
	for _, list := range l.categories {
		n += len(list)
	}
	return n
}

// Random picks a word. A known category restricts the draw to that category;
// an empty or unknown one picks a category uniformly first.
// Returns "", "" when the list is empty.
func (l *List) Random(category string) (word, actual string) {
	if len(l.order) == 0 {
		return "", ""
	}
	list, ok := l.categories[category]
	if !ok {
		category = l.order[l.pick(len(l.order))]
		list = l.categories[category]
	}
	return list[l.pick(len(list))], category
}

// readWordFile loads one word per line, trimmed and lowercased.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.ToLower(strings.TrimSpace(sc.Text())); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func orderCategories(cats map[string][]string) []string {
	out := make([]string, 0, len(cats))
	for name := range cats {
		if name != AllCategory {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	if _, ok := cats[AllCategory]; ok {
		out = append([]string{AllCategory}, out...)
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(r[:1])) + cases.Lower(language.Und).String(string(r[1:]))
}

// cryptoPick returns a uniformly random index in [0, n).
func cryptoPick(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
