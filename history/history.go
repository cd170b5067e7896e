// Package history remembers instructions entered in interactive modes and suggests them back.
package history

import (
	"strings"

	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank int    `json:"rank"`
	Line string `json:"line"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records line, or raises its rank by weight if it was entered before.
func Remember(line string, weight int) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	line = sanitize(line)
	if line == "" {
		return nil
	}

	cached := load()
	if r, ok := cached[line]; ok {
		r.Rank += weight
	} else {
		cached[line] = &record{Rank: weight, Line: line}
	}

	return cacher.Set(cached)
}

// Suggest returns the highest ranked remembered line matching prefix.
func Suggest(prefix string) mo.Option[string] {
	suggestions := SuggestMany(prefix)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered lines fuzzily matching prefix, by rank descending then alphabetically.
func SuggestMany(prefix string) []string {
	if !viper.GetBool(key.HistorySuggest) {
		return []string{}
	}

	prefix = sanitize(prefix)
	records := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.MatchFold(prefix, r.Line)
	})

	slices.SortFunc(records, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Line, b.Line)
	})

	return lo.Map(records, func(r *record, _ int) string {
		return r.Line
	})
}

// Count returns how many distinct lines are remembered.
func Count() int {
	return len(load())
}

// Clear forgets every remembered line.
func Clear() error {
	return cacher.Set(make(map[string]*record))
}

// sanitize collapses whitespace and lower-cases the op word. Arguments keep their case, they are pushed verbatim.
func sanitize(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	fields[0] = strings.ToLower(fields[0])
	return strings.Join(fields, " ")
}
