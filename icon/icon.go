// Package icon renders feedback symbols in the variant selected by "icons.variant".
package icon

import (
	"github.com/dsakit/dsakit/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all supported icon variant names.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Top
	Empty
	Lua
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:    {emoji: "❌", nerd: "", plain: "✗", kaomoji: "(×_×)", squares: "▨"},
	Top:     {emoji: "👉", nerd: "", plain: ">", kaomoji: "(☞ﾟ∀ﾟ)☞", squares: "▶"},
	Empty:   {emoji: "🫙", nerd: "", plain: "-", kaomoji: "(・_・)", squares: "□"},
	Lua:     {emoji: "🌙", nerd: "", plain: "lua", kaomoji: "(◕‿◕)", squares: "◈"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol for i, or an empty string for unknown icons.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
