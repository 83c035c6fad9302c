// Package icon renders the status and item symbols of the CLI in the configured variant.
//
// Variants are emoji, nerd-font glyphs, plain ASCII, kaomoji and Unicode squares.
package icon

import (
	"github.com/atres-cli/atres/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns the accepted values of the icons.variant setting.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Directory
	Video
	Separator
	Lock
	Search
	More
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) variant(name string) string {
	switch name {
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

var icons = map[Icon]iconDef{
	Success:   {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:      {emoji: "💀", nerd: "", plain: "X", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Progress:  {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(・_・ヾ", squares: "🟦"},
	Directory: {emoji: "📁", nerd: "", plain: ">", kaomoji: "(⌐■_■)", squares: "🟨"},
	Video:     {emoji: "🎬", nerd: "", plain: "▶", kaomoji: "(▀̿Ĺ̯▀̿ ̿)", squares: "🟪"},
	Separator: {emoji: "📺", nerd: "", plain: "#", kaomoji: "(￣ー￣)", squares: "⬛"},
	Lock:      {emoji: "🔒", nerd: "", plain: "*", kaomoji: "(¬_¬)", squares: "🟧"},
	Search:    {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(°ロ°)", squares: "🟫"},
	More:      {emoji: "⏬", nerd: "", plain: "...", kaomoji: "(・・ )?", squares: "⬜"},
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	return icons[i].variant(viper.GetString(key.IconsVariant))
}
