package codeview

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, fades comments,
// and marks property names and strings so that CSS and JSON
// remain readable.
var PlainStyle = chroma.MustNewStyle("fraglight-plain", map[chroma.TokenType]string{
	chroma.Comment:       "#666666",
	chroma.NameAttribute: "#1a5fb4",
	chroma.NameTag:       "#1a5fb4",
	chroma.LiteralString: "#26733a",
	chroma.PreWrapper:    "bg:#eeeeee",
	chroma.Background:    "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}
