package sitemark

import (
	"sync"

	"github.com/riverfjs/sitemark/internal/types"
)

// 导出类型别名
type (
	RenderConfig = types.RenderConfig

	Block      = types.Block
	BlockKind  = types.BlockKind
	Heading    = types.Heading
	BulletList = types.BulletList
	ListItem   = types.ListItem
	Paragraph  = types.Paragraph

	Span      = types.Span
	SpanKind  = types.SpanKind
	PlainText = types.PlainText
	Bold      = types.Bold
	Italic    = types.Italic
	Link      = types.Link
)

const (
	KindHeading2   = types.KindHeading2
	KindHeading3   = types.KindHeading3
	KindBulletList = types.KindBulletList
	KindParagraph  = types.KindParagraph

	SpanPlain  = types.SpanPlain
	SpanBold   = types.SpanBold
	SpanItalic = types.SpanItalic
	SpanLink   = types.SpanLink
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
