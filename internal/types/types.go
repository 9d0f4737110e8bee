package types

// BlockKind 标识块级元素的类型
type BlockKind int

const (
	KindHeading2 BlockKind = iota
	KindHeading3
	KindBulletList
	KindParagraph
)

// String returns the string representation of BlockKind.
func (k BlockKind) String() string {
	switch k {
	case KindHeading2:
		return "heading2"
	case KindHeading3:
		return "heading3"
	case KindBulletList:
		return "bullet_list"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// SpanKind 标识行内片段的类型
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanLink
)

// String returns the string representation of SpanKind.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanLink:
		return "link"
	default:
		return "unknown"
	}
}

// Span 是块文本中的一个行内片段
//
// 集合是封闭的：只有本包中的 PlainText、Bold、Italic、Link 实现它。
type Span interface {
	Kind() SpanKind
	// Plain 返回去掉标记后的文本（链接返回显示文本）
	Plain() string
	// Source 返回片段在原文中对应的子串（包含分隔符）
	Source() string
	span()
}

// PlainText 未加样式的文本
type PlainText struct {
	Text string `json:"text"`
}

func (s PlainText) Kind() SpanKind { return SpanPlain }
func (s PlainText) Plain() string { return s.Text }
func (s PlainText) Source() string { return s.Text }
func (PlainText) span() {}

// Bold **text**
type Bold struct {
	Text string `json:"text"`
}

func (s Bold) Kind() SpanKind { return SpanBold }
func (s Bold) Plain() string { return s.Text }
func (s Bold) Source() string { return "**" + s.Text + "**" }
func (Bold) span() {}

// Italic *text*
type Italic struct {
	Text string `json:"text"`
}

func (s Italic) Kind() SpanKind { return SpanItalic }
func (s Italic) Plain() string { return s.Text }
func (s Italic) Source() string { return "*" + s.Text + "*" }
func (Italic) span() {}

// Link [text](url)
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

func (s Link) Kind() SpanKind { return SpanLink }
func (s Link) Plain() string { return s.Text }
func (s Link) Source() string { return "[" + s.Text + "](" + s.URL + ")" }
func (Link) span() {}

// Block 是文档中的顶层结构单元
//
// 集合是封闭的：Heading、BulletList、Paragraph。
type Block interface {
	Kind() BlockKind
	block()
}

// Heading 二级或三级标题
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Inline []Span `json:"-"`
}

// Kind returns KindHeading2 or KindHeading3 depending on Level.
func (h *Heading) Kind() BlockKind {
	if h.Level == 3 {
		return KindHeading3
	}
	return KindHeading2
}

func (*Heading) block() {}

// ListItem 无序列表中的一项
type ListItem struct {
	Text   string `json:"text"`
	Inline []Span `json:"-"`
}

// BulletList 无序列表
type BulletList struct {
	Items []*ListItem `json:"items"`
}

func (l *BulletList) Kind() BlockKind { return KindBulletList }
func (*BulletList) block() {}

// Paragraph 段落，内部的单个换行保留在 Text 中
type Paragraph struct {
	Text   string `json:"text"`
	Inline []Span `json:"-"`
}

func (p *Paragraph) Kind() BlockKind { return KindParagraph }
func (*Paragraph) block() {}

// Entity 表示扁平文本中的一个样式区间
//
// Offset 和 Length 以 UTF-16 code units 计，与浏览器端字符串下标一致。
type Entity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	LinkTarget   string `toml:"link_target"`
	LinkRel      string `toml:"link_rel"`
	BulletSymbol string `toml:"bullet_symbol"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LinkTarget:   "_blank",
		LinkRel:      "noreferrer",
		BulletSymbol: "•",
	}
}
