package sitemark

import (
	"reflect"
	"strings"
	"testing"
)

// TestSegmentInline 测试行内切分
func TestSegmentInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "bold before italic",
			text: "**a** *b*",
			want: []Span{Bold{Text: "a"}, PlainText{Text: " "}, Italic{Text: "b"}},
		},
		{
			name: "link in sentence",
			text: "See [here](https://x.test) now",
			want: []Span{PlainText{Text: "See "}, Link{Text: "here", URL: "https://x.test"}, PlainText{Text: " now"}},
		},
		{
			name: "plain only",
			text: "nothing to see",
			want: []Span{PlainText{Text: "nothing to see"}},
		},
		{
			name: "unmatched bold falls through to italic",
			text: "**a *b*",
			want: []Span{PlainText{Text: "**a "}, Italic{Text: "b"}},
		},
		{
			name: "italic needs a non-adjacent closing asterisk",
			text: "**a*",
			want: []Span{PlainText{Text: "**a*"}},
		},
		{
			name: "unmatched bracket",
			text: "[not a link] (x)",
			want: []Span{PlainText{Text: "[not a link] (x)"}},
		},
		{
			name: "empty bold is literal",
			text: "****",
			want: []Span{PlainText{Text: "****"}},
		},
		{
			name: "earliest match wins over priority",
			text: "[a](b) **c**",
			want: []Span{Link{Text: "a", URL: "b"}, PlainText{Text: " "}, Bold{Text: "c"}},
		},
		{
			name: "bold does not cross newline",
			text: "**a\nb**",
			want: []Span{PlainText{Text: "**a\nb**"}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentInline(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentInline(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

// TestSegmentInline_RoundTrip 片段的原文拼接后等于输入，去掉标记后等于纯文本
func TestSegmentInline_RoundTrip(t *testing.T) {
	tests := []struct {
		in    string
		plain string
	}{
		{
			in:    "Join **us** on *Saturday* at [the hall](https://example.org/map).",
			plain: "Join us on Saturday at the hall.",
		},
		{in: "**a** *b* [c](d) plain", plain: "a b c plain"},
		{in: "stray * asterisk and ** double", plain: "stray * asterisk and ** double"},
		{in: "***triple***", plain: "*triple*"},
		{in: "[x](y)[z](w)", plain: "xz"},
		{in: "多语言 **文本** 和 *斜体* 🎉", plain: "多语言 文本 和 斜体 🎉"},
	}
	for _, tt := range tests {
		var source, plain strings.Builder
		for _, s := range SegmentInline(tt.in) {
			source.WriteString(s.Source())
			plain.WriteString(s.Plain())
		}
		if source.String() != tt.in {
			t.Errorf("source round trip = %q, want %q", source.String(), tt.in)
		}
		if plain.String() != tt.plain {
			t.Errorf("plain text of %q = %q, want %q", tt.in, plain.String(), tt.plain)
		}
	}
}

// TestSegmentInline_LinkAfterLongUnclosedLine 超长的未闭合行不影响下一行的链接
func TestSegmentInline_LinkAfterLongUnclosedLine(t *testing.T) {
	spans := SegmentInline(strings.Repeat("[", 30000) + "\n[a](b)")
	if len(spans) != 2 {
		t.Fatalf("SegmentInline() returned %d spans, want 2", len(spans))
	}
	if got, ok := spans[1].(Link); !ok || got != (Link{Text: "a", URL: "b"}) {
		t.Errorf("spans[1] = %#v, want Link{a, b}", spans[1])
	}
}

// TestParse_Headings 测试标题识别
func TestParse_Headings(t *testing.T) {
	blocks := Parse("## Top\n\n### Sub")
	if len(blocks) != 2 {
		t.Fatalf("Parse() returned %d blocks, want 2", len(blocks))
	}
	if blocks[0].Kind() != KindHeading2 {
		t.Errorf("blocks[0].Kind() = %v, want heading2", blocks[0].Kind())
	}
	if h := blocks[0].(*Heading); h.Text != "Top" {
		t.Errorf("heading text = %q, want 'Top'", h.Text)
	}
	if blocks[1].Kind() != KindHeading3 {
		t.Errorf("blocks[1].Kind() = %v, want heading3", blocks[1].Kind())
	}
	if h := blocks[1].(*Heading); h.Text != "Sub" || h.Level != 3 {
		t.Errorf("heading = %+v, want level 3 'Sub'", h)
	}
}

// TestParse_BulletList 测试列表全有或全无
func TestParse_BulletList(t *testing.T) {
	blocks := Parse("- one\n- two")
	if len(blocks) != 1 {
		t.Fatalf("Parse() returned %d blocks, want 1", len(blocks))
	}
	list, ok := blocks[0].(*BulletList)
	if !ok {
		t.Fatalf("blocks[0] = %T, want *BulletList", blocks[0])
	}
	if len(list.Items) != 2 || list.Items[0].Text != "one" || list.Items[1].Text != "two" {
		t.Errorf("items = %+v, want [one two]", list.Items)
	}

	blocks = Parse("- one\ntwo")
	if p, ok := blocks[0].(*Paragraph); !ok || p.Text != "- one\ntwo" {
		t.Errorf("mixed block = %#v, want paragraph '- one\\ntwo'", blocks[0])
	}
}

// TestParse_HeadingWinsOverList 标题前缀优先于列表
func TestParse_HeadingWinsOverList(t *testing.T) {
	blocks := Parse("## Title\n- a\n- b")
	h, ok := blocks[0].(*Heading)
	if !ok {
		t.Fatalf("blocks[0] = %T, want *Heading", blocks[0])
	}
	if h.Text != "Title\n- a\n- b" {
		t.Errorf("heading text = %q", h.Text)
	}
}

// TestParse_BlankLineSeparation 测试空行分块
func TestParse_BlankLineSeparation(t *testing.T) {
	blocks := Parse("A\n\nB")
	if len(blocks) != 2 {
		t.Fatalf("Parse() returned %d blocks, want 2", len(blocks))
	}
	for i, want := range []string{"A", "B"} {
		if p := blocks[i].(*Paragraph); p.Text != want {
			t.Errorf("blocks[%d].Text = %q, want %q", i, p.Text, want)
		}
	}

	blocks = Parse("A\nB")
	if len(blocks) != 1 || blocks[0].(*Paragraph).Text != "A\nB" {
		t.Errorf("single newline should stay in one paragraph, got %#v", blocks)
	}
}

// TestParse_Empty 测试空输入
func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\n", " \t\n  \n"} {
		if blocks := Parse(in); len(blocks) != 0 {
			t.Errorf("Parse(%q) = %d blocks, want 0", in, len(blocks))
		}
	}
}

// TestParse_Idempotent 相同输入得到结构相同的结果
func TestParse_Idempotent(t *testing.T) {
	doc := "## About\n\nWe **build** things.\n\n- one\n- [two](https://x.test)"
	first := Parse(doc)
	second := Parse(doc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse() not deterministic:\n%#v\n%#v", first, second)
	}
}

// TestParse_ListItemsSegmented 列表项也做行内切分
func TestParse_ListItemsSegmented(t *testing.T) {
	list := Parse("- **bold** item\n\n- plain")[0].(*BulletList)
	want := []Span{Bold{Text: "bold"}, PlainText{Text: " item"}}
	if !reflect.DeepEqual(list.Items[0].Inline, want) {
		t.Errorf("item inline = %#v, want %#v", list.Items[0].Inline, want)
	}
}

// TestRender_Class 样式类原样透传
func TestRender_Class(t *testing.T) {
	tree := Render("Hello", WithClass("prose lg:prose-xl"))
	if tree.Class != "prose lg:prose-xl" {
		t.Errorf("tree.Class = %q", tree.Class)
	}
	if len(tree.Blocks) != 1 {
		t.Fatalf("tree.Blocks = %d, want 1", len(tree.Blocks))
	}
	text, ok := SingleText(tree.Blocks[0].(*Paragraph).Inline)
	if !ok || text != "Hello" {
		t.Errorf("SingleText() = %q, %v; want 'Hello', true", text, ok)
	}
}

// TestSingleText 多片段时不返回裸文本
func TestSingleText(t *testing.T) {
	if _, ok := SingleText(SegmentInline("a **b**")); ok {
		t.Error("SingleText() should be false for multiple spans")
	}
	if _, ok := SingleText(SegmentInline("**b**")); ok {
		t.Error("SingleText() should be false for a styled span")
	}
}

// BenchmarkSegmentInline 基准测试行内切分
func BenchmarkSegmentInline(b *testing.B) {
	text := strings.Repeat("Support **local** schools with *your* time. [Learn more](https://example.org). ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SegmentInline(text)
	}
}

// BenchmarkParse 基准测试整篇解析
func BenchmarkParse(b *testing.B) {
	doc := strings.Repeat("## Section\n\nSome **bold** text and a [link](https://x.test).\n\n- a\n- b\n\n", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(doc)
	}
}
