// Package sitemark 将网站文案使用的 Markdown 子集渲染为有序的块/行内片段树
//
// 支持的语法：
//   - 块：空行分隔；"## " 二级标题、"### " 三级标题、每行都以 "- " 开头的无序列表、段落
//   - 行内：**粗体**、*斜体*、[链接](url)
//
// 不支持转义；标记无法匹配时按纯文本输出，渲染永远不会失败。
// 所有函数都是纯函数，可以并发调用。
//
// 主要 API：
//   - Render(): 返回 Tree（块 + 行内片段）
//   - HTML(): 渲染为 HTML，链接带 target/rel
//   - Flatten(): 返回纯文本 + 样式区间
//   - Excerpt(): 生成用于链接预览的纯文本摘要
//
// 示例：
//
//	tree := sitemark.Render(content, sitemark.WithClass("prose"))
//	for _, block := range tree.Blocks {
//	    switch b := block.(type) {
//	    case *sitemark.Heading:
//	        // b.Level, b.Inline
//	    case *sitemark.BulletList:
//	        // b.Items
//	    case *sitemark.Paragraph:
//	        // b.Inline
//	    }
//	}
package sitemark

import (
	"strings"

	"github.com/riverfjs/sitemark/internal/converter"
	"github.com/riverfjs/sitemark/internal/render"
)

// Tree 一次渲染的结果
type Tree struct {
	// Class 调用方传入的样式类，原样透传给最外层容器
	Class  string
	Blocks []Block
}

// Render 将文档解析为块树
func Render(document string, opts ...Option) *Tree {
	options := applyOptions(opts...)
	return &Tree{
		Class:  options.Class,
		Blocks: converter.Parse(document),
	}
}

// Parse 返回文档的块序列（已完成行内切分）
func Parse(document string) []Block {
	return converter.Parse(document)
}

// SegmentInline 将一段文本切分为行内片段
func SegmentInline(text string) []Span {
	return converter.Segment(text)
}

// SingleText 片段只有一个且为纯文本时返回其文本，调用方可以不加包装直接输出
func SingleText(spans []Span) (string, bool) {
	return converter.SingleText(spans)
}

// HTML 将文档渲染为 HTML
//
// 链接带上配置中的 target 和 rel；设置了 class 时外层包一个 div。
func HTML(document string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	var sb strings.Builder
	if err := render.HTML(&sb, converter.Parse(document), options.Class, options.Config); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Flatten 将文档转换为 (plain_text, entities)
//
// 块之间用空行分隔，列表项各占一行并加上项目符号。
// 实体的 Offset/Length 以 UTF-16 code units 计。结果首尾不含空白
// （例如 "##  标题" 的多余空格、空项目符号留下的空格）。
func Flatten(document string, opts ...Option) (string, []Entity) {
	options := applyOptions(opts...)
	walker := converter.NewWalker(options.Config)
	walker.Walk(converter.Parse(document))
	return TrimSpace(walker.Result())
}
