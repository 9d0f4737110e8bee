package converter

import (
	"regexp"
	"strings"

	"github.com/riverfjs/sitemark/internal/types"
)

type (
	Block      = types.Block
	Heading    = types.Heading
	BulletList = types.BulletList
	ListItem   = types.ListItem
	Paragraph  = types.Paragraph
)

const (
	heading2Prefix = "## "
	heading3Prefix = "### "
	bulletPrefix   = "- "
)

// blankLineRe 两个及以上连续换行
var blankLineRe = regexp.MustCompile(`\n{2,}`)

// SplitBlocks 按空行把文档切分为块并分类
//
// 分类顺序：“## ” → 二级标题，“### ” → 三级标题，所有非空行都以“- ”开头 →
// 无序列表，其余为段落。返回的块只有原始文本，行内片段由 Parse 填充。
func SplitBlocks(document string) []Block {
	var blocks []Block
	for _, candidate := range blankLineRe.Split(document, -1) {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, classify(trimmed))
	}
	return blocks
}

func classify(trimmed string) Block {
	if text, ok := strings.CutPrefix(trimmed, heading2Prefix); ok {
		return &Heading{Level: 2, Text: text}
	}
	if text, ok := strings.CutPrefix(trimmed, heading3Prefix); ok {
		return &Heading{Level: 3, Text: text}
	}
	if items, ok := bulletItems(trimmed); ok {
		return &BulletList{Items: items}
	}
	return &Paragraph{Text: trimmed}
}

// bulletItems 仅当每个非空行都是列表项时返回列表项
func bulletItems(trimmed string) ([]*ListItem, bool) {
	var items []*ListItem
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		text, ok := strings.CutPrefix(line, bulletPrefix)
		if !ok {
			return nil, false
		}
		items = append(items, &ListItem{Text: text})
	}
	return items, len(items) > 0
}

// Parse 切分块并对每个块的文本做行内切分
func Parse(document string) []Block {
	blocks := SplitBlocks(document)
	for _, b := range blocks {
		switch n := b.(type) {
		case *Heading:
			n.Inline = Segment(n.Text)
		case *Paragraph:
			n.Inline = Segment(n.Text)
		case *BulletList:
			for _, item := range n.Items {
				item.Inline = Segment(item.Text)
			}
		}
	}
	return blocks
}
