package sitemark

import (
	"strings"
	"unicode"

	"github.com/riverfjs/sitemark/internal/buffer"
	"github.com/riverfjs/sitemark/internal/types"
)

// 导出类型别名
type Entity = types.Entity

const ellipsis = "…"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Browsers index strings in UTF-16 code units, not Go string bytes or runes.
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// TrimSpace 去掉首尾空白，并把 entities 平移、裁剪到剩余文本内
//
// 完全落在被去掉部分里的 entity 会被丢弃。
func TrimSpace(text string, entities []Entity) (string, []Entity) {
	body := strings.TrimLeftFunc(text, unicode.IsSpace)
	lead := UTF16Len(text[:len(text)-len(body)])
	body = strings.TrimRightFunc(body, unicode.IsSpace)
	if len(body) == len(text) {
		return text, entities
	}
	if body == "" {
		return "", nil
	}

	end := lead + UTF16Len(body)
	var kept []Entity
	for _, e := range entities {
		from, to := max(e.Offset, lead), min(e.Offset+e.Length, end)
		if from >= to {
			continue
		}
		e.Offset, e.Length = from-lead, to-from
		kept = append(kept, e)
	}
	return body, kept
}

// Excerpt 生成链接预览（如 og:description）使用的纯文本摘要
//
// 去掉所有标记，空白折叠为单个空格；超过 maxLen 个 UTF-16 code units 时
// 在不超过上限的最后一个词边界处截断并追加 "…"（省略号计入长度）。
// maxLen <= 0 表示不截断。
func Excerpt(document string, maxLen int) string {
	text, _ := Flatten(document, WithConfig(&RenderConfig{BulletSymbol: ""}))
	text = strings.Join(strings.Fields(text), " ")
	if maxLen <= 0 || UTF16Len(text) <= maxLen {
		return text
	}

	budget := maxLen - UTF16Len(ellipsis)
	if budget <= 0 {
		return ellipsis
	}

	cut := 0
	lastSpace := -1
	used := 0
	for i, r := range text {
		w := 1
		if r > 0xFFFF {
			w = 2
		}
		if used+w > budget {
			break
		}
		used += w
		cut = i + len(string(r))
		if r == ' ' {
			lastSpace = i
		}
	}

	// 下一个字符恰好是空格时，cut 本身就是词边界
	if cut < len(text) && text[cut] != ' ' && lastSpace > 0 {
		cut = lastSpace
	}
	return strings.TrimRight(text[:cut], " ") + ellipsis
}
