package converter

import "github.com/riverfjs/sitemark/internal/types"

type (
	Span      = types.Span
	PlainText = types.PlainText
	Bold      = types.Bold
	Italic    = types.Italic
	Link      = types.Link
)

// Segment 将一段块文本切分为有序的行内片段
//
// 每一轮在剩余文本中独立搜索三种模式，取起始位置最小者；起始位置相同时
// 按 inlinePatterns 的顺序（Bold、Italic、Link）取第一个。不支持转义。
// 空字符串返回 nil。
func Segment(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	remaining := []rune(text)

	for len(remaining) > 0 {
		var best *inlineMatch
		for i := range inlinePatterns {
			m := inlinePatterns[i].find(remaining)
			if m == nil {
				continue
			}
			if best == nil || m.start < best.start {
				best = m
			}
		}

		if best == nil {
			spans = append(spans, PlainText{Text: string(remaining)})
			break
		}

		if best.start > 0 {
			spans = append(spans, PlainText{Text: string(remaining[:best.start])})
		}
		spans = append(spans, best.pattern.build(best.groups))
		remaining = remaining[best.start+best.length:]
	}

	return spans
}

// SingleText 片段只有一个且为纯文本时返回该文本
func SingleText(spans []Span) (string, bool) {
	if len(spans) != 1 {
		return "", false
	}
	if p, ok := spans[0].(PlainText); ok {
		return p.Text, true
	}
	return "", false
}
