package converter

import (
	"regexp"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// inlinePattern 一种行内标记及其识别规则
type inlinePattern struct {
	name string
	// search 返回第一个匹配的起始位置、长度（以 rune 计）和捕获组
	search func(runes []rune) (start, length int, groups []string, ok bool)
	// build 由捕获组构造片段
	build func(groups []string) Span
}

// re2Search 用标准库 regexp（RE2，线性时间）搜索。
// 粗体和链接不需要环视，输入再长也不会出现回溯爆炸。
func re2Search(expr string) func([]rune) (int, int, []string, bool) {
	re := regexp.MustCompile(expr)
	return func(runes []rune) (int, int, []string, bool) {
		s := string(runes)
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return 0, 0, nil, false
		}
		groups := make([]string, 0, len(loc)/2-1)
		for i := 2; i < len(loc); i += 2 {
			groups = append(groups, s[loc[i]:loc[i+1]])
		}
		start := utf8.RuneCountInString(s[:loc[0]])
		length := utf8.RuneCountInString(s[loc[0]:loc[1]])
		return start, length, groups, true
	}
}

// lookaroundSearch 用 regexp2 搜索，只给斜体用：
// 星号两侧不能紧挨另一个星号，需要 lookbehind/lookahead。
// 不设置 MatchTimeout，FindRunesMatch 不会返回错误。
func lookaroundSearch(expr string) func([]rune) (int, int, []string, bool) {
	re := regexp2.MustCompile(expr, regexp2.None)
	return func(runes []rune) (int, int, []string, bool) {
		m, _ := re.FindRunesMatch(runes)
		if m == nil {
			return 0, 0, nil, false
		}
		all := m.Groups()
		groups := make([]string, 0, len(all)-1)
		for _, g := range all[1:] {
			groups = append(groups, g.String())
		}
		return m.Index, m.Length, groups, true
	}
}

// inlinePatterns 按平局优先级排列：Bold > Italic > Link
var inlinePatterns = []inlinePattern{
	{
		name:   "bold",
		search: re2Search(`\*\*(.+?)\*\*`),
		build: func(g []string) Span {
			return Bold{Text: g[0]}
		},
	},
	{
		name:   "italic",
		search: lookaroundSearch(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`),
		build: func(g []string) Span {
			return Italic{Text: g[0]}
		},
	},
	{
		name:   "link",
		search: re2Search(`\[(.+?)\]\((.+?)\)`),
		build: func(g []string) Span {
			return Link{Text: g[0], URL: g[1]}
		},
	},
}

// inlineMatch 一次模式搜索的结果，下标以 rune 计
type inlineMatch struct {
	pattern *inlinePattern
	start   int
	length  int
	groups  []string
}

// find 在 runes 中搜索第一个匹配，没有匹配时返回 nil
func (p *inlinePattern) find(runes []rune) *inlineMatch {
	start, length, groups, ok := p.search(runes)
	if !ok {
		return nil
	}
	return &inlineMatch{
		pattern: p,
		start:   start,
		length:  length,
		groups:  groups,
	}
}
