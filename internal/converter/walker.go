package converter

import (
	"strings"

	"github.com/riverfjs/sitemark/internal/buffer"
	"github.com/riverfjs/sitemark/internal/types"
)

type (
	Entity       = types.Entity
	RenderConfig = types.RenderConfig
)

// entityScope 用于跟踪未闭合的实体
type entityScope struct {
	entityType  string
	startOffset int
	url         string
}

var headingEntitiesMap = map[int][]string{
	2: {"bold", "underline"},
	3: {"bold"},
}

// Walker 遍历块序列并生成扁平文本和样式区间
type Walker struct {
	buf         *buffer.TextBuffer
	config      *RenderConfig
	entityStack []entityScope
	entities    []Entity
	blockCount  int
}

// NewWalker 创建新的 Walker
func NewWalker(config *RenderConfig) *Walker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &Walker{
		buf:      buffer.New(),
		config:   config,
		entities: make([]Entity, 0),
	}
}

// Walk 依次处理每个块
func (w *Walker) Walk(blocks []Block) {
	for _, b := range blocks {
		w.ensureBlockSpacing()
		switch n := b.(type) {
		case *Heading:
			w.onHeading(n)
		case *BulletList:
			w.onBulletList(n)
		case *Paragraph:
			w.onSpans(n.Inline)
		}
		w.blockCount++
	}
}

// Result 返回转换结果
func (w *Walker) Result() (string, []Entity) {
	return w.buf.String(), w.entities
}

func (w *Walker) onHeading(h *Heading) {
	etypes := headingEntitiesMap[h.Level]
	if etypes == nil {
		etypes = []string{"bold"}
	}
	for _, etype := range etypes {
		w.pushEntity(etype, "")
	}
	w.onSpans(h.Inline)
	for i := len(etypes) - 1; i >= 0; i-- {
		w.popEntity(etypes[i])
	}
}

func (w *Walker) onBulletList(l *BulletList) {
	for i, item := range l.Items {
		if i > 0 {
			w.buf.Write("\n")
		}
		w.buf.Write(w.config.BulletSymbol + " ")
		w.onSpans(item.Inline)
	}
}

func (w *Walker) onSpans(spans []Span) {
	for _, s := range spans {
		switch n := s.(type) {
		case PlainText:
			w.buf.Write(n.Text)
		case Bold:
			w.styled("bold", "", n.Text)
		case Italic:
			w.styled("italic", "", n.Text)
		case Link:
			w.styled("text_link", n.URL, n.Text)
		}
	}
}

func (w *Walker) styled(entityType, url, text string) {
	w.pushEntity(entityType, url)
	w.buf.Write(text)
	w.popEntity(entityType)
}

// --- Entity helpers ---

func (w *Walker) pushEntity(entityType string, url string) {
	w.entityStack = append(w.entityStack, entityScope{
		entityType:  entityType,
		startOffset: w.buf.UTF16Offset(),
		url:         url,
	})
}

func (w *Walker) popEntity(entityType string) {
	for i := len(w.entityStack) - 1; i >= 0; i-- {
		if w.entityStack[i].entityType == entityType {
			scope := w.entityStack[i]
			w.entityStack = append(w.entityStack[:i], w.entityStack[i+1:]...)
			w.finalizeEntity(scope)
			return
		}
	}
}

func (w *Walker) finalizeEntity(scope entityScope) {
	length := w.buf.UTF16Offset() - scope.startOffset
	if length <= 0 {
		return
	}
	w.entities = append(w.entities, Entity{
		Type:   scope.entityType,
		Offset: scope.startOffset,
		Length: length,
		URL:    scope.url,
	})
}

func (w *Walker) ensureBlockSpacing() {
	// 块之间保留一个空行 (\n\n)
	if w.blockCount > 0 {
		if needed := 2 - w.buf.TrailingNewlineCount(); needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}
