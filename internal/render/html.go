package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/sitemark/internal/types"
)

// engine 只使用 goldmark 的 HTML 渲染器；AST 由 Build 直接构造，不经过 goldmark 解析
var engine = goldmark.New()

// Build 将块序列转换为 goldmark AST
func Build(blocks []types.Block, config *types.RenderConfig) (*ast.Document, error) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	doc := ast.NewDocument()
	for _, b := range blocks {
		node, err := buildBlock(b, config)
		if err != nil {
			return nil, err
		}
		doc.AppendChild(doc, node)
	}
	return doc, nil
}

func buildBlock(b types.Block, config *types.RenderConfig) (ast.Node, error) {
	switch n := b.(type) {
	case *types.Heading:
		heading := ast.NewHeading(n.Level)
		appendSpans(heading, n.Inline, config)
		return heading, nil
	case *types.Paragraph:
		para := ast.NewParagraph()
		appendSpans(para, n.Inline, config)
		return para, nil
	case *types.BulletList:
		list := ast.NewList('-')
		list.IsTight = true
		for _, item := range n.Items {
			li := ast.NewListItem(2)
			tb := ast.NewTextBlock()
			appendSpans(tb, item.Inline, config)
			li.AppendChild(li, tb)
			list.AppendChild(list, li)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("render: unsupported block %T", b)
	}
}

func appendSpans(parent ast.Node, spans []types.Span, config *types.RenderConfig) {
	for _, s := range spans {
		switch n := s.(type) {
		case types.PlainText:
			parent.AppendChild(parent, rawString(n.Text))
		case types.Bold:
			em := ast.NewEmphasis(2)
			em.AppendChild(em, rawString(n.Text))
			parent.AppendChild(parent, em)
		case types.Italic:
			em := ast.NewEmphasis(1)
			em.AppendChild(em, rawString(n.Text))
			parent.AppendChild(parent, em)
		case types.Link:
			link := ast.NewLink()
			link.Destination = []byte(n.URL)
			if config.LinkTarget != "" {
				link.SetAttributeString("target", []byte(config.LinkTarget))
			}
			if config.LinkRel != "" {
				link.SetAttributeString("rel", []byte(config.LinkRel))
			}
			link.AppendChild(link, rawString(n.Text))
			parent.AppendChild(parent, link)
		}
	}
}

// rawString 文本按原样输出（只做 HTML 转义，不解析实体和反斜杠转义）
func rawString(text string) *ast.String {
	s := ast.NewString([]byte(text))
	s.SetRaw(true)
	return s
}

// HTML 渲染块序列；class 非空时外层包一个 div
func HTML(w io.Writer, blocks []types.Block, class string, config *types.RenderConfig) error {
	doc, err := Build(blocks, config)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := engine.Renderer().Render(&body, nil, doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	if class == "" {
		_, err = w.Write(body.Bytes())
		return err
	}

	var out bytes.Buffer
	out.WriteString(`<div class="`)
	out.Write(util.EscapeHTML([]byte(class)))
	out.WriteString("\">\n")
	out.Write(body.Bytes())
	out.WriteString("</div>\n")
	_, err = w.Write(out.Bytes())
	return err
}
