package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/riverfjs/sitemark"
)

const (
	formatTree = "tree"
	formatHTML = "html"
	formatText = "text"
	formatJSON = "json"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

type renderFlags struct {
	format string
	class  string
	stats  bool
}

func newRenderCmd(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document",
		Long:  `Render a document as an outline (tree), HTML, JSON or plain text. Reads stdin when file is omitted or "-".`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: tree, html, text or json")
	cmd.Flags().StringVar(&flags.class, "class", "", "Styling class for the outer container")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "Print block and span counts to stderr")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, global *globalFlags, flags *renderFlags) error {
	cfg, err := loadConfig(global.configPath)
	if err != nil {
		return err
	}

	doc, err := readDocument(pathArg(args), cmd.InOrStdin())
	if err != nil {
		return err
	}
	global.debugf("read %s (%s), title %q", doc.name, humanize.Bytes(uint64(doc.size)), doc.meta.Title)

	format := firstNonEmpty(flags.format, cfg.Format, formatTree)
	class := firstNonEmpty(flags.class, doc.meta.Class, cfg.Class)
	opts := []sitemark.Option{sitemark.WithClass(class), sitemark.WithConfig(&cfg.Render)}

	tree := sitemark.Render(doc.body, opts...)
	if flags.stats {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d blocks, %d spans, %s\n",
			len(tree.Blocks), countSpans(tree.Blocks), humanize.Bytes(uint64(doc.size)))
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatTree:
		writeTree(out, tree)
		return nil
	case formatHTML:
		html, err := sitemark.HTML(doc.body, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	case formatText:
		text, _ := sitemark.Flatten(doc.body, opts...)
		_, err := fmt.Fprintln(out, text)
		return err
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(treeView(tree)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func countSpans(blocks []sitemark.Block) int {
	n := 0
	for _, b := range blocks {
		switch v := b.(type) {
		case *sitemark.Heading:
			n += len(v.Inline)
		case *sitemark.Paragraph:
			n += len(v.Inline)
		case *sitemark.BulletList:
			for _, item := range v.Items {
				n += len(item.Inline)
			}
		}
	}
	return n
}

// --- tree outline ---

func writeTree(w io.Writer, tree *sitemark.Tree) {
	if tree.Class != "" {
		fmt.Fprintf(w, "container class=%q\n", tree.Class)
	}
	for _, b := range tree.Blocks {
		switch v := b.(type) {
		case *sitemark.Heading:
			fmt.Fprintf(w, "h%d: %s\n", v.Level, outlineSpans(v.Inline))
		case *sitemark.Paragraph:
			fmt.Fprintf(w, "p: %s\n", outlineSpans(v.Inline))
		case *sitemark.BulletList:
			fmt.Fprintln(w, "ul:")
			for _, item := range v.Items {
				fmt.Fprintf(w, "  li: %s\n", outlineSpans(item.Inline))
			}
		}
	}
}

func outlineSpans(spans []sitemark.Span) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		if l, ok := s.(sitemark.Link); ok {
			parts = append(parts, fmt.Sprintf("link(%q -> %q)", l.Text, l.URL))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%q)", s.Kind(), s.Plain()))
	}
	return strings.Join(parts, " ")
}

// --- json view ---

type spanJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

type itemJSON struct {
	Text  string     `json:"text"`
	Spans []spanJSON `json:"spans"`
}

type blockJSON struct {
	Kind  string     `json:"kind"`
	Text  string     `json:"text,omitempty"`
	Spans []spanJSON `json:"spans,omitempty"`
	Items []itemJSON `json:"items,omitempty"`
}

type treeJSON struct {
	Class  string      `json:"class,omitempty"`
	Blocks []blockJSON `json:"blocks"`
}

func treeView(tree *sitemark.Tree) treeJSON {
	view := treeJSON{Class: tree.Class, Blocks: make([]blockJSON, 0, len(tree.Blocks))}
	for _, b := range tree.Blocks {
		bj := blockJSON{Kind: b.Kind().String()}
		switch v := b.(type) {
		case *sitemark.Heading:
			bj.Text, bj.Spans = v.Text, spansView(v.Inline)
		case *sitemark.Paragraph:
			bj.Text, bj.Spans = v.Text, spansView(v.Inline)
		case *sitemark.BulletList:
			for _, item := range v.Items {
				bj.Items = append(bj.Items, itemJSON{Text: item.Text, Spans: spansView(item.Inline)})
			}
		}
		view.Blocks = append(view.Blocks, bj)
	}
	return view
}

func spansView(spans []sitemark.Span) []spanJSON {
	out := make([]spanJSON, 0, len(spans))
	for _, s := range spans {
		sj := spanJSON{Kind: s.Kind().String(), Text: s.Plain()}
		if l, ok := s.(sitemark.Link); ok {
			sj.URL = l.URL
		}
		out = append(out, sj)
	}
	return out
}
