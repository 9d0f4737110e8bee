package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/adrg/frontmatter"
)

// frontMatter is the optional YAML (---) or TOML (+++) header of a document.
type frontMatter struct {
	Title string `yaml:"title" toml:"title"`
	Class string `yaml:"class" toml:"class"`
}

// document is an input file split into front matter and markdown body.
type document struct {
	name string
	meta frontMatter
	body string
	size int
}

// readDocument reads path, or stdin when path is empty or "-".
func readDocument(path string, stdin io.Reader) (*document, error) {
	var (
		data []byte
		err  error
		name = path
	)
	if path == "" || path == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	doc := &document{name: name, size: len(data)}
	body, err := frontmatter.Parse(bytes.NewReader(data), &doc.meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter in %s: %w", name, err)
	}
	doc.body = string(body)
	return doc, nil
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
