// Package convert imports book XML into chapters. The source format nests a
// heading chain h0..h3 under a top-level title, with leaf content either in
// h4 sections or directly in the h3; chapter bodies are paragraph runs.
package convert

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Book is one converted source file.
type Book struct {
	Title    string
	Class    string
	Chapters []Chapter
}

// Chapter is one leaf section rendered as markdown.
type Chapter struct {
	Title string
	Body  string
}

var (
	classRe    = regexp.MustCompile(`([mat])\.xml$`)
	indexRe    = regexp.MustCompile(`^\[\d+\]\s*`)
	invalidRe  = regexp.MustCompile(`[<>:"/\\|?*]`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// Classify returns the m/a/t classification key from a source filename.
func Classify(filename string) (string, bool) {
	m := classRe.FindStringSubmatch(strings.ToLower(filename))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SanitizeName strips a leading "[n] " index and characters unusable in
// titles or paths.
func SanitizeName(name string) string {
	name = indexRe.ReplaceAllString(name, "")
	return strings.TrimSpace(invalidRe.ReplaceAllString(name, "_"))
}

type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

func (n *node) find(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

func (n *node) findAll(name string) []*node {
	var out []*node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// text flattens the element's text content, normalizing whitespace.
func (n *node) text() string {
	var b strings.Builder
	n.collect(&b)
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(b.String(), " "))
}

func (n *node) collect(b *strings.Builder) {
	b.WriteString(n.Text)
	b.WriteByte(' ')
	for i := range n.Children {
		n.Children[i].collect(b)
	}
}

func childName(n *node, nameTag string) (string, bool) {
	c := n.find(nameTag)
	if c == nil {
		return "", false
	}
	name := strings.TrimSpace(c.Text)
	if name == "" {
		return "", false
	}
	return SanitizeName(name), true
}

// ParseFile converts one XML file. Files without an m/a/t suffix are
// rejected.
func ParseFile(path string) (Book, error) {
	class, ok := Classify(filepath.Base(path))
	if !ok {
		return Book{}, fmt.Errorf("%s: filename does not end in m.xml, a.xml or t.xml", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, err
	}
	return parse(data, class, path)
}

func parse(data []byte, class, origin string) (Book, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return Book{}, fmt.Errorf("%s: parse: %w", origin, err)
	}
	h := root.find("h")
	if h == nil || strings.TrimSpace(h.Text) == "" {
		return Book{}, fmt.Errorf("%s: missing or empty <h> element", origin)
	}
	ha := root.find("ha")
	if ha == nil {
		return Book{}, fmt.Errorf("%s: missing <ha> element", origin)
	}
	if _, ok := childName(ha, "han"); !ok {
		return Book{}, fmt.Errorf("%s: missing or empty <han> element", origin)
	}

	book := Book{Title: SanitizeName(h.Text), Class: class}

	// walk the single-child heading chain h0 -> h1 -> h2 -> h3
	cur := ha.find("h0")
	for _, level := range []string{"h1", "h2", "h3"} {
		if cur == nil {
			break
		}
		next := cur.find(level)
		if next == nil {
			break
		}
		cur = next
	}
	if cur == nil || cur.XMLName.Local != "h3" {
		return book, nil
	}
	h3Name, ok := childName(cur, "h3n")
	if !ok {
		return book, nil
	}

	if h4s := cur.findAll("h4"); len(h4s) > 0 {
		for _, h4 := range h4s {
			name, ok := childName(h4, "h4n")
			if !ok {
				continue
			}
			body := paragraphs(h4)
			if body == "" {
				continue
			}
			book.Chapters = append(book.Chapters, Chapter{Title: name, Body: body})
		}
		return book, nil
	}
	if body := paragraphs(cur); body != "" {
		book.Chapters = append(book.Chapters, Chapter{Title: h3Name, Body: body})
	}
	return book, nil
}

// paragraphs joins the element's <p> children as markdown paragraphs.
func paragraphs(n *node) string {
	parts := []string{}
	for _, p := range n.findAll("p") {
		if t := p.text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

// ParseDir walks a directory tree and converts every XML file. Files that
// fail to convert are skipped and reported together.
func ParseDir(dir string) ([]Book, []error) {
	var books []Book
	var errs []error
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		book, err := ParseFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if len(book.Chapters) > 0 {
			books = append(books, book)
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return books, errs
}
