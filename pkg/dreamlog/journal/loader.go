package journal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Load reads a journal from disk. Files ending in .html or .htm are parsed
// as an HTML export, anything else as Markdown-style text.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTML(f)
	default:
		return ParseText(f)
	}
}

// ParseText reads a Markdown-style journal: lines starting with one to six
// '#' followed by a space are headings, other non-blank lines are body
// paragraphs.
func ParseText(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.Paragraphs = append(doc.Paragraphs, parseLine(norm.NFC.String(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return doc, nil
}

func parseLine(line string) Paragraph {
	level := 0
	for level < len(line) && level < 7 && line[level] == '#' {
		level++
	}
	if level >= 1 && level <= 6 && level < len(line) && line[level] == ' ' {
		return Paragraph{Level: level, Text: strings.TrimSpace(line[level:])}
	}
	return Paragraph{Level: Body, Text: line}
}

// WriteText serializes d in the format read by ParseText.
func (d *Document) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range d.Paragraphs {
		if p.IsHeading() {
			if _, err := bw.WriteString(strings.Repeat("#", p.Level) + " "); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(p.Text + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var htmlLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
	"p": Body, "li": Body,
}

// ParseHTML reads an HTML export. Headings h1..h6 keep their level; p and li
// elements become body paragraphs. Elements are not descended into once
// matched, so nested lists flatten into their outer item.
func ParseHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html journal: %w", err)
	}

	doc := &Document{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level, ok := htmlLevels[n.Data]; ok {
				text := strings.Join(strings.Fields(textOf(n)), " ")
				if text != "" {
					doc.Paragraphs = append(doc.Paragraphs, Paragraph{Level: level, Text: norm.NFC.String(text)})
				}
				return
			}
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

func textOf(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}
