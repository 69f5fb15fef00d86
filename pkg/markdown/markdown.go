// Package markdown renders legal documents to sanitized HTML styled with the
// site's prose classes.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Class names applied to rendered elements. The stylesheet in web/static
// defines them.
const (
	ClassH1         = "prose-h1"
	ClassH2         = "prose-h2"
	ClassH3         = "prose-h3"
	ClassParagraph  = "prose-p"
	ClassList       = "prose-ul"
	ClassOrdered    = "prose-ol"
	ClassListItem   = "prose-li"
	ClassLink       = "prose-a"
	ClassBlockquote = "prose-quote"
	ClassCode       = "prose-code"
	ClassPre        = "prose-pre"
	ClassRule       = "prose-hr"
	ClassStrong     = "prose-strong"
	ClassTable      = "prose-table"
	ClassCell       = "prose-td"
	ClassHeaderCell = "prose-th"
)

// Renderer converts markdown to HTML
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GFM tables, autolinks and strikethrough
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(proseTransformer{}, 100)),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(codeBlockRenderer{}, 100)),
		),
	)

	return &Renderer{
		md:     md,
		policy: newPolicy(),
	}
}

// Render returns sanitized HTML for source. Raw HTML in the source is dropped.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z0-9\- ]+$`)).Globally()
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	p.RequireNoFollowOnLinks(false)
	return p
}

// proseTransformer tags nodes with their prose class and makes every link
// open in a new browsing context.
type proseTransformer struct{}

func (proseTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			switch node.Level {
			case 1:
				setClass(n, ClassH1)
			case 2:
				setClass(n, ClassH2)
			default:
				setClass(n, ClassH3)
			}
		case *ast.Paragraph:
			setClass(n, ClassParagraph)
		case *ast.List:
			if node.IsOrdered() {
				setClass(n, ClassOrdered)
			} else {
				setClass(n, ClassList)
			}
		case *ast.ListItem:
			setClass(n, ClassListItem)
		case *ast.Blockquote:
			setClass(n, ClassBlockquote)
		case *ast.CodeSpan:
			setClass(n, ClassCode)
		case *ast.ThematicBreak:
			setClass(n, ClassRule)
		case *ast.Emphasis:
			if node.Level == 2 {
				setClass(n, ClassStrong)
			}
		case *ast.Link, *ast.AutoLink:
			setClass(n, ClassLink)
			n.SetAttribute([]byte("target"), []byte("_blank"))
			n.SetAttribute([]byte("rel"), []byte("noopener noreferrer"))
		case *extast.Table:
			setClass(n, ClassTable)
		case *extast.TableCell:
			if n.Parent() != nil && n.Parent().Kind() == extast.KindTableHeader {
				setClass(n, ClassHeaderCell)
			} else {
				setClass(n, ClassCell)
			}
		}
		return ast.WalkContinue, nil
	})
}

// codeBlockRenderer replaces the default block renderer, which writes a bare
// <pre><code> and ignores node attributes.
type codeBlockRenderer struct{}

func (codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeBlock, renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, renderCodeBlock)
}

func renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<pre class="` + ClassPre + `"><code`)
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		if lang := fenced.Language(source); lang != nil {
			_, _ = w.WriteString(` class="language-`)
			_, _ = w.Write(util.EscapeHTML(lang))
			_ = w.WriteByte('"')
		}
	}
	_ = w.WriteByte('>')

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}

func setClass(n ast.Node, class string) {
	n.SetAttribute([]byte("class"), []byte(class))
}
