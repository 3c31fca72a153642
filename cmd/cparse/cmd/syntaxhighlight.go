// Copyright 2026 The libcparse-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	libcparse "github.com/nanolith-go/libcparse"
	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/cursor"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/stream"
)

var syntaxHighlightFormat string

var syntaxHighlightCmd = &cobra.Command{
	Use:   "syntax-highlight [glob ...]",
	Short: "Emit an HTML or ANSI colorized rendering of C source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyntaxHighlight(args)
	},
}

func init() {
	syntaxHighlightCmd.Flags().StringVar(&syntaxHighlightFormat, "format", "html", "output format: html or ansi")
	rootCmd.AddCommand(syntaxHighlightCmd)
}

// highlightStyle codes one character's rendering class.
type highlightStyle byte

const (
	styleNormal highlightStyle = iota
	styleComment
	stylePreprocessor
	styleKeyword
	styleString
	styleCharLiteral
	styleNumber
)

// decodeStyle names a style; the name doubles as the HTML class suffix
// and the key for the ANSI table below.
func decodeStyle(s highlightStyle) string {
	switch s {
	case styleComment:
		return "comment"
	case stylePreprocessor:
		return "preprocessor"
	case styleKeyword:
		return "keyword"
	case styleString:
		return "string"
	case styleCharLiteral:
		return "char"
	case styleNumber:
		return "number"
	default:
		return "normal"
	}
}

var ansiStyles = map[highlightStyle]string{
	styleComment:      "\x1b[2;37m",
	stylePreprocessor: "\x1b[35m",
	styleKeyword:      "\x1b[1;34m",
	styleString:       "\x1b[32m",
	styleCharLiteral:  "\x1b[32m",
	styleNumber:       "\x1b[36m",
}

const ansiReset = "\x1b[0m"

// sourceLine is one physical line of the input, kept verbatim, plus a
// parallel per-character style plane the scanner callbacks paint into.
type sourceLine struct {
	text   string
	styles []highlightStyle
}

// highlighter holds the whole input split into lines and paints cursor
// ranges with style codes as the scanner reports them. Nothing is
// rendered until the run finishes: output walks the preserved original
// characters, so every whitespace byte survives exactly as written and
// the event stream only decides which ranges get which style.
type highlighter struct {
	lines []sourceLine

	commentBegin cursor.Cursor
	directivePos cursor.Cursor
	inDirective  bool
}

func newHighlighter(text string) *highlighter {
	h := &highlighter{}
	if text == "" {
		return h
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		h.lines = append(h.lines, sourceLine{text: line, styles: make([]highlightStyle, len(line))})
	}
	return h
}

// markupRange paints style over the characters the half-open range pos
// covers: intermediate lines in full, the final line up to the end
// column. A range whose end sits at column 1 of the following line
// (the one-past-a-newline shape every line-terminated range has) is
// folded back onto the line the newline ended. Anything still outside
// the captured line array (a #line override has rewritten the cursor
// past the physical file) is out of bounds.
func (h *highlighter) markupRange(pos cursor.Cursor, style highlightStyle) error {
	beginLine := pos.BeginLine - 1
	endLine := pos.EndLine - 1
	endCol := pos.EndCol - 1
	if endCol <= 0 && endLine > beginLine {
		endLine--
		if endLine < len(h.lines) {
			endCol = len(h.lines[endLine].styles)
		}
	}
	if beginLine < 0 || beginLine >= len(h.lines) || endLine >= len(h.lines) {
		return cparseerr.New(cparseerr.ErrOutOfBounds, pos)
	}
	col := pos.BeginCol - 1
	for l := beginLine; l <= endLine; l, col = l+1, 0 {
		line := &h.lines[l]
		stop := len(line.styles)
		if l == endLine && endCol < stop {
			stop = endCol
		}
		for i := col; i < stop; i++ {
			line.styles[i] = style
		}
	}
	return nil
}

// onCommentEvent watches the comment scanner's boundary events: a Begin
// saves the opening cursor, the matching End paints the whole comment
// range in one stroke.
func (h *highlighter) onCommentEvent(evt event.Event) error {
	switch evt.Kind {
	case event.KindCommentBlockBegin, event.KindCommentLineBegin:
		h.commentBegin = evt.Cursor
		return nil
	case event.KindCommentBlockEnd, event.KindCommentLineEnd:
		return h.markupRange(h.commentBegin.Extend(evt.Cursor), styleComment)
	}
	return nil
}

// onTokenEvent paints preprocessor-token ranges. Keywords and literals
// are painted as they stream past; a directive line additionally saves
// the directive keyword's cursor and repaints the whole span through
// PpEnd in the preprocessor style, the single color a directive renders
// with.
func (h *highlighter) onTokenEvent(evt event.Event) error {
	if evt.Kind >= event.KindPpIdIf && evt.Kind <= event.KindPpIdPragma {
		h.directivePos = evt.Cursor
		h.inDirective = true
		return nil
	}
	if evt.Kind == event.KindPpEnd {
		if !h.inDirective {
			return nil
		}
		h.inDirective = false
		return h.markupRange(h.directivePos.Extend(evt.Cursor), stylePreprocessor)
	}

	if evt.Kind.Category() == event.CategoryKeyword {
		return h.markupRange(evt.Cursor, styleKeyword)
	}
	switch evt.Kind {
	case event.KindRawString, event.KindRawSystemString:
		return h.markupRange(evt.Cursor, styleString)
	case event.KindRawCharacterLiteral:
		return h.markupRange(evt.Cursor, styleCharLiteral)
	case event.KindRawInteger, event.KindRawFloat:
		return h.markupRange(evt.Cursor, styleNumber)
	}
	return nil
}

// render writes the marked-up listing. Both formats walk every preserved
// character per line and switch styles only where the style plane
// changes. Write errors latch in the bufio.Writer and surface from the
// caller's Flush.
func (h *highlighter) render(out *bufio.Writer, htmlFormat bool) {
	if htmlFormat {
		h.renderHTML(out)
		return
	}
	h.renderANSI(out)
}

func (h *highlighter) renderHTML(out *bufio.Writer) {
	fmt.Fprint(out, "<div class=\"codelisting\">\n")
	for i := range h.lines {
		line := &h.lines[i]
		prev := styleNormal
		fmt.Fprint(out, "<div class=\"codelisting_line\">")
		fmt.Fprint(out, "<span class=\"codestyle_normal\">")
		for j := 0; j < len(line.text); j++ {
			if line.styles[j] != prev {
				fmt.Fprintf(out, "</span><span class=\"codestyle_%s\">", decodeStyle(line.styles[j]))
				prev = line.styles[j]
			}
			writeDecodedChar(out, line.text[j])
		}
		fmt.Fprint(out, "</span></div>\n")
	}
	fmt.Fprint(out, "</div>\n")
}

func (h *highlighter) renderANSI(out *bufio.Writer) {
	for i := range h.lines {
		line := &h.lines[i]
		prev := styleNormal
		for j := 0; j < len(line.text); j++ {
			if line.styles[j] != prev {
				if code, ok := ansiStyles[line.styles[j]]; ok {
					out.WriteString(code)
				} else {
					out.WriteString(ansiReset)
				}
				prev = line.styles[j]
			}
			out.WriteByte(line.text[j])
		}
		if prev != styleNormal {
			out.WriteString(ansiReset)
		}
		out.WriteByte('\n')
	}
}

// writeDecodedChar emits one source character HTML-safely, re-encoding
// blanks as non-breaking spaces so indentation survives in the rendered
// listing.
func writeDecodedChar(out *bufio.Writer, ch byte) {
	switch ch {
	case '\t':
		out.WriteString("&nbsp;&nbsp;")
	case ' ':
		out.WriteString("&nbsp;")
	case '<':
		out.WriteString("&lt;")
	case '>':
		out.WriteString("&gt;")
	case '&':
		out.WriteString("&amp;")
	default:
		out.WriteByte(ch)
	}
}

func runSyntaxHighlight(patterns []string) error {
	paths, err := expandGlobs(patterns)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	htmlFormat := syntaxHighlightFormat != "ansi"

	if htmlFormat {
		fmt.Fprint(out, "<html>\n<head><link rel=\"stylesheet\" href=\"codelisting.css\"/></head>\n<body>\n")
	}

	if len(paths) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		if err := highlightSource(out, "stdin", string(text), htmlFormat); err != nil {
			return err
		}
	} else {
		for _, path := range paths {
			text, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := highlightSource(out, path, string(text), htmlFormat); err != nil {
				return err
			}
		}
	}

	if htmlFormat {
		fmt.Fprint(out, "</body></html>\n")
	}
	return out.Flush()
}

// highlightSource scans one file's text and renders its listing. The
// text is held in memory in full: the pipeline is fed a copy, the
// comment-scanner and preprocessor-scanner subscriptions only paint
// style ranges over the preserved lines, and rendering happens after the
// run completes.
func highlightSource(out *bufio.Writer, name, text string, htmlFormat bool) error {
	h := newHighlighter(text)

	p := libcparse.New()
	if err := p.SubscribeCommentScanner(h.onCommentEvent); err != nil {
		return err
	}
	if err := p.SubscribePreprocessorScanner(h.onTokenEvent); err != nil {
		return err
	}
	if err := p.PushInputStream(name, stream.FromString(text)); err != nil {
		return err
	}
	if err := p.Run(); err != nil {
		return err
	}

	h.render(out, htmlFormat)
	return nil
}

// expandGlobs resolves each pattern against the working directory with
// doublestar so a caller can name a whole tree ("src/**/*.c") instead of
// enumerating files one at a time. A pattern matching nothing is treated
// as a literal path.
func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			out = append(out, pattern)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
