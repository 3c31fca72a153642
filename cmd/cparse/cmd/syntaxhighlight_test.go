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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSource(t *testing.T, text string, htmlFormat bool) string {
	t.Helper()
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	require.NoError(t, highlightSource(out, "t.c", text, htmlFormat))
	require.NoError(t, out.Flush())
	return buf.String()
}

func TestSyntaxHighlight_WhitespaceBetweenTokensSurvives(t *testing.T) {
	got := renderSource(t, "int x;\n", true)
	// the space between "int" and "x" must render, not vanish
	assert.Contains(t, got, `<span class="codestyle_keyword">int</span>`)
	assert.Contains(t, got, "&nbsp;x;")
}

func TestSyntaxHighlight_AnsiOutputPreservesSpacingAndLines(t *testing.T) {
	got := renderSource(t, "int x;\n", false)
	assert.Equal(t, "\x1b[1;34mint\x1b[0m x;\n", got)
}

func TestSyntaxHighlight_EachSourceLineIsItsOwnDiv(t *testing.T) {
	got := renderSource(t, "int a;\nint b;\n", true)
	assert.Equal(t, 2, bytes.Count([]byte(got), []byte(`<div class="codelisting_line">`)))
}

func TestSyntaxHighlight_CommentRangePaintedOverPreservedText(t *testing.T) {
	got := renderSource(t, "a /* c */ b\n", false)
	assert.Equal(t, "a \x1b[2;37m/* c */\x1b[0m b\n", got)
}

func TestSyntaxHighlight_LineCommentPaintedToEndOfLine(t *testing.T) {
	got := renderSource(t, "x; //done\n", false)
	assert.Equal(t, "x; \x1b[2;37m//done\x1b[0m\n", got)
}

func TestSyntaxHighlight_DirectiveLinePaintedAsPreprocessor(t *testing.T) {
	got := renderSource(t, "#include <stdio.h>\n", true)
	// the directive keyword through the end of the line carries the
	// preprocessor style; the '<' of the header name is HTML-escaped
	assert.Contains(t, got, `<span class="codestyle_preprocessor">include&nbsp;&lt;stdio.h&gt;</span>`)
}

func TestSyntaxHighlight_StringAndNumberStyles(t *testing.T) {
	got := renderSource(t, "f(\"s\", 42);\n", false)
	assert.Equal(t, "f(\x1b[32m\"s\"\x1b[0m, \x1b[36m42\x1b[0m);\n", got)
}

func TestSyntaxHighlight_TabsBecomeDoubleNbsp(t *testing.T) {
	got := renderSource(t, "\tx;\n", true)
	assert.Contains(t, got, "&nbsp;&nbsp;x;")
}

func TestSyntaxHighlight_InputWithoutTrailingNewline(t *testing.T) {
	got := renderSource(t, "int y", false)
	assert.Equal(t, "\x1b[1;34mint\x1b[0m y\n", got)
}
