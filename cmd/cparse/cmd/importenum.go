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
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	libcparse "github.com/nanolith-go/libcparse"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/stream"
)

var errImportEnumNotFound = fmt.Errorf("import-enum: no matching enum found")

var (
	importEnumName     string
	importEnumProtoOut string
)

var importEnumCmd = &cobra.Command{
	Use:   "import-enum <glob ...>",
	Short: "Read C headers and list an enum's members and values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImportEnum(args)
	},
}

func init() {
	importEnumCmd.Flags().StringVar(&importEnumName, "enum", "", "only match the enum tagged with this name")
	importEnumCmd.Flags().StringVar(&importEnumProtoOut, "proto-enum-out", "", "write a JSON sidecar of the parsed members to this path")
	rootCmd.AddCommand(importEnumCmd)
}

// enumMember is one entry of an `enum { ... }` body. Explicit holds the
// literal text of an `= value` initializer, verbatim -- this tool
// reports what the source wrote, it does not evaluate the expression.
type enumMember struct {
	Name     string
	Explicit string
}

// enumImporter drives a small state machine over L8 tokens looking for
// `enum [tag] { member [, member]... [,] }`. It tracks a single target
// enumeration name rather than parsing the whole translation unit's
// grammar.
type enumImporter struct {
	targetName string

	state       importState
	matched     bool
	tagMatches  bool
	depth       int
	members     []enumMember
	pendingName string
	valueText   string
	done        bool
}

type importState int

const (
	stIdle importState = iota
	stSawEnum
	stSawTag
	stInBody
	stAfterMember
	stInValue
)

func newEnumImporter(targetName string) *enumImporter {
	return &enumImporter{targetName: targetName, state: stIdle}
}

func (ei *enumImporter) handle(evt event.Event) error {
	if ei.done {
		return nil
	}
	switch evt.Kind {
	case event.KindWhitespace, event.KindNewline:
		return nil
	}

	switch ei.state {
	case stIdle:
		if evt.Kind == event.KindKeywordEnum {
			ei.state = stSawEnum
			ei.tagMatches = ei.targetName == ""
			ei.members = nil
			ei.pendingName = ""
		}
		return nil

	case stSawEnum:
		switch evt.Kind {
		case event.KindIdentifier:
			ei.tagMatches = ei.targetName == "" || evt.Text == ei.targetName
			ei.state = stSawTag
			return nil
		case event.KindLeftBrace:
			ei.depth = 1
			ei.state = stInBody
			return nil
		}
		ei.state = stIdle
		return nil

	case stSawTag:
		if evt.Kind == event.KindLeftBrace {
			ei.depth = 1
			ei.state = stInBody
			return nil
		}
		ei.state = stIdle
		return nil

	case stInBody, stAfterMember:
		switch evt.Kind {
		case event.KindIdentifier:
			ei.pendingName = evt.Text
			ei.state = stAfterMember
			return nil
		case event.KindEqualAssign:
			if ei.state == stAfterMember {
				ei.valueText = ""
				ei.state = stInValue
			}
			return nil
		case event.KindComma:
			ei.flushPending()
			ei.state = stInBody
			return nil
		case event.KindRightBrace:
			ei.flushPending()
			ei.depth--
			if ei.depth == 0 {
				ei.closeEnum()
			}
			return nil
		}
		return nil

	case stInValue:
		if evt.Kind == event.KindComma || evt.Kind == event.KindRightBrace {
			ei.flushPendingWithValue()
			if evt.Kind == event.KindRightBrace {
				ei.depth--
				if ei.depth == 0 {
					ei.closeEnum()
					return nil
				}
			}
			ei.state = stInBody
			return nil
		}
		if ei.valueText != "" {
			ei.valueText += " "
		}
		ei.valueText += spelling(evt)
		return nil
	}
	return nil
}

// closeEnum finalizes the enum body just closed: a matching tag ends the
// scan, a non-matching one discards its members and keeps looking for a
// later enum with the target tag.
func (ei *enumImporter) closeEnum() {
	if ei.tagMatches {
		ei.matched = true
		ei.done = true
		return
	}
	ei.members = nil
	ei.state = stIdle
}

func (ei *enumImporter) flushPending() {
	if ei.pendingName == "" {
		return
	}
	ei.members = append(ei.members, enumMember{Name: ei.pendingName})
	ei.pendingName = ""
}

func (ei *enumImporter) flushPendingWithValue() {
	if ei.pendingName == "" {
		return
	}
	ei.members = append(ei.members, enumMember{Name: ei.pendingName, Explicit: ei.valueText})
	ei.pendingName = ""
	ei.valueText = ""
}

func runImportEnum(patterns []string) error {
	log := logger()
	paths, err := expandGlobs(patterns)
	if err != nil {
		return err
	}

	p := libcparse.New()
	ei := newEnumImporter(importEnumName)
	if err := p.SubscribePreprocessorScanner(ei.handle); err != nil {
		return err
	}
	// Push in reverse so the first-named header is scanned first; the
	// importer stops consuming tokens once a matching enum has closed.
	for i := len(paths) - 1; i >= 0; i-- {
		s, err := stream.Open(paths[i])
		if err != nil {
			return err
		}
		if err := p.PushInputStream(paths[i], s); err != nil {
			return err
		}
	}
	if err := p.Run(); err != nil {
		return err
	}

	if !ei.matched {
		log.WithField("patterns", patterns).Warn("no matching enum found")
		return errImportEnumNotFound
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, m := range ei.members {
		if m.Explicit == "" {
			fmt.Fprintln(out, m.Name)
		} else {
			fmt.Fprintf(out, "%s=%s\n", m.Name, m.Explicit)
		}
	}

	if importEnumProtoOut != "" {
		return writeProtoEnumOut(importEnumProtoOut, ei.members)
	}
	return nil
}

// punctuatorSpelling gives back the source text a punctuator Kind was
// recognized from; these events carry no Text field since the Kind alone
// already disambiguates them.
var punctuatorSpelling = map[event.Kind]string{
	event.KindLeftParen: "(", event.KindRightParen: ")",
	event.KindLeftBrace: "{", event.KindRightBrace: "}",
	event.KindLeftBracket: "[", event.KindRightBracket: "]",
	event.KindComma: ",", event.KindColon: ":", event.KindSemicolon: ";",
	event.KindDot: ".", event.KindEllipsis: "...", event.KindArrow: "->",
	event.KindPlus: "+", event.KindMinus: "-", event.KindStar: "*",
	event.KindForwardSlash: "/", event.KindPercent: "%",
	event.KindLogicalAnd: "&&", event.KindLogicalOr: "||",
	event.KindAmpersand: "&", event.KindPipe: "|", event.KindCaret: "^", event.KindTilde: "~",
	event.KindQuestion: "?", event.KindNot: "!",
	event.KindEqualCompare: "==", event.KindNotEqualCompare: "!=",
	event.KindEqualAssign: "=",
	event.KindPlusEqual: "+=", event.KindMinusEqual: "-=", event.KindStarEqual: "*=",
	event.KindSlashEqual: "/=", event.KindPercentEqual: "%=",
	event.KindAmpersandEqual: "&=", event.KindPipeEqual: "|=", event.KindCaretEqual: "^=",
	event.KindTildeEqual: "~=",
	event.KindBitshiftLeftEqual: "<<=", event.KindBitshiftRightEqual: ">>=",
	event.KindBitshiftLeft: "<<", event.KindBitshiftRight: ">>",
	event.KindLessThan: "<", event.KindGreaterThan: ">",
	event.KindLessThanEqual: "<=", event.KindGreaterThanEqual: ">=",
	event.KindIncrement: "++", event.KindDecrement: "--",
	event.KindPpHash: "#", event.KindPpStringConcat: "##",
}

// spelling reconstructs the literal source text a token was recognized
// from, used to report an initializer expression the way the header
// wrote it. Identifiers and raw literals carry it in evt.Text; keywords
// carry it implicitly in their Kind; punctuators and directive keywords
// have neither, so each gets its own lookup.
func spelling(evt event.Event) string {
	switch evt.Kind.Category() {
	case event.CategoryKeyword:
		return evt.Kind.String()
	case event.CategoryIdentifier, event.CategoryLiteral:
		return evt.Text
	case event.CategoryPunctuator:
		return punctuatorSpelling[evt.Kind]
	case event.CategoryPreprocessor:
		if s, ok := punctuatorSpelling[evt.Kind]; ok {
			return s
		}
		for word, kind := range event.DirectiveKeyword {
			if kind == evt.Kind {
				return word
			}
		}
	}
	return ""
}

// writeProtoEnumOut renders the parsed members as a structpb.Struct and
// marshals it with protojson, giving callers a stable sidecar format
// without hand-rolling JSON encoding for the handful of value shapes an
// enum initializer can take.
func writeProtoEnumOut(path string, members []enumMember) error {
	fields := make(map[string]*structpb.Value, len(members))
	for i, m := range members {
		if m.Explicit == "" {
			fields[m.Name] = structpb.NewNumberValue(float64(i))
			continue
		}
		if n, err := strconv.ParseInt(m.Explicit, 0, 64); err == nil {
			fields[m.Name] = structpb.NewNumberValue(float64(n))
		} else {
			fields[m.Name] = structpb.NewStringValue(m.Explicit)
		}
	}
	st := &structpb.Struct{Fields: fields}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}
