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
	"os"

	"github.com/spf13/cobra"

	libcparse "github.com/nanolith-go/libcparse"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/stream"
)

var commentStripCmd = &cobra.Command{
	Use:   "comment-strip [file ...]",
	Short: "Strip C comments from the named files, or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommentStrip(args)
	},
}

func init() {
	rootCmd.AddCommand(commentStripCmd)
}

// runCommentStrip subscribes to the comment filter's event stream and
// reconstitutes the source text: raw characters (newlines included) pass
// through untouched, and the single synthetic Whitespace event standing
// in for each stripped comment becomes one space.
func runCommentStrip(paths []string) error {
	log := logger()
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	p := libcparse.New()
	if err := p.SubscribeCommentFilter(func(evt event.Event) error {
		switch evt.Kind {
		case event.KindRawChar:
			return out.WriteByte(evt.Byte)
		case event.KindWhitespace:
			return out.WriteByte(' ')
		}
		return nil
	}); err != nil {
		return err
	}

	if len(paths) == 0 {
		if err := p.PushInputStream("stdin", stream.FromDescriptor(os.Stdin)); err != nil {
			return err
		}
	} else {
		// Push in reverse so the streams pop off the LIFO input stack in
		// the order the caller named them.
		for i := len(paths) - 1; i >= 0; i-- {
			path := paths[i]
			s, err := stream.Open(path)
			if err != nil {
				log.WithField("path", path).WithError(err).Error("could not open input file")
				return err
			}
			if err := p.PushInputStream(path, s); err != nil {
				return err
			}
		}
	}

	return p.Run()
}
