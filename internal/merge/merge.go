// Package merge serializes a directory tree into a single bundle file with
// per-file delimiter markers and an index block.
package merge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/scbundle/scb/internal/collect"
	"github.com/scbundle/scb/internal/content"
	"github.com/scbundle/scb/internal/marker"
	"github.com/scbundle/scb/internal/rules"
)

// undecodableMessage is the canonical in-bundle message for files that
// could not be decoded as text.
const undecodableMessage = "Cannot read file (binary or unsupported encoding)"

// Options configures one merge run. Extensions and Rules come from the
// caller; the codec never reads persisted configuration itself.
type Options struct {
	SourceDir  string
	OutputFile string
	Extensions collect.ExtensionSet
	Rules      []rules.Rule
	Progress   func(done, total int) // called after every file, 1-based
	Log        io.Writer             // per-file diagnostics; defaults to io.Discard
}

// Result summarizes a completed merge.
type Result struct {
	Files           int // files written as content blocks
	Errors          int // files recorded as error blocks
	EstimatedTokens int // emitted bytes / 4, a coarse sizing signal
}

type entry struct {
	abs     string
	display string
	file    content.File
	loadErr error
}

// Run collects, loads, and writes the bundle for opts. A directory walk
// failure aborts the whole merge; a single file that cannot be read is
// recorded as an error block and never aborts the batch.
func Run(opts Options) (*Result, error) {
	if opts.Log == nil {
		opts.Log = io.Discard
	}

	paths, err := collect.Files(opts.SourceDir, opts.Extensions, opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.SourceDir, err)
	}

	entries := make([]entry, 0, len(paths))
	for _, p := range paths {
		display, err := collect.DisplayPath(opts.SourceDir, p)
		if err != nil {
			return nil, fmt.Errorf("computing display path for %s: %w", p, err)
		}
		entries = append(entries, entry{abs: p, display: display})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].display < entries[j].display })

	// Pre-load everything so index columns can be aligned before any
	// output is produced. Peak memory is proportional to source size.
	res := &Result{}
	for i := range entries {
		e := &entries[i]
		e.file, e.loadErr = content.Load(e.abs)
		if e.loadErr != nil {
			fmt.Fprintf(opts.Log, "cannot read %s: %v\n", e.display, e.loadErr)
			res.Errors++
		} else {
			res.Files++
		}
	}

	var buf bytes.Buffer
	writeBundle(&buf, entries, opts.Progress)
	res.EstimatedTokens = buf.Len() / 4

	if err := writeFileAtomic(opts.OutputFile, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing bundle: %w", err)
	}
	return res, nil
}

// writeBundle emits the index block (if any file matched) followed by one
// content or error block per entry, in display-path order.
func writeBundle(w io.Writer, entries []entry, progress func(int, int)) {
	total := len(entries)
	if total > 0 {
		writeIndex(w, entries)
	}
	for i, e := range entries {
		syn := marker.SyntaxFor(path.Ext(e.display))
		if e.loadErr != nil {
			msg := e.loadErr.Error()
			if errors.Is(e.loadErr, content.ErrUndecodable) {
				msg = undecodableMessage
			}
			fmt.Fprintf(w, "%s\n%s\n%s\n\n",
				syn.StartError(e.display), syn.ErrorMsg(msg), syn.EndError(e.display))
		} else {
			fmt.Fprintf(w, "%s\n", syn.StartFile(e.display))
			io.WriteString(w, e.file.Text)
			if t := e.file.Text; t != "" && !strings.HasSuffix(t, "\n") && !strings.HasSuffix(t, "\r") {
				io.WriteString(w, "\n")
			}
			fmt.Fprintf(w, "%s\n\n", syn.EndFile(e.display))
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
}

func writeIndex(w io.Writer, entries []entry) {
	var maxPath, maxSize, maxLines int
	for _, e := range entries {
		if len(e.display) > maxPath {
			maxPath = len(e.display)
		}
		if e.loadErr != nil {
			continue
		}
		if n := len(sizeString(e.file.SizeKiB)); n > maxSize {
			maxSize = n
		}
		if n := len(strconv.Itoa(e.file.Lines)); n > maxLines {
			maxLines = n
		}
	}

	fmt.Fprintf(w, "%s\n", marker.IndexHeader)
	fmt.Fprintf(w, "# Total Files: %d\n", len(entries))
	fmt.Fprintf(w, "# \n")
	for _, e := range entries {
		if e.loadErr != nil {
			fmt.Fprintf(w, "# %-*s [Error reading file]\n", maxPath, e.display)
			continue
		}
		fmt.Fprintf(w, "# %-*s | SIZE: %*skb | LINES: %*d\n",
			maxPath, e.display, maxSize, sizeString(e.file.SizeKiB), maxLines, e.file.Lines)
	}
	fmt.Fprintf(w, "%s\n\n", marker.IndexFooter)
}

func sizeString(kib float64) string {
	return strconv.FormatFloat(kib, 'f', 1, 64)
}
