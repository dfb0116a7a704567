// Package split reconstructs a directory tree from a bundle produced by
// the merge operation. The parser is a single-pass, line-oriented state
// machine that tolerates malformed input: stray markers are ignored, error
// blocks are skipped, and a truncated bundle still yields every line
// written before the end of the stream.
package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scbundle/scb/internal/marker"
	"github.com/scbundle/scb/internal/rules"
)

const (
	progressStride     = 100
	maxErrorBlockLines = 10000
)

// Options configures one split run.
type Options struct {
	BundleFile string
	OutputDir  string
	Overwrite  bool
	Rules      []rules.Rule
	Progress   func(line, total int) // every progressStride lines, plus once at completion
	Log        io.Writer             // per-entry diagnostics; defaults to io.Discard
}

// Result summarizes a completed split.
type Result struct {
	FilesWritten int
	Skipped      int // entries dropped by filter rules or path sanitization
}

// Run parses the bundle and materializes its files under OutputDir. Only
// structural failures (unreadable bundle, uncreatable output root) are
// returned as errors; every per-entry failure is logged and skipped.
func Run(opts Options) (*Result, error) {
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	data, err := os.ReadFile(opts.BundleFile)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	lines := splitLines(string(data))
	total := len(lines)
	res := &Result{}

	// At most one output handle is open at any time. closeOut runs on
	// every exit path, so a truncated bundle still flushes its last file.
	var out *os.File
	closeOut := func() {
		if out != nil {
			out.Close()
			out = nil
		}
	}
	defer closeOut()

	i := 0
	for i < total {
		if opts.Progress != nil && i%progressStride == 0 {
			opts.Progress(i, total)
		}
		stripped := strings.TrimSpace(lines[i])
		kind, payload := marker.Match(stripped)
		switch kind {
		case marker.StartFile:
			closeOut()
			out = openTarget(opts, payload, res)
			i++

		case marker.EndFile:
			if out != nil {
				closeOut()
				i++
				// Blocks are separated by one blank line; consume it.
				if i < total && strings.TrimSpace(lines[i]) == "" {
					i++
				}
			} else {
				i++
			}

		case marker.StartError:
			i = skipErrorBlock(lines, i, opts.Log)

		case marker.ErrorMsg:
			// A lone ERROR line outside its bracket: malformed input,
			// swallowed without a state change.
			i++

		default:
			if out != nil {
				if _, err := out.WriteString(lines[i]); err != nil {
					fmt.Fprintf(opts.Log, "writing %s: %v\n", out.Name(), err)
					closeOut()
				}
			}
			i++
		}
	}

	closeOut()
	if opts.Progress != nil {
		opts.Progress(total, total)
	}
	return res, nil
}

// splitLines cuts text into lines with their terminators preserved, so
// reconstructed files keep their original line endings byte for byte.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// openTarget resolves the declared path and opens the file to write, or
// returns nil when the entry is filtered out, unsafe, or cannot be
// created. Every failure here is scoped to this single entry.
func openTarget(opts Options, declared string, res *Result) *os.File {
	if rules.Excluded(opts.Rules, strings.TrimPrefix(declared, "./")) {
		fmt.Fprintf(opts.Log, "skipping filtered path: %s\n", declared)
		res.Skipped++
		return nil
	}
	target, err := resolveTarget(opts.OutputDir, declared)
	if err != nil {
		fmt.Fprintf(opts.Log, "skipping unsafe path %s: %v\n", declared, err)
		res.Skipped++
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		fmt.Fprintf(opts.Log, "creating directories for %s: %v\n", declared, err)
		res.Skipped++
		return nil
	}
	target, err = collisionTarget(target, opts.Overwrite, opts.Log)
	if err != nil {
		fmt.Fprintf(opts.Log, "%s: %v\n", declared, err)
		res.Skipped++
		return nil
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(opts.Log, "opening %s: %v\n", target, err)
		res.Skipped++
		return nil
	}
	res.FilesWritten++
	return f
}

// skipErrorBlock consumes the error block whose START ERROR marker sits at
// lines[start] and returns the index of the first line after it. No file
// is ever created for an error block's payload. An unterminated block is
// bounded: past maxErrorBlockLines a warning is logged and normal scanning
// resumes from the current position.
func skipErrorBlock(lines []string, start int, log io.Writer) int {
	i := start + 1
	for i < len(lines) {
		if i-start > maxErrorBlockLines {
			fmt.Fprintf(log, "error block at line %d exceeds %d lines without END ERROR; resuming scan\n",
				start+1, maxErrorBlockLines)
			return i
		}
		kind, _ := marker.Match(strings.TrimSpace(lines[i]))
		if kind == marker.EndError {
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			return i
		}
		i++
	}
	return i
}
