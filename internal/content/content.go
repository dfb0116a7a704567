// Package content decodes source files to text, falling back through a
// fixed list of encodings and rejecting anything that looks binary.
package content

import (
	"errors"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable means no supported encoding produced text content.
var ErrUndecodable = errors.New("binary or unsupported encoding")

const (
	sampleSize      = 8 * 1024
	binaryThreshold = 0.10
)

// File is the decoded form of one source file.
type File struct {
	Text    string
	SizeKiB float64 // UTF-8 byte length of the decoded text, in KiB
	Lines   int     // newline count + 1
}

// Load reads path and decodes it via Decode.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	text, err := Decode(raw)
	if err != nil {
		return File{}, err
	}
	return File{
		Text:    text,
		SizeKiB: float64(len(text)) / 1024,
		Lines:   strings.Count(text, "\n") + 1,
	}, nil
}

// Decode interprets raw as text, trying UTF-8, Windows-1252, and ISO 8859-1
// in that order. An encoding is accepted only if it decodes every byte and
// the result does not look binary. Returns ErrUndecodable when all three
// are rejected.
func Decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		if s := string(raw); !looksBinary(s) {
			return s, nil
		}
	}
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		out, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		s := string(out)
		// The decoder substitutes U+FFFD for bytes the charmap does not
		// define; treat that as a failed decode rather than silently
		// mangling content.
		if strings.ContainsRune(s, utf8.RuneError) {
			continue
		}
		if looksBinary(s) {
			continue
		}
		return s, nil
	}
	return "", ErrUndecodable
}

// looksBinary samples the first 8 KiB of decoded text and reports whether
// more than 10% of its characters are neither printable nor one of tab,
// LF, form feed, CR. This is a heuristic: text rich in rare code points
// can be misclassified, and mostly-printable binary can slip through.
func looksBinary(text string) bool {
	sample := text
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	var total, suspect int
	for _, r := range sample {
		total++
		switch r {
		case '\t', '\n', '\f', '\r':
			continue
		}
		if !unicode.IsPrint(r) {
			suspect++
		}
	}
	return float64(suspect) > float64(total)*binaryThreshold
}
