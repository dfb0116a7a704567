package marker

import (
	"regexp"
	"strings"
)

// Sentinel is the literal token embedded in every marker line. It is what
// distinguishes structural markers from ordinary source lines that happen
// to mention files.
const Sentinel = "[[ SCB ]]"

// Index block tokens. The index is rendered with the "#" leader regardless
// of the bundled file types.
const (
	IndexHeader = "# " + Sentinel + " FILE INDEX START"
	IndexFooter = "# " + Sentinel + " FILE INDEX END"
)

// Syntax describes how marker lines are commented for one file type.
type Syntax struct {
	Leader        string // comment leader, e.g. "//" or "#"
	ClosingSuffix bool   // block comments need " */" appended to every marker
}

var syntaxByExt = map[string]Syntax{
	".py":  {Leader: "#"},
	".rs":  {Leader: "///"},
	".c":   {Leader: "//"},
	".h":   {Leader: "//"},
	".cpp": {Leader: "//"},
	".hpp": {Leader: "//"},
	".css": {Leader: "/*", ClosingSuffix: true},
}

// SyntaxFor returns the comment syntax for a file extension. Extensions are
// compared lower-cased; unrecognized ones get the default "//" leader.
func SyntaxFor(ext string) Syntax {
	if s, ok := syntaxByExt[strings.ToLower(ext)]; ok {
		return s
	}
	return Syntax{Leader: "//"}
}

func (s Syntax) line(keyword, payload string) string {
	var b strings.Builder
	b.WriteString(s.Leader)
	b.WriteString(" ")
	b.WriteString(Sentinel)
	b.WriteString(" ")
	b.WriteString(keyword)
	b.WriteString(": ")
	b.WriteString(payload)
	if s.ClosingSuffix {
		b.WriteString(" */")
	}
	return b.String()
}

// StartFile renders the marker opening a content block.
func (s Syntax) StartFile(displayPath string) string { return s.line("START FILE", displayPath) }

// EndFile renders the marker closing a content block.
func (s Syntax) EndFile(displayPath string) string { return s.line("END FILE", displayPath) }

// StartError renders the marker opening an error block.
func (s Syntax) StartError(displayPath string) string { return s.line("START ERROR", displayPath) }

// ErrorMsg renders the message line inside an error block.
func (s Syntax) ErrorMsg(message string) string { return s.line("ERROR", message) }

// EndError renders the marker closing an error block.
func (s Syntax) EndError(displayPath string) string { return s.line("END ERROR", displayPath) }

// Kind classifies a recognized marker line.
type Kind int

const (
	None Kind = iota
	StartFile
	EndFile
	StartError
	ErrorMsg
	EndError
)

// Recognition accepts any non-whitespace token as the comment leader: a
// bundle may be re-bundled from a tree whose files carry markers written
// under a different comment convention. The optional " */" suffix is
// stripped from the payload.
var (
	startFileRe  = regexp.MustCompile(`^(\S+)\s+\[\[ SCB \]\] START FILE:\s+(.+?)(?:\s*\*/)?$`)
	endFileRe    = regexp.MustCompile(`^(\S+)\s+\[\[ SCB \]\] END FILE:\s+(.+?)(?:\s*\*/)?$`)
	startErrorRe = regexp.MustCompile(`^(\S+)\s+\[\[ SCB \]\] START ERROR:\s+(.+?)(?:\s*\*/)?$`)
	errorMsgRe   = regexp.MustCompile(`^(\S+)\s+\[\[ SCB \]\] ERROR:\s+(.+?)(?:\s*\*/)?$`)
	endErrorRe   = regexp.MustCompile(`^(\S+)\s+\[\[ SCB \]\] END ERROR:\s+(.+?)(?:\s*\*/)?$`)
)

var matchers = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{StartFile, startFileRe},
	{EndFile, endFileRe},
	{StartError, startErrorRe},
	{ErrorMsg, errorMsgRe},
	{EndError, endErrorRe},
}

// Match classifies a line already stripped of surrounding whitespace and
// returns its payload: the display path for file and bracket markers, the
// message for an ERROR line. Non-marker lines return None.
func Match(stripped string) (Kind, string) {
	for _, m := range matchers {
		if sub := m.re.FindStringSubmatch(stripped); sub != nil {
			return m.kind, sub[2]
		}
	}
	return None, ""
}
