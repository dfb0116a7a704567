package ux

import (
	"fmt"
	"os"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Progress redraws an in-place progress line.
func Progress(done, total int) {
	if total <= 0 {
		return
	}
	fmt.Printf("\r%s[%3d%%]%s %d/%d", Dim, done*100/total, Reset, done, total)
}

// ProgressDone terminates the in-place progress line.
func ProgressDone() {
	fmt.Print("\r\033[K")
}

// MergeSummary prints the final merge report.
func MergeSummary(output string, files, errs, tokens int) {
	fmt.Printf("%s✓%s Bundled %d file(s) into %s", Green, Reset, files, output)
	if errs > 0 {
		fmt.Printf(" %s(%d unreadable, recorded as error blocks)%s", Yellow, errs, Reset)
	}
	fmt.Printf("\n%s~%d tokens%s\n", Dim, tokens, Reset)
}

// SplitSummary prints the final split report.
func SplitSummary(outputDir string, written, skipped int) {
	fmt.Printf("%s✓%s Restored %d file(s) into %s", Green, Reset, written, outputDir)
	if skipped > 0 {
		fmt.Printf(" %s(%d entr%s skipped)%s", Yellow, skipped, plural(skipped, "y", "ies"), Reset)
	}
	fmt.Println()
}

// Warnf prints a yellow warning line to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%swarning:%s %s\n", Yellow, Reset, fmt.Sprintf(format, args...))
}

// CheckLine prints one doctor check result.
func CheckLine(ok bool, name, detail string) {
	mark := Green + "✓" + Reset
	if !ok {
		mark = Red + "✗" + Reset
	}
	fmt.Printf(" %s %s", mark, name)
	if detail != "" {
		fmt.Printf(" %s— %s%s", Dim, detail, Reset)
	}
	fmt.Println()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
