package docs

var topics = []Topic{
	{
		Name:    "format",
		Title:   "Bundle Format",
		Summary: "Marker grammar, index block, and block separators",
		Content: `BUNDLE FORMAT

A bundle is UTF-8, line-oriented text. It starts with an optional file
index, followed by one block per file. Blocks are separated by a single
blank line.

Marker lines embed the literal sentinel token [[ SCB ]]. The comment
leader in front of it depends on the file's extension, so a bundle pastes
cleanly into syntax-highlighted views:

    .py            #
    .rs            ///
    .c .h .cpp .hpp //
    .css           /*  (every marker also gets a closing ' */')

Anything else uses //. The five marker kinds:

    <leader> [[ SCB ]] START FILE: ./proj/src/main.c
    <leader> [[ SCB ]] END FILE: ./proj/src/main.c
    <leader> [[ SCB ]] START ERROR: ./proj/data.bin
    <leader> [[ SCB ]] ERROR: Cannot read file (binary or unsupported encoding)
    <leader> [[ SCB ]] END ERROR: ./proj/data.bin

On split, recognition matches on the sentinel plus the keyword and accepts
any non-whitespace token as the leader, so a bundle can be re-bundled even
after its files changed comment conventions.

The index block, present whenever at least one file matched:

    # [[ SCB ]] FILE INDEX START
    # Total Files: 2
    #
    # ./proj/src/main.c | SIZE: 1.4kb | LINES: 52
    # ./proj/style.css  | SIZE: 0.3kb | LINES:  9
    # [[ SCB ]] FILE INDEX END

Paths are left-aligned, sizes and line counts right-aligned, to the widest
entry. File content is reproduced verbatim; a newline is appended only if
the file did not already end with a line terminator.`,
	},
	{
		Name:    "paths",
		Title:   "Display Paths",
		Summary: "How marker paths are computed and sanitized",
		Content: `DISPLAY PATHS

Every marker records a display path: forward-slash separated, relative,
prefixed with "./". The source directory's own name is kept as the leading
component, so splitting re-creates the tree under its original name:

    scb merge ~/work/proj bundle.txt     ->  ./proj/src/main.c
    scb split bundle.txt ~/restore       ->  ~/restore/proj/src/main.c

Files are sorted by display path (byte-wise), which makes bundles
deterministic regardless of directory traversal order.

On split, declared paths are sanitized before any file is created:
absolute paths have their root stripped, anything still absolute under the
host's conventions (drive letters, UNC) is skipped, and any path whose
".." segments would escape the output directory is skipped with a log
line. A skipped entry never aborts the rest of the split.`,
	},
	{
		Name:    "rules",
		Title:   "Filter Rules",
		Summary: "Glob-based exclusion during merge and split",
		Content: `FILTER RULES

Rules are glob patterns matched against the file name and every path
segment of a candidate. A match excludes the file — both from collection
during merge and from restoration during split.

In scb.yaml:

    rules:
      - pattern: "*_test.py"
      - pattern: "build"
      - pattern: "*.min.css"
        active: false

Rules are active unless 'active: false' is set. Patterns support the
usual glob syntax plus '**' and character classes. On the command line,
each --exclude flag adds an active rule for that invocation.

Independent of rules, any path segment starting with "." (dot directories
and dot files) is always excluded from collection.`,
	},
	{
		Name:    "config",
		Title:   "Configuration",
		Summary: "scb.yaml keys and precedence",
		Content: `CONFIGURATION

scb looks for scb.yaml in the working directory, or wherever --config
points. All keys are optional:

    extensions: [".py", ".go", ".ts"]
    rules:
      - pattern: "*_test.py"
    overwrite: false

extensions  File extensions to include in a merge. Case-insensitive;
            the leading dot may be omitted. Default: .py .rs .c .h
            .cpp .hpp .css
rules       Exclusion rules (see 'scb docs rules').
overwrite   Split default for replacing existing files. Off, an existing
            file is kept and the incoming one is written with a numeric
            suffix (name_1.ext). On, existing regular files are replaced
            in place.

Command-line flags always override the file.`,
	},
	{
		Name:    "encodings",
		Title:   "Encodings and Binary Detection",
		Summary: "How file content is decoded during merge",
		Content: `ENCODINGS

Each file is decoded by trying UTF-8, then Windows-1252, then ISO 8859-1.
An encoding is accepted only if every byte decodes and the result does not
look binary.

The binary check samples the first 8 KiB of decoded text and counts
characters that are neither printable nor tab, LF, form feed, or CR. Past
10% the file is treated as binary. This is a heuristic: text dense in
unusual code points can be misclassified, and mostly-printable binary can
slip through.

A file that fails all three encodings is recorded in the bundle as an
error block instead of content; the merge continues, and a later split
creates no file for it.`,
	},
}
