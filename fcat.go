// Package fcat merges an ordered list of line-oriented byte sources into a
// single output stream, with more control than plain concatenation: leading
// and trailing lines can be dropped per source, padding can be inserted at
// the boundaries, and a final newline can be enforced.
//
// Configuration methods return the same *Merger, so that options can be
// chained:
//
//	m := fcat.New().SkipHeadOnce(1).ForceNewline(fcat.LF)
//	err := m.MergeFiles(os.Stdout, "jan.csv", "feb.csv", "mar.csv")
//
// keeps the header line of jan.csv, drops the header of every following
// file, and guarantees the result ends with a newline.
//
// Merging streams: each source is read once, front to back, and output is
// written incrementally. Memory use is bounded by the tail-skip window, not
// by the size of the inputs.
package fcat

// Newline is the style of line terminator appended by ForceNewline.
type Newline int

// Line terminator styles.
const (
	LF   Newline = iota // "\n"
	CRLF                // "\r\n"
)

func (n Newline) bytes() []byte {
	if n == CRLF {
		return []byte("\r\n")
	}
	return []byte("\n")
}

type options struct {
	skipHead   int
	skipTail   int
	headOnce   bool
	tailOnce   bool
	newline    bool
	style      Newline
	padBefore  []byte
	padBetween []byte
	padAfter   []byte
}

// Merger merges sources according to its configured options. The zero value
// is a plain concatenator: no skipping, no padding, no newline enforcement.
// A Merger must not be reconfigured while a merge is in progress.
type Merger struct {
	opts options
}

// New returns a Merger with no options set.
func New() *Merger {
	return &Merger{}
}

// SkipHead drops the first n lines of every source.
func (m *Merger) SkipHead(n int) *Merger {
	m.opts.skipHead = n
	m.opts.headOnce = false
	return m
}

// SkipHeadOnce drops the first n lines of every source except the first,
// whose head is preserved. This keeps one shared header when merging
// tabular files.
func (m *Merger) SkipHeadOnce(n int) *Merger {
	m.opts.skipHead = n
	m.opts.headOnce = true
	return m
}

// SkipTail drops the last n lines of every source.
func (m *Merger) SkipTail(n int) *Merger {
	m.opts.skipTail = n
	m.opts.tailOnce = false
	return m
}

// SkipTailOnce drops the last n lines of every source except the last,
// whose tail is preserved.
func (m *Merger) SkipTailOnce(n int) *Merger {
	m.opts.skipTail = n
	m.opts.tailOnce = true
	return m
}

// ForceNewline guarantees that the merged output ends with exactly one line
// terminator of the given style. A terminator is appended only if the last
// byte written is not '\n'; output that already ends with a newline is left
// alone. If the merge writes no bytes at all, nothing is appended.
func (m *Merger) ForceNewline(style Newline) *Merger {
	m.opts.newline = true
	m.opts.style = style
	return m
}

// PadBefore emits pad once, before the first source's content.
func (m *Merger) PadBefore(pad []byte) *Merger {
	m.opts.padBefore = pad
	return m
}

// PadBetween emits pad once between each adjacent pair of sources. The
// padding is emitted at every boundary, even when a neighbouring source
// contributes no lines.
func (m *Merger) PadBetween(pad []byte) *Merger {
	m.opts.padBetween = pad
	return m
}

// PadAfter emits pad once, after the last source's content.
func (m *Merger) PadAfter(pad []byte) *Merger {
	m.opts.padAfter = pad
	return m
}

// Pad is shorthand for setting the same padding before, between, and after.
func (m *Merger) Pad(pad []byte) *Merger {
	return m.PadBefore(pad).PadBetween(pad).PadAfter(pad)
}
