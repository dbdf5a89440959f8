package fcat

import (
	"bufio"
	"container/ring"
	"io"
)

// Merge reads each source in order, applies the configured skips, and writes
// the result to w with any configured padding at the boundaries. Sources are
// opened lazily, one at a time, and each is fully drained (or abandoned on
// error) before the next is opened.
//
// A source that fails to open or read aborts the merge with a *SourceError
// identifying the source by position and name. Output already written to w
// stands; Merge is streaming, not transactional.
func (m *Merger) Merge(w io.Writer, sources ...Source) error {
	lw := &lastByteWriter{w: w}
	if err := writePad(lw, m.opts.padBefore); err != nil {
		return err
	}
	for i, src := range sources {
		if i > 0 {
			if err := writePad(lw, m.opts.padBetween); err != nil {
				return err
			}
		}
		if err := m.mergeOne(lw, src, i, len(sources)); err != nil {
			return err
		}
	}
	if err := writePad(lw, m.opts.padAfter); err != nil {
		return err
	}
	if m.opts.newline && lw.wrote && lw.last != '\n' {
		if _, err := lw.Write(m.opts.style.bytes()); err != nil {
			return err
		}
	}
	return nil
}

// MergeFiles is shorthand for Merge over file sources opened by path.
func (m *Merger) MergeFiles(w io.Writer, paths ...string) error {
	return m.Merge(w, Files(paths...)...)
}

func (m *Merger) mergeOne(w io.Writer, src Source, index, total int) error {
	skipHead := m.opts.skipHead
	if m.opts.headOnce && index == 0 {
		skipHead = 0
	}
	skipTail := m.opts.skipTail
	if m.opts.tailOnce && index == total-1 {
		skipTail = 0
	}
	r, err := src.openReader()
	if err != nil {
		return &SourceError{Index: index, Name: src.Name, Err: err}
	}
	defer r.Close()
	if err := copyLines(w, bufio.NewReader(r), skipHead, skipTail); err != nil {
		return &SourceError{Index: index, Name: src.Name, Err: err}
	}
	return nil
}

// copyLines streams r to w line by line, dropping the first skipHead lines
// and the last skipTail lines. A line is the bytes up to and including a
// '\n'; a final fragment with no terminator counts as a line, and emitted
// bytes are passed through exactly as read.
//
// Trailing lines are withheld in a ring of skipTail lines: a line is written
// only once a newer line displaces it from a full ring, so whatever remains
// in the ring at end of input is exactly the tail being dropped. This keeps
// at most skipTail lines in memory however long the source is. If the skips
// cover the whole source, it contributes nothing; that is not an error.
func copyLines(w io.Writer, r *bufio.Reader, skipHead, skipTail int) error {
	var window *ring.Ring
	if skipTail > 0 {
		window = ring.New(skipTail)
	}
	held := 0
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			switch {
			case skipHead > 0:
				skipHead--
			case window == nil:
				if _, werr := w.Write(line); werr != nil {
					return werr
				}
			default:
				if held == skipTail {
					if _, werr := w.Write(window.Value.([]byte)); werr != nil {
						return werr
					}
				} else {
					held++
				}
				window.Value = line
				window = window.Next()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func writePad(w io.Writer, pad []byte) error {
	if len(pad) == 0 {
		return nil
	}
	_, err := w.Write(pad)
	return err
}

// lastByteWriter remembers the last byte it passed through, so that newline
// enforcement can inspect the final byte of the whole output without
// buffering any of it.
type lastByteWriter struct {
	w     io.Writer
	wrote bool
	last  byte
}

func (l *lastByteWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.wrote = true
		l.last = p[n-1]
	}
	return n, err
}
