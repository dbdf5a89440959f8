package main

import (
	"fmt"

	"fcat"
)

// options is the resolved flag surface of the fcat command.
type options struct {
	inputs       []string
	output       string
	skipHead     int
	skipTail     int
	skipHeadOnce int
	skipTailOnce int
	headOnce     bool
	tailOnce     bool
	padding      string
	padMode      string
	newline      bool
	newlineStyle string
	verbosity    int
}

// merger resolves the flag surface into a fully configured fcat.Merger. All
// cross-flag validation happens here, before any source is opened; the
// engine never sees an inconsistent configuration.
func (o *options) merger() (*fcat.Merger, error) {
	style := fcat.LF
	switch o.newlineStyle {
	case "", "lf":
	case "crlf":
		style = fcat.CRLF
	default:
		return nil, fmt.Errorf("unexpected %q in newline-style", o.newlineStyle)
	}

	m := fcat.New()
	switch {
	case o.headOnce:
		m.SkipHeadOnce(1)
	case o.skipHeadOnce > 0:
		m.SkipHeadOnce(o.skipHeadOnce)
	case o.skipHead > 0:
		m.SkipHead(o.skipHead)
	}
	switch {
	case o.tailOnce:
		m.SkipTailOnce(1)
	case o.skipTailOnce > 0:
		m.SkipTailOnce(o.skipTailOnce)
	case o.skipTail > 0:
		m.SkipTail(o.skipTail)
	}
	if o.newline {
		m.ForceNewline(style)
	}

	pad := []byte(o.padding)
	switch o.padMode {
	case "", "between":
		m.PadBetween(pad)
	case "beforestart":
		m.PadBefore(pad)
	case "afterend":
		m.PadAfter(pad)
	case "all":
		m.Pad(pad)
	default:
		return nil, fmt.Errorf("unexpected %q in pad-mode", o.padMode)
	}
	return m, nil
}
