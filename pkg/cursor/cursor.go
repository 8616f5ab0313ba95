// Package cursor provides byte-level navigation over UTF-8 source text,
// tracking line/column/offset as it advances. It has no knowledge of tokens,
// dialects, or keywords — it only answers "what's here" and "move forward".
package cursor

// Cursor walks a source buffer one byte at a time. Source text is expected to
// already be transcoded to UTF-8 (see internal/source for UTF-16 handling);
// multi-byte UTF-8 sequences pass through untouched since none of the
// grammar this cursor serves treats continuation bytes specially.
type Cursor struct {
	src     string
	pos     int  // offset of ch, 0-based
	readPos int  // offset of the next byte to read
	ch      byte // current byte, 0 on EOF
	line    int  // 1-based
	col     int  // 1-based
}

// New returns a Cursor positioned at the first byte of src.
func New(src string) *Cursor {
	c := &Cursor{src: src, line: 1, col: 0}
	c.Advance()
	return c
}

// Advance moves to the next byte, updating line/column bookkeeping for the
// byte being left behind.
func (c *Cursor) Advance() {
	if c.ch == '\n' {
		c.line++
		c.col = 0
	}
	if c.readPos >= len(c.src) {
		c.ch = 0
		c.pos = len(c.src)
	} else {
		c.ch = c.src[c.readPos]
		c.pos = c.readPos
	}
	c.readPos = c.pos + 1
	if c.ch != 0 {
		c.col++
	}
}

// Current returns the byte under the cursor, or 0 at EOF.
func (c *Cursor) Current() byte { return c.ch }

// Peek returns the byte k positions ahead of the current one (Peek(0) ==
// Current(), Peek(1) is the next byte) or 0 past the end of src.
func (c *Cursor) Peek(k int) byte {
	idx := c.pos + k
	if idx < 0 || idx >= len(c.src) {
		return 0
	}
	return c.src[idx]
}

// Match advances past the current byte and returns true if it equals want;
// otherwise it leaves the cursor untouched and returns false.
func (c *Cursor) Match(want byte) bool {
	if c.ch != want {
		return false
	}
	c.Advance()
	return true
}

// AtEnd reports whether the cursor has consumed all of src.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

// Line returns the current 1-based line number.
func (c *Cursor) Line() int { return c.line }

// Column returns the current 1-based column number.
func (c *Cursor) Column() int { return c.col }

// Offset returns the current 0-based byte offset into src.
func (c *Cursor) Offset() int { return c.pos }

// Slice returns src[start:c.pos], the bytes consumed since start was noted
// (typically via Offset() at the start of a recognizer).
func (c *Cursor) Slice(start int) string {
	if start < 0 || start > c.pos || c.pos > len(c.src) {
		return ""
	}
	return c.src[start:c.pos]
}

// Rest returns the unconsumed remainder of src, starting at the current
// byte. Used by recognizers that want prefix matching via strings.HasPrefix.
func (c *Cursor) Rest() string {
	if c.pos >= len(c.src) {
		return ""
	}
	return c.src[c.pos:]
}
