// Package charbuf implements the pending-line editor used while a shell
// command is being typed: push/pop a character, pop/peek the trailing word,
// and clear. It is owned exclusively by the PTY Supervisor's input loop and
// is never touched by more than one goroutine at a time.
package charbuf

// Buffer is a mutable byte sequence representing the logical line currently
// being edited.
type Buffer struct {
	buf []byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes seeds a Buffer with existing content, useful for tests.
func FromBytes(b []byte) *Buffer {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Buffer{buf: buf}
}

// PushChar appends a single byte to the buffer.
func (b *Buffer) PushChar(c byte) {
	b.buf = append(b.buf, c)
}

// PopChar removes and returns the last byte, or ok=false if empty.
func (b *Buffer) PopChar() (c byte, ok bool) {
	n := len(b.buf)
	if n == 0 {
		return 0, false
	}
	c = b.buf[n-1]
	b.buf = b.buf[:n-1]
	return c, true
}

// PeekChar returns the last byte without removing it.
func (b *Buffer) PeekChar() (c byte, ok bool) {
	n := len(b.buf)
	if n == 0 {
		return 0, false
	}
	return b.buf[n-1], true
}

// PopWord removes the last maximal non-space run together with any spaces
// that trailed it, and returns the removed word. The space that separates
// the word from the rest of the line (if any) is left in place — only the
// word and its T trailing spaces are removed. It returns ok=false, leaving
// the buffer untouched, if the buffer is empty or holds only spaces (I4).
func (b *Buffer) PopWord() (word []byte, ok bool) {
	wordStart, wordEnd, found := b.locateLastWord()
	if !found {
		return nil, false
	}
	word = append([]byte(nil), b.buf[wordStart:wordEnd]...)
	b.buf = b.buf[:wordStart]
	return word, true
}

// PeekWord mirrors PopWord without mutating the buffer (I5).
func (b *Buffer) PeekWord() (word []byte, ok bool) {
	wordStart, wordEnd, found := b.locateLastWord()
	if !found {
		return nil, false
	}
	return append([]byte(nil), b.buf[wordStart:wordEnd]...), true
}

// locateLastWord finds the bounds [start, end) of the last maximal
// non-space run, after stripping trailing spaces. found=false if the
// buffer is empty or entirely spaces.
func (b *Buffer) locateLastWord() (start, end int, found bool) {
	end = len(b.buf)
	for end > 0 && b.buf[end-1] == ' ' {
		end--
	}
	if end == 0 {
		return 0, 0, false
	}

	start = end
	for start > 0 && b.buf[start-1] != ' ' {
		start--
	}
	return start, end, true
}

// Clear empties the buffer. Clearing an already-empty buffer is a no-op.
func (b *Buffer) Clear() {
	b.buf = b.buf[:0]
}

// Snapshot returns a read-only copy of the current buffer contents.
func (b *Buffer) Snapshot() []byte {
	return append([]byte(nil), b.buf...)
}

// Len reports the number of bytes currently buffered.
func (b *Buffer) Len() int {
	return len(b.buf)
}
