// Package netbuf provides the growable byte buffer that protocol codecs
// pack into and unpack from. Frames are built bottom-up: each layer shifts
// the buffer to insert its header in front of whatever the inner layers
// already wrote, so the finished buffer reads outermost header first.
package netbuf

import "errors"

// ErrLimit is returned by Shift when growing the buffer would exceed the
// configured size limit.
var ErrLimit = errors.New("netbuf: buffer growth limit exceeded")

const defaultHeadroom = 64

// Buffer is a byte region with headroom at the front so that repeated
// prepends do not copy the tail every time. The zero value is not usable;
// construct with New.
//
// Buffer is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Buffer struct {
	store []byte // backing array, [start:] is live
	start int
	limit int // 0 means unlimited
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithLimit caps the live size of the buffer. Shift calls that would push
// the size past n fail with ErrLimit.
func WithLimit(n int) Option {
	return func(b *Buffer) { b.limit = n }
}

// New returns an empty Buffer with default front headroom.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		store: make([]byte, defaultHeadroom),
		start: defaultHeadroom,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Shift grows the buffer by n bytes at the front, preserving existing
// content, and returns the newly inserted region. The region is zeroed.
// On failure nothing is inserted.
func (b *Buffer) Shift(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrLimit
	}
	if b.limit > 0 && b.Len()+n > b.limit {
		return nil, ErrLimit
	}
	if n > b.start {
		// Headroom exhausted: reallocate with room for this shift plus
		// slack for the layers still to come.
		grown := make([]byte, n+defaultHeadroom+len(b.store)-b.start)
		copied := copy(grown[n+defaultHeadroom:], b.store[b.start:])
		b.store = grown[:n+defaultHeadroom+copied]
		b.start = n + defaultHeadroom
	}
	b.start -= n
	region := b.store[b.start : b.start+n]
	for i := range region {
		region[i] = 0
	}
	return region, nil
}

// Consume removes the front n bytes and returns them, advancing the buffer
// past a header that has been unpacked. The returned slice stays valid until
// the next Shift.
func (b *Buffer) Consume(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, errors.New("netbuf: consume past end of buffer")
	}
	front := b.store[b.start : b.start+n]
	b.start += n
	return front, nil
}

// Bytes returns the live region. The codec reads and writes through this
// view directly; it stays valid until the next Shift.
func (b *Buffer) Bytes() []byte {
	return b.store[b.start:]
}

// Len returns the number of live bytes.
func (b *Buffer) Len() int {
	return len(b.store) - b.start
}
