package invoke

import "bytes"

// DefaultMaxOutput caps each captured stream.
const DefaultMaxOutput = 16 << 20

// cappedBuffer accumulates output up to limit bytes and silently drops the
// rest. Writes always report success so the child never sees EPIPE.
//
// It is written by the exec copying goroutine and read only after Wait has
// returned, which orders the two.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - b.buf.Len()
	if room <= 0 {
		b.truncated = b.truncated || len(p) > 0
		return len(p), nil
	}
	if len(p) > room {
		b.buf.Write(p[:room])
		b.truncated = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}
