package morse

import (
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrSinkClosed = errors.New("audio sink closed")

// blockDuration is how long a block of PCM bytes plays at the sink rate.
func blockDuration(p []byte) time.Duration {
	return time.Duration(len(p)/bytesPerSample) * time.Second / sampleRate
}

func isSilent(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

// bellSink stands in for a sound device when there is none: it rings the
// terminal bell when a tone starts and sleeps for as long as the blocks
// would have played.
type bellSink struct {
	out    io.Writer
	sleep  func(time.Duration)
	owed   time.Duration
	toning bool
	closed bool
}

const bellSlice = 10 * time.Millisecond

func newBellSink(out io.Writer) *bellSink {
	return &bellSink{out: out, sleep: time.Sleep}
}

func (b *bellSink) Write(p []byte) (int, error) {
	if b.closed {
		return 0, ErrSinkClosed
	}
	tone := !isSilent(p)
	if tone && !b.toning {
		if _, err := fmt.Fprint(b.out, "\a"); err != nil {
			return 0, err
		}
	}
	b.toning = tone
	b.owed += blockDuration(p)
	if b.owed >= bellSlice {
		b.sleep(b.owed)
		b.owed = 0
	}
	return len(p), nil
}

func (b *bellSink) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.owed > 0 {
		b.sleep(b.owed)
		b.owed = 0
	}
	return nil
}
