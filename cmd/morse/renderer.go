package morse

import (
	"io"
	"log/slog"
)

// Renderer plays encoded lines as tone and silence blocks. It is read-only
// after construction and can be shared between lines.
type Renderer struct {
	timing Timing
	wave   Waveform
}

func NewRenderer(timing Timing, wave Waveform) *Renderer {
	slog.Debug("morse renderer ready",
		"unit_blocks", timing.Unit,
		"block_bytes", len(wave.Tone),
	)
	return &Renderer{timing: timing, wave: wave}
}

// Render writes seq to sink one block per Write call. Gap symbols before the
// first mark and after the last one are not played. Sink errors are returned
// as is.
func (r *Renderer) Render(seq Encoded, sink io.Writer) error {
	for _, span := range r.spans(seq) {
		block := r.wave.Silence
		if span.tone {
			block = r.wave.Tone
		}
		if err := writeBlocks(sink, block, span.blocks); err != nil {
			return err
		}
	}
	return nil
}

// Rest writes units of silence to sink.
func (r *Renderer) Rest(units int, sink io.Writer) error {
	return writeBlocks(sink, r.wave.Silence, units*r.timing.Unit)
}

func writeBlocks(sink io.Writer, block []byte, count int) error {
	for i := 0; i < count; i++ {
		n, err := sink.Write(block)
		if err != nil {
			return err
		}
		if n != len(block) {
			return io.ErrShortWrite
		}
	}
	return nil
}

// Blocks is the number of blocks Render writes for seq.
func (r *Renderer) Blocks(seq Encoded) int {
	total := 0
	for _, span := range r.spans(seq) {
		total += span.blocks
	}
	return total
}

type span struct {
	tone   bool
	blocks int
}

// spans lays out seq as runs of tone and silence. Every mark is followed by
// one element gap; the gap symbols between two marks only decide how far to
// top that up. Any WordGap makes it a word gap, no matter how many spaces
// or dropped characters sit in between.
func (r *Renderer) spans(seq Encoded) []span {
	t := r.timing
	var spans []span
	marked, letter, word := false, false, false
	for _, s := range seq {
		switch s {
		case LetterGap:
			letter = true
			continue
		case WordGap:
			word = true
			continue
		}

		if marked {
			switch {
			case word:
				spans = append(spans, span{blocks: t.WordGap() - t.ElementGap()})
			case letter:
				spans = append(spans, span{blocks: t.LetterGap() - t.ElementGap()})
			}
		}
		marked, letter, word = true, false, false

		length := t.Dot()
		if s == Dash {
			length = t.Dash()
		}
		spans = append(spans, span{tone: true, blocks: length}, span{blocks: t.ElementGap()})
	}
	return spans
}
