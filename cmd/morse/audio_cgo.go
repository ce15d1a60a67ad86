//go:build (linux && cgo) || windows || darwin

package morse

import (
	"bytes"
	"io"
	"log/slog"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether a sound device can be used in this build.
const AudioAvailable = true

// queueBlocks bounds how far rendering can run ahead of the speaker.
const queueBlocks = 64

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(beep.SampleRate(sampleRate), sampleRate/10)
		if speakerErr == nil {
			slog.Info("speaker initialized", "sample_rate", sampleRate)
		}
	})
	return speakerErr
}

// speakerSink feeds PCM blocks to the beep speaker. Write blocks while the
// queue is full, which is how the device paces rendering.
type speakerSink struct {
	format beep.Format
	blocks chan []byte
	cur    []byte
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func openSpeaker() (io.WriteCloser, error) {
	if err := initSpeaker(); err != nil {
		return nil, err
	}
	s := newSpeakerSink(queueBlocks)
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(s.done)
	})))
	return s, nil
}

// newSpeakerSink builds a sink that is not yet attached to the speaker.
// Whoever streams it must close done once Stream reports the end.
func newSpeakerSink(capacity int) *speakerSink {
	return &speakerSink{
		format: beep.Format{
			SampleRate:  beep.SampleRate(sampleRate),
			NumChannels: 1,
			Precision:   bytesPerSample,
		},
		blocks: make(chan []byte, capacity),
		done:   make(chan struct{}),
	}
}

func (s *speakerSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrSinkClosed
	}
	s.blocks <- bytes.Clone(p)
	return len(p), nil
}

// Close waits until everything written so far has been played.
func (s *speakerSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.blocks)
	s.mu.Unlock()
	<-s.done
	return nil
}

// Stream is called from the speaker goroutine. An empty queue plays
// silence rather than stalling the device.
func (s *speakerSink) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if len(s.cur) < bytesPerSample {
			select {
			case b, open := <-s.blocks:
				if !open {
					return i, i > 0
				}
				s.cur = b
			default:
				samples[i] = [2]float64{}
				continue
			}
		}
		sample, used := s.format.DecodeSigned(s.cur)
		samples[i] = sample
		s.cur = s.cur[used:]
	}
	return len(samples), true
}

func (s *speakerSink) Err() error {
	return nil
}
