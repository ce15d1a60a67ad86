package morse

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type captureSink struct {
	bytes.Buffer
	closed bool
}

func (c *captureSink) Close() error {
	c.closed = true
	return nil
}

func withSink(t *testing.T, sink io.WriteCloser, err error) {
	t.Helper()
	orig := openSink
	openSink = func() (io.WriteCloser, error) { return sink, err }
	t.Cleanup(func() { openSink = orig })
}

func TestRun_PrintsAlignedRows(t *testing.T) {
	var out bytes.Buffer
	err := run(&Params{Text: []string{"SOS"}, Silent: true}, strings.NewReader(""), &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	expected := "S   O   S\n... --- ...\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestRun_JoinsWords(t *testing.T) {
	var out bytes.Buffer
	err := run(&Params{Text: []string{"a", "b"}, Silent: true}, strings.NewReader(""), &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	expected := "a    b\n.-   -...\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestRun_ReadsLinesFromStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("E\n\n~\nT\n")
	err := run(&Params{Silent: true}, in, &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	expected := "E\n.\n\n\n\n\nT\n-\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestRun_PlaysEachLine(t *testing.T) {
	sink := &captureSink{}
	withSink(t, sink, nil)

	var out bytes.Buffer
	err := run(&Params{}, strings.NewReader("E\n~\nE\n"), &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !sink.closed {
		t.Error("expected the sink to be closed")
	}

	wave := NewWaveform(DefaultOctave)
	perLine := 2 * DefaultUnit * len(wave.Tone)
	between := 6 * DefaultUnit * len(wave.Tone)
	if sink.Len() != 2*perLine+between {
		t.Errorf("expected %d bytes for two E lines, got %d", 2*perLine+between, sink.Len())
	}
}

func TestRun_RawWritesPCMToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&Params{Text: []string{"E"}, Raw: true}, strings.NewReader(""), &out, &errOut, true)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	wave := NewWaveform(DefaultOctave)
	expected := bytes.Repeat(wave.Tone, DefaultUnit)
	expected = append(expected, bytes.Repeat(wave.Silence, DefaultUnit)...)
	if !bytes.Equal(out.Bytes(), expected) {
		t.Errorf("expected %d bytes of PCM, got %d", len(expected), out.Len())
	}
	if errOut.String() != "E\n.\n" {
		t.Errorf("expected the code on stderr, got %q", errOut.String())
	}
}

func TestRun_LinesAreAWordGapApart(t *testing.T) {
	var out bytes.Buffer
	err := run(&Params{Raw: true}, strings.NewReader("E\n~\n\nE\n"), &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	wave := NewWaveform(DefaultOctave)
	var expected []byte
	expected = append(expected, bytes.Repeat(wave.Tone, DefaultUnit)...)
	expected = append(expected, bytes.Repeat(wave.Silence, 7*DefaultUnit)...)
	expected = append(expected, bytes.Repeat(wave.Tone, DefaultUnit)...)
	expected = append(expected, bytes.Repeat(wave.Silence, DefaultUnit)...)
	if !bytes.Equal(out.Bytes(), expected) {
		t.Errorf("expected two E tones 7 units apart (%d bytes), got %d bytes", len(expected), out.Len())
	}

	var single bytes.Buffer
	if err := run(&Params{Text: []string{"I"}, Raw: true}, strings.NewReader(""), &single, io.Discard, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if bytes.Equal(out.Bytes(), single.Bytes()) {
		t.Error("two lines of E must not sound like one I")
	}
}

func TestRun_SinkErrors(t *testing.T) {
	deviceErr := errors.New("no such device")
	withSink(t, nil, deviceErr)

	err := run(&Params{Text: []string{"E"}}, strings.NewReader(""), io.Discard, io.Discard, false)
	if !errors.Is(err, deviceErr) {
		t.Errorf("expected device error, got %v", err)
	}
}

type brokenSink struct {
	err error
}

func (b brokenSink) Write(p []byte) (int, error) { return 0, b.err }
func (b brokenSink) Close() error                { return nil }

func TestRun_WriteErrorStopsProcessing(t *testing.T) {
	writeErr := errors.New("write rejected")
	withSink(t, brokenSink{err: writeErr}, nil)

	var out bytes.Buffer
	err := run(&Params{}, strings.NewReader("E\nT\n"), &out, io.Discard, false)
	if !errors.Is(err, writeErr) {
		t.Errorf("expected write error, got %v", err)
	}
	if out.String() != "E\n.\n" {
		t.Errorf("expected only the first line to be printed, got %q", out.String())
	}
}

func TestRun_Decode(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("... --- ...\n.-   -...\n")
	err := run(&Params{Decode: true}, in, &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if out.String() != "SOS\nA B\n" {
		t.Errorf("expected decoded lines, got %q", out.String())
	}
}

func TestRun_Chart(t *testing.T) {
	var out bytes.Buffer
	err := run(&Params{Chart: true}, strings.NewReader(""), &out, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	for _, want := range []string{"CHAR", "CODE", ".-.-.-", "...-..-", "-----"} {
		if !strings.Contains(strings.ToUpper(out.String()), strings.ToUpper(want)) {
			t.Errorf("chart is missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_Clip(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	err := run(&Params{Silent: true, Clip: true}, strings.NewReader("A\nSOS\n"), io.Discard, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if copied != "... --- ..." {
		t.Errorf("expected the last line on the clipboard, got %q", copied)
	}
}

func TestRun_ClipDecoded(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	err := run(&Params{Decode: true, Clip: true}, strings.NewReader(".-\n... --- ...\n"), io.Discard, io.Discard, false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if copied != "SOS" {
		t.Errorf("expected the last decoded line on the clipboard, got %q", copied)
	}
}

func TestRun_NoClipWithoutFlag(t *testing.T) {
	called := false
	orig := clipboardWriteAll
	clipboardWriteAll = func(string) error {
		called = true
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	if err := run(&Params{Decode: true}, strings.NewReader(".-\n"), io.Discard, io.Discard, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if called {
		t.Error("clipboard should not be touched without -c")
	}
}

func TestCommand(t *testing.T) {
	c := Command()
	if c.Use != "morse" || c.RunFunc == nil {
		t.Errorf("unexpected command %q", c.Use)
	}
	if cobraCmd := Cmd(); cobraCmd.Use != "morse" {
		t.Errorf("expected cobra command morse, got %q", cobraCmd.Use)
	}
}
