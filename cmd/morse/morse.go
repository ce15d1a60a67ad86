package morse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/morse/cmd/common"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	Text    []string `pos:"true" optional:"true" help:"Text to encode/decode. If none provided, reads lines from stdin."`
	Decode  bool     `short:"d" help:"Decode morse code to text." default:"false"`
	Silent  bool     `short:"s" help:"Print the code without playing it." default:"false"`
	Raw     bool     `short:"r" help:"Write raw PCM (s16le, 44100 Hz, mono) to stdout instead of the sound device." default:"false"`
	Clip    bool     `short:"c" help:"Copy the last encoded or decoded line to the clipboard." default:"false"`
	Chart   bool     `short:"t" help:"Print the code table and exit." default:"false"`
	Verbose bool     `short:"v" help:"Log debug output to stderr." default:"false"`
}

// Variables for testing
var (
	clipboardWriteAll = clipboard.WriteAll
	openSink          = openSpeaker
)

const banner = "Type a line and press Enter to hear it. Press Ctrl-D when done.\n\n"

var charStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

func Cmd() *cobra.Command {
	return Command().ToCobra()
}

// Command is the morse command before conversion to cobra, so a binary can
// run it as its root.
func Command() boa.CmdT[Params] {
	return boa.CmdT[Params]{
		Use:   "morse",
		Short: "Print and play text as Morse code",
		Long: `Convert text to International Morse code, print each character above its code
and play it as a tone at 10 words per minute.

Without arguments, lines are read from stdin until end of input.
Use -r to write raw PCM instead, e.g. morse -r sos | aplay -f S16_LE -r 44100 -c 1`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "morse: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

func Run(params *Params) error {
	common.SetupLogging(params.Verbose)
	if len(params.Text) == 0 && !params.Chart && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, banner)
	}
	return run(params, os.Stdin, os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd())))
}

// player prints and plays lines one at a time.
type player struct {
	display  io.Writer
	styled   bool
	renderer *Renderer
	sink     io.Writer
	played   bool
	last     string
}

func run(params *Params, in io.Reader, out, errOut io.Writer, styled bool) (err error) {
	if params.Chart {
		writeChart(out, chartColumns)
		return nil
	}
	if params.Decode {
		var last string
		err := eachLine(params, in, func(line string) error {
			last = Decode(line)
			_, err := fmt.Fprintln(out, last)
			return err
		})
		if err != nil {
			return err
		}
		return copyToClipboard(params, last)
	}

	p := &player{display: out, styled: styled && !params.Raw}
	if !params.Silent {
		p.renderer = NewRenderer(DefaultTiming, NewWaveform(DefaultOctave))
		var sink io.WriteCloser
		if params.Raw {
			// stdout carries the audio, so the printed code moves to stderr
			sink = nopCloser{out}
			p.display = errOut
		} else {
			slog.Debug("opening audio device", "native", AudioAvailable, "tone_hz", Frequency(DefaultOctave))
			sink, err = openSink()
			if err != nil {
				return fmt.Errorf("opening audio device: %w", err)
			}
		}
		p.sink = sink
		defer func() {
			err = errors.Join(err, sink.Close())
		}()
	}

	if err := eachLine(params, in, p.line); err != nil {
		return err
	}

	return copyToClipboard(params, p.last)
}

func copyToClipboard(params *Params, text string) error {
	if !params.Clip {
		return nil
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// eachLine calls fn with the joined positional text, or with every line
// of in when there is none.
func eachLine(params *Params, in io.Reader, fn func(string) error) error {
	if len(params.Text) > 0 {
		return fn(strings.Join(params.Text, " "))
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *player) line(text string) error {
	chars := Align(text)
	if p.styled && chars != "" {
		chars = charStyle.Render(chars)
	}
	code := EncodeDisplay(text)
	if _, err := fmt.Fprintf(p.display, "%s\n%s\n", chars, code); err != nil {
		return err
	}
	p.last = code

	if p.sink == nil {
		return nil
	}
	seq := EncodeSymbols(text)
	blocks := p.renderer.Blocks(seq)
	if blocks == 0 {
		return nil
	}
	slog.Debug("playing line", "symbols", len(seq), "blocks", blocks)

	// The previous line ended on an element gap; lines are words apart.
	if p.played {
		if err := p.renderer.Rest(wordGapUnits-1, p.sink); err != nil {
			return fmt.Errorf("playing %q: %w", text, err)
		}
	}
	if err := p.renderer.Render(seq, p.sink); err != nil {
		return fmt.Errorf("playing %q: %w", text, err)
	}
	p.played = true
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
