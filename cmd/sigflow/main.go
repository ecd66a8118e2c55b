// Command sigflow runs a small analysis pipeline and prints the strongest
// spectrum bins.
//
// The pipeline is: sine generator -> gain -> window -> real FFT -> magnitude.
// The gained signal is also measured so its level can be reported.
//
// Usage:
//
//	sigflow [flags]
//
// Examples:
//
//	sigflow -freq 1000
//	sigflow -freq 440 -rate 44100 -size 4096 -window blackman
//	sigflow -gain-db -12 -frames 16 -v
//	sigflow -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/fft"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/gen"
	"github.com/cwbudde/algo-sigflow/dsp/node"
	"github.com/cwbudde/algo-sigflow/dsp/pipeline"
	"github.com/cwbudde/algo-sigflow/dsp/signalops"
	"github.com/cwbudde/algo-sigflow/dsp/sink"
	"github.com/cwbudde/algo-sigflow/dsp/spectrum"
	"github.com/cwbudde/algo-sigflow/dsp/window"
)

type settings struct {
	freq   float64
	rate   float64
	size   int
	gainDB float64
	window string
	frames int
	bins   int
	alpha  float64
}

var errInvalidSetting = errors.New("invalid setting")

func main() {
	var s settings
	flag.Float64Var(&s.freq, "freq", 1000, "sine frequency in Hz")
	flag.Float64Var(&s.rate, "rate", 48000, "sample rate in Hz")
	flag.IntVar(&s.size, "size", 1024, "frame size in samples (power of two)")
	flag.Float64Var(&s.gainDB, "gain-db", 0, "gain in dB applied to the generator")
	flag.StringVar(&s.window, "window", "hann", "analysis window name")
	flag.IntVar(&s.frames, "frames", 4, "number of frames to run")
	flag.IntVar(&s.bins, "bins", 8, "number of strongest bins to print")
	flag.Float64Var(&s.alpha, "alpha", math.NaN(), "shape parameter for parametric windows (kaiser, tukey, gauss, lanczos)")
	verbose := flag.Bool("v", false, "log every processed frame")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigflow [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs generator -> gain -> window -> FFT -> magnitude and prints\n")
		fmt.Fprintf(os.Stderr, "the strongest bins of the last frame.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigflow -freq 440 -rate 44100 -size 4096\n")
		fmt.Fprintf(os.Stderr, "  sigflow -window blackman-nuttall -v\n")
		fmt.Fprintf(os.Stderr, "  sigflow -window kaiser -alpha 12 -bins 4\n")
		fmt.Fprintf(os.Stderr, "  sigflow -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(s, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	for _, t := range window.Types() {
		fmt.Println(t)
	}
}

func run(s settings, logger *slog.Logger) error {
	if s.frames < 1 {
		return fmt.Errorf("%w: -frames must be >= 1: %d", errInvalidSetting, s.frames)
	}
	if s.bins < 1 {
		return fmt.Errorf("%w: -bins must be >= 1: %d", errInvalidSetting, s.bins)
	}

	wt, err := window.Parse(s.window)
	if err != nil {
		return err
	}

	src, err := gen.NewNodeFromConfig(gen.Sine(s.freq), core.ProcessorConfig{
		SampleRate: s.rate,
		FrameSize:  s.size,
	})
	if err != nil {
		return err
	}

	winOpts := []window.Option{window.WithPeriodic()}
	if !math.IsNaN(s.alpha) {
		winOpts = append(winOpts, window.WithAlpha(s.alpha))
	}
	win, err := window.New(wt, s.size, winOpts...)
	if err != nil {
		return err
	}
	winInfo, err := window.Analyze(win.Coefficients())
	if err != nil {
		return fmt.Errorf("window %s: %w", wt, err)
	}

	rfft, err := fft.NewRealForward(s.size)
	if err != nil {
		return err
	}

	meter := sink.NewMeter()
	analysis := pipeline.Chain3[frame.Real, frame.Real, frame.Complex, frame.Real](
		win, rfft, spectrum.NewMagnitude(s.size),
	)
	// The meter reads the gained frame before the window shapes it.
	tap := node.TransformerFunc[frame.Real, frame.Real](func(in frame.Real) frame.Real {
		meter.Consume(in)
		return in
	})

	last := frame.New(s.size)
	keep := node.ConsumerFunc[frame.Real](func(in frame.Real) {
		core.CopyInto(last, in)
	})

	r, err := pipeline.NewRunner[frame.Real, frame.Real](
		pipeline.Source[frame.Real, frame.Real](src, signalops.NewGainDB(s.gainDB, s.size)),
		pipeline.Chain2[frame.Real, frame.Real, frame.Real](tap, analysis),
		keep,
		pipeline.WithLogger(logger),
		pipeline.WithName("sigflow"),
	)
	if err != nil {
		return err
	}

	r.Run(s.frames)

	fmt.Printf("Signal: %.1f Hz sine at %.0f Hz, gain %.1f dB, %d frames of %d samples\n",
		s.freq, s.rate, s.gainDB, r.Frames(), s.size)
	fmt.Printf("Level:  peak %.2f dBFS, rms %.2f dBFS\n", meter.PeakDB(), meter.RMSDB())
	fmt.Printf("Window: %s (periodic), coherent gain %.3f, ENBW %.2f bins\n\n",
		wt, winInfo.CoherentGain, winInfo.ENBW)

	printBins(last, s, winInfo.CoherentGain)

	return nil
}

type bin struct {
	index int
	mag   float32
}

// printBins prints the strongest bins. The amplitude column undoes the
// window's coherent gain and the two-sided split of a real sine.
func printBins(mags frame.Real, s settings, coherentGain float64) {
	// Only the non-negative frequency half of a real spectrum is unique.
	half := len(mags)/2 + 1
	if half > len(mags) {
		half = len(mags)
	}

	bins := make([]bin, half)
	for i := range bins {
		bins[i] = bin{index: i, mag: mags[i]}
	}
	sort.SliceStable(bins, func(i, j int) bool { return bins[i].mag > bins[j].mag })

	n := min(s.bins, len(bins))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Bin\tFrequency (Hz)\tMagnitude\tLevel (dB)\tAmplitude\t\n")
	fmt.Fprintf(tw, "---\t--------------\t---------\t----------\t---------\t\n")
	for _, b := range bins[:n] {
		freq := float64(b.index) * s.rate / float64(len(mags))
		amp := 2 * float64(b.mag) / (float64(len(mags)) * coherentGain)
		fmt.Fprintf(tw, "%d\t%.1f\t%.4f\t%.1f\t%.4f\t\n", b.index, freq, b.mag, core.LinearToDB(float64(b.mag)), amp)
	}
	tw.Flush()
}
