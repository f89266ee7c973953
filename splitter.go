package forecastcv

import (
	"errors"
	"iter"

	"github.com/arhodes/go-forecastcv/horizon"
)

var (
	ErrNonPositiveWindow = errors.New("window length must be positive")
	ErrNonPositiveStep   = errors.New("step length must be positive")
)

// Window is a half-open index range [Start, End) into a time index.
type Window struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// SlidingWindowSplitter generates index windows for rolling-origin
// evaluation: fixed-length windows advancing by a fixed step across a time
// index, each carrying the forecasting horizon to predict from its end.
type SlidingWindowSplitter struct {
	fh           horizon.FH
	windowLength int
	stepLength   int
}

// NewSlidingWindowSplitter validates and builds a splitter.
func NewSlidingWindowSplitter(fh horizon.FH, windowLength, stepLength int) (*SlidingWindowSplitter, error) {
	checked, err := horizon.CheckFH(fh)
	if err != nil {
		return nil, err
	}
	if windowLength < 1 {
		return nil, ErrNonPositiveWindow
	}
	if stepLength < 1 {
		return nil, ErrNonPositiveStep
	}
	return &SlidingWindowSplitter{
		fh:           checked,
		windowLength: windowLength,
		stepLength:   stepLength,
	}, nil
}

// NewDefaultSplitter derives a splitter from the forecasting horizon alone:
// a single window reaching back exactly as far as the furthest offset,
// advancing one point at a time.
func NewDefaultSplitter(fh horizon.FH) (*SlidingWindowSplitter, error) {
	checked, err := horizon.CheckFH(fh)
	if err != nil {
		return nil, err
	}
	return &SlidingWindowSplitter{
		fh:           checked,
		windowLength: checked.Max(),
		stepLength:   1,
	}, nil
}

// FH returns the forecasting horizon carried by the splitter.
func (s *SlidingWindowSplitter) FH() horizon.FH {
	return s.fh
}

// WindowLength returns the length of each emitted window.
func (s *SlidingWindowSplitter) WindowLength() int {
	return s.windowLength
}

// StepLength returns how far consecutive windows advance.
func (s *SlidingWindowSplitter) StepLength() int {
	return s.stepLength
}

// Split lazily yields windows over a time index of length n. Windows are
// produced one at a time on demand and never buffered, so a consumer holding
// only the current window keeps memory bounded by the window length. Stopping
// early is just not requesting the next element.
func (s *SlidingWindowSplitter) Split(n int) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for start := 0; start+s.windowLength <= n; start += s.stepLength {
			if !yield(Window{Start: start, End: start + s.windowLength}) {
				return
			}
		}
	}
}
