package histogram

import "math"

// EdgeEpsilon is the absolute tolerance used when comparing bin edges of
// histograms being combined.
const EdgeEpsilon = 1e-9

// DefaultIntegral is the normalization target used by Build when callers
// have no specific yield in mind: unit integral, i.e. a probability-like
// shape.
const DefaultIntegral = 1.0

// Histogram is a named, uniform-width binned count container. The binning
// scheme is immutable after construction; bin contents change through Fill,
// Scale, SetBinContent and the hole fillers. Contents are non-negative after
// filling but may become negative after background subtraction via Sum.
//
// Histogram is not safe for concurrent mutation: each logical writer owns
// its histogram and merges afterwards with Sum.
type Histogram struct {
	name    string
	binning Binning
	width   float64
	bins    []float64
}

// New allocates an empty histogram with the given name and binning scheme.
//
// Errors:
//   - ErrBadBinCount — b.NBins < 1.
//   - ErrBadRange    — b.High < b.Low.
func New(name string, b Binning) (*Histogram, error) {
	if b.NBins < 1 {
		return nil, ErrBadBinCount
	}
	if b.High < b.Low {
		return nil, ErrBadRange
	}

	return &Histogram{
		name:    name,
		binning: b,
		width:   (b.High - b.Low) / float64(b.NBins),
		bins:    make([]float64, b.NBins),
	}, nil
}

// Build allocates a histogram, fills it with every sample and normalizes the
// result to the target integral. A zero raw integral skips the rescale
// (factor 1) rather than dividing by zero.
//
// Errors:
//   - ErrNoSamples — samples is empty.
//   - ErrBadBinCount, ErrBadRange — invalid binning scheme.
func Build(name string, samples []float64, b Binning, integral float64) (*Histogram, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	h, err := New(name, b)
	if err != nil {
		return nil, err
	}
	h.FillN(samples)
	h.Normalize(integral)

	return h, nil
}

// Name returns the histogram's name.
func (h *Histogram) Name() string { return h.name }

// Binning returns the (immutable) binning scheme.
func (h *Histogram) Binning() Binning { return h.binning }

// NBins returns the number of bins.
func (h *Histogram) NBins() int { return h.binning.NBins }

// Low returns the lower edge of the first bin.
func (h *Histogram) Low() float64 { return h.binning.Low }

// High returns the upper edge of the last bin.
func (h *Histogram) High() float64 { return h.binning.High }

// BinWidth returns the uniform bin width (0 for a degenerate domain).
func (h *Histogram) BinWidth() float64 { return h.width }

// BinCenter returns the center of bin i (1-based).
//
// Errors:
//   - ErrBinIndex — i outside [1, NBins].
func (h *Histogram) BinCenter(i int) (float64, error) {
	if i < 1 || i > h.binning.NBins {
		return 0, ErrBinIndex
	}

	return h.binning.Low + (float64(i)-0.5)*h.width, nil
}

// BinContent returns the content of bin i (1-based).
//
// Errors:
//   - ErrBinIndex — i outside [1, NBins].
func (h *Histogram) BinContent(i int) (float64, error) {
	if i < 1 || i > h.binning.NBins {
		return 0, ErrBinIndex
	}

	return h.bins[i-1], nil
}

// SetBinContent overwrites the content of bin i (1-based).
//
// Errors:
//   - ErrBinIndex — i outside [1, NBins].
func (h *Histogram) SetBinContent(i int, v float64) error {
	if i < 1 || i > h.binning.NBins {
		return ErrBinIndex
	}
	h.bins[i-1] = v

	return nil
}

// Fill increments the bin containing x by one count. Values below the low
// edge are clipped into the first bin, values at or above the high edge into
// the last; a width-0 histogram collects everything in bin 1. NaN is skipped.
func (h *Histogram) Fill(x float64) {
	if math.IsNaN(x) {
		return
	}

	idx := 0
	if h.width > 0 {
		idx = int(math.Floor((x - h.binning.Low) / h.width))
		if idx < 0 {
			idx = 0
		}
		if idx >= h.binning.NBins {
			idx = h.binning.NBins - 1
		}
	}
	h.bins[idx]++
}

// FillN fills every sample in order.
func (h *Histogram) FillN(samples []float64) {
	for _, x := range samples {
		h.Fill(x)
	}
}

// Integral returns the sum of all bin contents.
func (h *Histogram) Integral() float64 {
	total := 0.0
	for _, v := range h.bins {
		total += v
	}

	return total
}

// Scale multiplies every bin content by f.
func (h *Histogram) Scale(f float64) {
	for i := range h.bins {
		h.bins[i] *= f
	}
}

// Normalize rescales the histogram so its integral equals target, returning
// the factor applied. A zero current integral leaves the contents untouched
// and returns 1.
func (h *Histogram) Normalize(target float64) float64 {
	current := h.Integral()
	if current == 0 {
		return 1
	}

	f := target / current
	h.Scale(f)

	return f
}

// Contents returns a copy of the bin contents, first bin first. Useful for
// handing per-bin counts to the significance estimator.
func (h *Histogram) Contents() []float64 {
	out := make([]float64, len(h.bins))
	copy(out, h.bins)

	return out
}

// Clone returns a deep copy sharing nothing with h.
func (h *Histogram) Clone() *Histogram {
	c := &Histogram{
		name:    h.name,
		binning: h.binning,
		width:   h.width,
		bins:    make([]float64, len(h.bins)),
	}
	copy(c.bins, h.bins)

	return c
}
