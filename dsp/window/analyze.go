package window

// Analysis holds amplitude properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
}

// Analyze computes the coherent gain and equivalent noise bandwidth of
// coeffs.
func Analyze(coeffs []float32) (Analysis, error) {
	if len(coeffs) == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		v := float64(c)
		sum += v
		sumSq += v * v
	}

	if sum == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	n := float64(len(coeffs))
	return Analysis{
		CoherentGain: sum / n,
		ENBW:         n * sumSq / (sum * sum),
	}, nil
}
