package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data via radix-2
// Cooley-Tukey. The length must be a power of two; use Pad first for
// arbitrary traces.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// Pad zero-extends data to the next power of two.
func Pad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	if n == len(data) {
		return data
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the transform. The input is padded as needed.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(Pad(data))
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantFrequency finds the strongest non-DC component of a uniformly
// sampled trace, in Hz.
func DominantFrequency(data []float64, dt float64) float64 {
	if len(data) < 2 || dt <= 0 {
		return 0
	}

	padded := Pad(data)
	ps := PowerSpectrum(padded)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	return float64(maxIdx) / (float64(len(padded)) * dt)
}
