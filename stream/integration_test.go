package stream_test

import (
	"context"
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/momentics/hioload-stream/control"
	"github.com/momentics/hioload-stream/engine"
	"github.com/momentics/hioload-stream/fake"
	"github.com/momentics/hioload-stream/stream"
)

// Streams a phase-continuous sine through the double-buffer path and
// checks the consumed output both sample-exactly and spectrally: the
// buffers must come out gap-free and in order, so the FFT of the
// concatenated device capture shows a single clean peak at the
// generated bin.
func TestSineStreamSpectrum(t *testing.T) {
	const (
		sampleRate = 48000
		samples    = 256
		chunks     = 9
		fftSize    = 2048 // 8 consumed chunks x 256 samples
		peakBin    = 64
		freq       = float64(peakBin) * sampleRate / fftSize
	)

	cfg := control.Config{
		SampleRate: sampleRate,
		Samples:    samples,
		Channels:   1,
		Buffers:    4,
	}
	dev := fake.NewDevice[float32]()
	w, err := stream.NewWriter[float32](dev, &fake.Pacer{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	dev.OnCompletion(w.OnComplete)

	ctx := context.Background()
	writeChunk := func(chunk int) {
		b, err := w.Acquire(ctx)
		if err != nil {
			t.Fatalf("chunk %d: %v", chunk, err)
		}
		data := b.Data()
		for i := range data {
			n := chunk*samples + i
			data[i] = float32(math.Sin(2 * math.Pi * freq * float64(n) / sampleRate))
		}
		if err := w.Write(b); err != nil {
			t.Fatalf("chunk %d: %v", chunk, err)
		}
	}

	for chunk := 0; chunk < 3; chunk++ {
		writeChunk(chunk)
	}
	if w.State() != engine.Running {
		t.Fatal("engine should be running after three chunks")
	}
	for chunk := 3; chunk < chunks; chunk++ {
		dev.Complete()
		writeChunk(chunk)
	}
	for w.State() == engine.Running {
		dev.Complete()
	}
	if w.State() != engine.Starved {
		t.Fatalf("state = %v, want starved after draining", w.State())
	}

	// The buffer bound at the moment of starvation is abandoned, so
	// chunks-1 buffers were consumed, in submission order.
	var flat []float32
	for _, c := range dev.Captured {
		flat = append(flat, c...)
	}
	if len(flat) != fftSize {
		t.Fatalf("consumed %d samples, want %d", len(flat), fftSize)
	}
	for i, v := range flat {
		want := float32(math.Sin(2 * math.Pi * freq * float64(i) / sampleRate))
		if v != want {
			t.Fatalf("sample %d: got %v, want %v: stream not gap-free", i, v, want)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]complex128, fftSize)
	for i, v := range flat {
		in[i] = complex(float64(v), 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		t.Fatal(err)
	}

	re := make([]float64, fftSize/2)
	im := make([]float64, fftSize/2)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, fftSize/2)
	vecmath.Magnitude(mag, re, im)

	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	if peak != peakBin {
		t.Errorf("spectral peak at bin %d, want %d", peak, peakBin)
	}
	// A clean tone: the peak dominates everything outside its bin.
	for i := 1; i < len(mag); i++ {
		if i == peakBin {
			continue
		}
		if mag[i] > mag[peakBin]/100 {
			t.Errorf("bin %d magnitude %.2f too high next to peak %.2f", i, mag[i], mag[peakBin])
		}
	}
}
