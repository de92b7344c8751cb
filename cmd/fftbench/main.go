// Command fftbench compares fftx transform throughput against two
// independent Go FFT implementations across a list of sizes.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/fftx"
)

type benchResult struct {
	impl    string
	nsPerOp float64
}

func main() {
	sizeList := "256,1024,4096,16384"
	iters := 200
	warmup := 10
	seed := 1
	mode := "real"

	flaggy.SetName("fftbench")
	flaggy.SetDescription("benchmark fftx forward transforms against gonum and go-dsp")
	flaggy.String(&sizeList, "s", "sizes", "comma-separated transform sizes")
	flaggy.Int(&iters, "i", "iters", "benchmark iterations per size")
	flaggy.Int(&warmup, "w", "warmup", "warmup iterations per size")
	flaggy.Int(&seed, "r", "seed", "rng seed")
	flaggy.String(&mode, "m", "mode", "transform mode: real or complex")
	flaggy.Parse()

	sizes := parseSizes(sizeList)
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no sizes specified")
		os.Exit(1)
	}

	if mode != "real" && mode != "complex" {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", mode)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(int64(seed)))

	fmt.Printf("simd=%s iters=%d warmup=%d mode=%s\n", fftx.SIMDArch(), iters, warmup, mode)
	fmt.Printf("%8s  %10s  %12s\n", "size", "impl", "ns/op")

	for _, n := range sizes {
		var results []benchResult

		if mode == "real" {
			results = benchReal(rng, n, iters, warmup)
		} else {
			results = benchComplex(rng, n, iters, warmup)
		}

		sort.Slice(results, func(i, j int) bool {
			return results[i].nsPerOp < results[j].nsPerOp
		})

		for _, res := range results {
			fmt.Printf("%8d  %10s  %12.1f\n", n, res.impl, res.nsPerOp)
		}
	}
}

func benchReal(rng *rand.Rand, n, iters, warmup int) []benchResult {
	input := make([]float64, n)
	for i := range input {
		input[i] = rng.Float64()*2 - 1
	}

	fft, err := fftx.NewReal64(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "size %d: %v\n", n, err)
		os.Exit(1)
	}

	spectrum := fft.SpectrumVector()
	internal := fft.InternalLayoutVector()

	ref := fourier.NewFFT(n)
	refDst := make([]complex128, n/2+1)

	return []benchResult{
		{"fftx", measure(iters, warmup, func() { fft.Forward(input, spectrum) })},
		{"fftx-int", measure(iters, warmup, func() { fft.ForwardToInternalLayout(input, internal) })},
		{"gonum", measure(iters, warmup, func() { ref.Coefficients(refDst, input) })},
		{"go-dsp", measure(iters, warmup, func() { godsp.FFTReal(input) })},
	}
}

func benchComplex(rng *rand.Rand, n, iters, warmup int) []benchResult {
	input := make([]complex128, n)
	for i := range input {
		input[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	fft, err := fftx.NewComplex128(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "size %d: %v\n", n, err)
		os.Exit(1)
	}

	spectrum := fft.SpectrumVector()
	internal := fft.InternalLayoutVector()

	ref := fourier.NewCmplxFFT(n)
	refDst := make([]complex128, n)

	return []benchResult{
		{"fftx", measure(iters, warmup, func() { fft.Forward(input, spectrum) })},
		{"fftx-int", measure(iters, warmup, func() { fft.ForwardToInternalLayout(input, internal) })},
		{"gonum", measure(iters, warmup, func() { ref.Coefficients(refDst, input) })},
		{"go-dsp", measure(iters, warmup, func() { godsp.FFT(input) })},
	}
}

func measure(iters, warmup int, op func()) float64 {
	for range warmup {
		op()
	}

	start := time.Now()
	for range iters {
		op()
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 2 {
			fmt.Fprintf(os.Stderr, "skipping invalid size %q\n", part)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
