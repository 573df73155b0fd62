// Package amath is a small numeric library for descriptive statistics,
// correlation, discrete Fourier transforms and probability densities over
// in-memory samples.
//
// # Packages
//
//   - stats: mean, median, min/max/range, standard deviation and variance,
//     normalization, z-scores, covariance, Pearson and Kendall correlation
//   - fourier: forward and inverse DFT split across worker goroutines
//   - distribution: normal and Poisson densities over whole samples
//   - parallel: the partitioning and worker scheme shared by the parallel kernels
//   - sample: reading and writing numbers, complex values and CSV column pairs
//
// # Quick Start
//
// Summary statistics:
//
//	mean, err := stats.Mean(values)
//	sd, err := stats.StdDev(values, true) // population
//	tau, err := stats.Kendall(x, y)
//
// Transform in place with four workers:
//
//	if err := fourier.Forward(signal, 4); err != nil {
//		log.Fatal(err)
//	}
//
// Densities:
//
//	dens, err := distribution.Normal(values, runtime.NumCPU())
//	probs, err := distribution.Poisson(counts, 2.5, runtime.NumCPU())
//
// # Errors
//
// Invalid input is reported through returned errors rather than sentinel
// values; compare with errors.Is against the Err* variables of each package.
// Kernels never modify their input on failure.
//
// # Command line
//
// The amath command in cmd/amath exposes every kernel over stdin/stdout.
package amath
