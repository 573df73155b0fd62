// Package sample reads samples from text and writes results back out.
package sample

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading decimal number of a line, the
// part C's atof would consume.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseFloat converts a line of text to a number the way atof does: leading
// whitespace is skipped, the longest numeric prefix is parsed, and a line
// with no numeric prefix yields 0.
func ParseFloat(line string) float64 {
	line = strings.TrimSpace(line)
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return v
	}

	prefix := numericPrefix.FindString(line)
	if prefix == "" {
		return 0
	}
	// On overflow ParseFloat still returns ±Inf, matching atof.
	v, _ := strconv.ParseFloat(prefix, 64)
	return v
}

// ReadFloats reads one value per line from r. Every line yields exactly one
// value; lines that are not numbers become 0.
func ReadFloats(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, ParseFloat(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	return values, nil
}

// ParseComplex converts a line to a complex number. Accepted forms are Go's
// complex literal ("(1+2i)", "1+2i", "3i"), and a real and imaginary part
// separated by whitespace or a comma ("1 2", "1,2"). A single number is a
// purely real value. Anything else yields 0.
func ParseComplex(line string) complex128 {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(fields) == 2 {
		return complex(ParseFloat(fields[0]), ParseFloat(fields[1]))
	}

	if c, err := strconv.ParseComplex(line, 128); err == nil {
		return c
	}
	return complex(ParseFloat(line), 0)
}

// ReadComplex reads one complex value per line from r.
func ReadComplex(r io.Reader) ([]complex128, error) {
	var values []complex128

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, ParseComplex(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read complex values: %w", err)
	}

	return values, nil
}

// Counts truncates each value toward zero to an integer count.
// NaN and infinite values become 0.
func Counts(values []float64) []int {
	counts := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		counts[i] = int(v)
	}
	return counts
}

// Open returns a reader for path, or stdin when path is empty or "-".
// The returned close function must be called when done; it never closes stdin.
func Open(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return file, file.Close, nil
}
