package sample

import (
	"bufio"
	"io"
	"strconv"
)

// WriteFloats writes one value per line with the given number of decimal
// places, as printf("%.*f\n") would.
func WriteFloats(w io.Writer, values []float64, precision int) error {
	writer := bufio.NewWriter(w)

	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'f', precision, 64)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// WriteFloat writes a single value followed by a newline.
func WriteFloat(w io.Writer, v float64, precision int) error {
	return WriteFloats(w, []float64{v}, precision)
}

// WriteComplex writes the real and imaginary parts of each value on one line,
// separated by a space. ReadComplex parses this format back.
func WriteComplex(w io.Writer, values []complex128, precision int) error {
	writer := bufio.NewWriter(w)

	buf := make([]byte, 0, 64)
	for _, c := range values {
		buf = strconv.AppendFloat(buf[:0], real(c), 'f', precision, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, imag(c), 'f', precision, 64)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return err
		}
	}

	return writer.Flush()
}
