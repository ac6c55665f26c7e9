package canvas

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"strconv"
)

// ppmLineLimit is the longest line a PPM writer may emit
const ppmLineLimit = 70

// WritePPM encodes the canvas as a plain-text (P3) PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	line := make([]byte, 0, ppmLineLimit)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, v := range [3]float64{p.R, p.G, p.B} {
				token := strconv.Itoa(int(scale255(v)))
				if len(line) > 0 && len(line)+1+len(token) > ppmLineLimit {
					line = append(line, '\n')
					if _, err := bw.Write(line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
		line = line[:0]
	}
	return bw.Flush()
}

// WritePNG encodes the canvas as a PNG image
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}
