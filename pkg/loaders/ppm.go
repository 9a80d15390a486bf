package loaders

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/df07/glimmer/pkg/core"
)

// ErrInvalidPPM is wrapped by every PPM parse failure
var ErrInvalidPPM = errors.New("loaders: invalid PPM file")

// WritePPM writes img as a binary P6 PPM. Each channel is stored as
// clamp(round(c·255), 0, 255), rows top to bottom.
func WritePPM(w io.Writer, img *core.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, 3*img.Width())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.Pixel(x, y)
			row[3*x] = core.QuantizeChannel(c.X)
			row[3*x+1] = core.QuantizeChannel(c.Y)
			row[3*x+2] = core.QuantizeChannel(c.Z)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

// SavePPM writes img to filename as a binary PPM
func SavePPM(filename string, img *core.Image) error {
	return saveFile(filename, func(w io.Writer) error { return WritePPM(w, img) })
}

// ReadPPM parses a binary P6 PPM with maxval 255. Comments from '#' to the
// end of the line may appear between header tokens.
func ReadPPM(r io.Reader) (*core.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readPPMToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, magic)
	}

	var dims [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		token, err := readPPMToken(br)
		if err != nil {
			return nil, err
		}
		dims[i], err = strconv.Atoi(token)
		if err != nil || dims[i] < 0 {
			return nil, fmt.Errorf("%w: invalid %s %q", ErrInvalidPPM, name, token)
		}
	}
	width, height, maxval := dims[0], dims[1], dims[2]
	if maxval != 255 {
		return nil, fmt.Errorf("%w: maxval must be 255, got %d", ErrInvalidPPM, maxval)
	}

	// Exactly one whitespace byte separates the header from the data
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidPPM)
	}

	if width > math.MaxInt/3 || (width > 0 && height > math.MaxInt/(3*width)) {
		return nil, fmt.Errorf("%w: image too large", ErrInvalidPPM)
	}
	rowSize := 3 * width
	size := rowSize * height

	// The buffer grows with the bytes actually read, so a header that
	// overstates the size fails as truncated instead of allocating up front
	var data bytes.Buffer
	if _, err := data.ReadFrom(io.LimitReader(br, int64(size))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPPM, err)
	}
	if data.Len() < size {
		return nil, fmt.Errorf("%w: truncated data at row %d", ErrInvalidPPM, data.Len()/rowSize)
	}

	img := core.NewImage(width, height)
	pixels := data.Bytes()
	for y := 0; y < height; y++ {
		row := pixels[y*rowSize : (y+1)*rowSize]
		for x := 0; x < width; x++ {
			img.Set(x, y, core.NewVec3(
				float64(row[3*x])/255,
				float64(row[3*x+1])/255,
				float64(row[3*x+2])/255,
			))
		}
	}

	return img, nil
}

// LoadPPM reads a binary PPM file
func LoadPPM(filename string) (*core.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	img, err := ReadPPM(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return img, nil
}

// readPPMToken skips whitespace and comments and returns the next header
// token. The whitespace byte that ends the token is left unread.
func readPPMToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(token) > 0 && err == io.EOF {
				return string(token), nil
			}
			return "", fmt.Errorf("%w: truncated header", ErrInvalidPPM)
		}

		switch {
		case b == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated header", ErrInvalidPPM)
			}
		case isPPMSpace(b):
			if len(token) > 0 {
				return string(token), br.UnreadByte()
			}
		default:
			token = append(token, b)
		}
	}
}

func isPPMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
