package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/transform"
)

const (
	InitialCapacity = 32
	GrowthIncrement = 16
)

// ErrBufferLimit is returned when a line does not fit in MaxSize bytes.
var ErrBufferLimit = errors.New("line buffer limit exceeded")

type Reader struct {
	src     *bufio.Reader
	MaxSize int
	grows   int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r)}
}

// NewDecodingReader reads r as sourceEncoding and hands out UTF-8 lines.
// Buffer growth and MaxSize apply to the decoded bytes.
func NewDecodingReader(r io.Reader, sourceEncoding string) (*Reader, error) {
	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}
	return NewReader(transform.NewReader(r, decoder)), nil
}

// ReadLine reads one line from r with an unlimited buffer.
func ReadLine(r io.Reader) ([]byte, error) {
	return NewReader(r).ReadLine()
}

// Grows reports how many times the line buffer was reallocated.
func (r *Reader) Grows() int {
	return r.grows
}

// ReadLine accumulates bytes until a newline or the end of the stream. The
// newline is not part of the result. Empty input returns an empty buffer.
func (r *Reader) ReadLine() ([]byte, error) {
	buffer := make([]byte, 0, InitialCapacity)
	r.grows = 0

	for {
		ch, err := r.src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		if ch == '\n' {
			break
		}

		if r.MaxSize > 0 && len(buffer) >= r.MaxSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrBufferLimit, r.MaxSize)
		}

		if len(buffer) == cap(buffer) {
			buffer = r.grow(buffer)
		}
		buffer = append(buffer, ch)
	}

	return buffer, nil
}

func (r *Reader) grow(buffer []byte) []byte {
	size := cap(buffer) + GrowthIncrement
	if r.MaxSize > 0 && size > r.MaxSize {
		size = r.MaxSize
	}

	grown := make([]byte, len(buffer), size)
	copy(grown, buffer)
	r.grows++
	return grown
}
