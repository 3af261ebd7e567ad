package movedb

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// RecordSize is the number of bytes of one record on disk.
const RecordSize = 3

const recordLimit = 1 << (RecordSize * 8)

var ErrRecordTooWide = errors.New("record does not fit in 3 bytes")

// WriteRecords writes each record as 3 big-endian bytes, without header or delimiter.
func WriteRecords(w io.Writer, records []uint32) error {
	bw := bufio.NewWriter(w)

	var buf [RecordSize]byte
	for i, record := range records {
		if record >= recordLimit {
			return fmt.Errorf("%w: record %d is %#x", ErrRecordTooWide, i, record)
		}

		buf[0] = byte(record >> 16)
		buf[1] = byte(record >> 8)
		buf[2] = byte(record)

		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	return nil
}

// ReadRecords reads 3-byte records until end of input. A trailing partial record fails with
// ErrMalformedDatabase.
func ReadRecords(r io.Reader) ([]uint32, error) {
	br := bufio.NewReader(r)

	var (
		records []uint32
		buf     [RecordSize]byte
	)
	for {
		n, err := io.ReadFull(br, buf[:])
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d trailing bytes after record %d", apperror.ErrMalformedDatabase, n, len(records))
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(records), err)
		}

		records = append(records, uint32(buf[0])<<16|uint32(buf[1])<<8|uint32(buf[2]))
	}
}
