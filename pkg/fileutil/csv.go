package fileutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV data from a file or an
// in-memory buffer
type CSVReader struct {
	open func() (io.ReadCloser, error)
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		open: func() (io.ReadCloser, error) {
			return os.Open(fp)
		},
	}
}

// NewCSVBufferReader returns a CSVReader instance backed by data already held
// in memory, e.g. the body of an uploaded file
func NewCSVBufferReader(data []byte) *CSVReader {
	return &CSVReader{
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// newRowReader configures a csv.Reader for loosely formatted exports: records
// may vary in length and leading whitespace inside cells is dropped
func newRowReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// ReadHeader reads ONLY the header row of the CSV data
func (r *CSVReader) ReadHeader() ([]string, error) {
	f, err := r.open()
	if err != nil {
		return nil, fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	header, err := newRowReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow reads and processes CSV data row by row, allows for streaming large file(s)
func (r *CSVReader) ReadAndProcessByRow(processorFn func([]string) error) error {
	f, err := r.open()
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	reader := newRowReader(f)

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	// read and process row by row
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	return nil
}
