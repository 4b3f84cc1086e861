// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package report

import (
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4"
)

// CompressedSuffix marks outputs written as an lz4 frame
const CompressedSuffix = ".lz4"

// Create opens the destination for a report. An empty path or "-" writes to
// stdout. Paths ending in CompressedSuffix are lz4 compressed. Closing the
// returned writer flushes and closes everything beneath it, never stdout.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return f, nil
	}
	return &compressed{Writer: lz4.NewWriter(f), file: f}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type compressed struct {
	*lz4.Writer
	file *os.File
}

func (c *compressed) Close() error {
	if err := c.Writer.Close(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}
