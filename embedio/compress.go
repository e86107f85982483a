// SPDX-License-Identifier: MIT

// Package embedio - file opening with transparent compression.
//
// The codec is chosen by extension: ".gz" uses gzip, ".zst" uses zstd,
// anything else is read or written as plain text.

package embedio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	extGzip = ".gz"
	extZstd = ".zst"
)

// multiCloser closes every closer in order and joins their errors.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func codecOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Open opens path for reading, decompressing .gz and .zst on the fly.
// Closing the result closes both the decoder and the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch codecOf(path) {
	case extGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, wrapFile(path, err)
		}
		return &multiCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case extZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, wrapFile(path, err)
		}
		return &multiCloser{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			f.Close,
		}}, nil
	default:
		return f, nil
	}
}

// Create truncates or creates path for writing, compressing by extension.
// Close flushes the encoder before closing the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch codecOf(path) {
	case extGzip:
		zw := gzip.NewWriter(f)
		return &multiCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	case extZstd:
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, wrapFile(path, err)
		}
		return &multiCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	default:
		return f, nil
	}
}
