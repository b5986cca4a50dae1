// Copyright (c) 2023, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides a shared Decoder/Encoder abstraction that
// format-specific packages (yamlx, tomlx) wrap, so that callers can
// Open/Save/Read/Write an object through a single consistent API
// regardless of the underlying encoding.
package iox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Decoder is the common interface implemented by format-specific
// decoders (e.g. [yaml.Decoder], [toml.Decoder]).
type Decoder interface {
	Decode(v any) error
}

// Encoder is the common interface implemented by format-specific
// encoders (e.g. [yaml.Encoder], [toml.Encoder]).
type Encoder interface {
	Encode(v any) error
}

// NewDecoderFunc adapts a typed decoder constructor (one that returns
// a concrete *T) into a func(io.Reader) Decoder, since Go does not
// allow a func(io.Reader) *yaml.Decoder to be used directly where a
// func(io.Reader) Decoder is expected.
func NewDecoderFunc[T Decoder](f func(io.Reader) T) func(io.Reader) Decoder {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc adapts a typed encoder constructor in the same way
// NewDecoderFunc does for decoders.
func NewEncoderFunc[T Encoder](f func(io.Writer) T) func(io.Writer) Encoder {
	return func(w io.Writer) Encoder { return f(w) }
}

// Open reads the given object from the given filename,
// using the given decoder constructor.
func Open(v any, filename string, newDecoder func(io.Reader) Decoder) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return newDecoder(f).Decode(v)
}

// OpenFiles reads the given object from the first filename that can
// be opened, using the given decoder constructor.
func OpenFiles(v any, filenames []string, newDecoder func(io.Reader) Decoder) error {
	var errs []error
	for _, fn := range filenames {
		err := Open(v, fn, newDecoder)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("iox.OpenFiles: no file could be opened: %w", errors.Join(errs...))
}

// OpenFS is like Open but reads from the given [fs.FS].
func OpenFS(v any, fsys fs.FS, filename string, newDecoder func(io.Reader) Decoder) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return newDecoder(f).Decode(v)
}

// OpenFilesFS is like OpenFiles but reads from the given [fs.FS].
func OpenFilesFS(v any, fsys fs.FS, filenames []string, newDecoder func(io.Reader) Decoder) error {
	var errs []error
	for _, fn := range filenames {
		err := OpenFS(v, fsys, fn, newDecoder)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("iox.OpenFilesFS: no file could be opened: %w", errors.Join(errs...))
}

// Read reads the given object from the given reader,
// using the given decoder constructor.
func Read(v any, reader io.Reader, newDecoder func(io.Reader) Decoder) error {
	return newDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes,
// using the given decoder constructor.
func ReadBytes(v any, data []byte, newDecoder func(io.Reader) Decoder) error {
	return Read(v, bytes.NewReader(data), newDecoder)
}

// Save writes the given object to the given filename,
// using the given encoder constructor.
func Save(v any, filename string, newEncoder func(io.Writer) Encoder) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return newEncoder(f).Encode(v)
}

// Write writes the given object using the given encoder constructor.
func Write(v any, writer io.Writer, newEncoder func(io.Writer) Encoder) error {
	return newEncoder(writer).Encode(v)
}

// WriteBytes writes the given object, returning the encoded bytes,
// using the given encoder constructor.
func WriteBytes(v any, newEncoder func(io.Writer) Encoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := newEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
