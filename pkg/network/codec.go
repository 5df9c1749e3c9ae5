package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Decode baca document yaml. input yang diawali magic zstd didekompres dulu.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("network: read document: %w", err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		var out bytes.Buffer
		if err := decompress(data, &out); err != nil {
			return nil, fmt.Errorf("network: decompress document: %w", err)
		}
		data = out.Bytes()
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode tulis document sebagai yaml, dikompres zstd kalau compress true.
func Encode(doc *Document, w io.Writer, compress bool) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if !compress {
		_, err := w.Write(buf.Bytes())
		return err
	}
	return compressTo(buf.Bytes(), w)
}

func SaveFile(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(doc, f, strings.HasSuffix(path, ".zst")); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func compressTo(inData []byte, out io.Writer) error {
	encoder, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	if _, err = io.Copy(encoder, bytes.NewReader(inData)); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

func decompress(inData []byte, out io.Writer) error {
	d, err := zstd.NewReader(bytes.NewReader(inData))
	if err != nil {
		return err
	}
	defer d.Close()

	_, err = io.Copy(out, d)
	return err
}
