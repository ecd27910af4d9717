package ctestxml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"
)

// DecodeOutput turns a measurement value into the captured output text.
// Returns nil when the value carries no text.
//
// base64 is applied before decompression. CTest labels zlib streams as
// compression="gzip".
func DecodeOutput(v *Value) (*string, error) {
	if v == nil || v.Text == "" {
		return nil, nil
	}

	raw := []byte(v.Text)
	transformed := false

	if v.Encoding == EncodingBase64 {
		decoded, err := decodeBase64(v.Text)
		if err != nil {
			return nil, fmt.Errorf("decode base64 output: %w", err)
		}
		raw = decoded
		transformed = true
	}

	if v.Compression == CompressionGzip {
		inflated, err := inflate(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress output: %w", err)
		}
		raw = inflated
		transformed = true
	}

	if !transformed {
		return &v.Text, nil
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode utf-8 output: %w", err)
	}
	s := string(text)
	return &s, nil
}

// decodeBase64 ignores whitespace, which CTest may wrap long payloads with.
func decodeBase64(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(compact)
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
