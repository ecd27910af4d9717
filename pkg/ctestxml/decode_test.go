package ctestxml

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOutput_NoText(t *testing.T) {
	out, err := DecodeOutput(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = DecodeOutput(&Value{Encoding: EncodingBase64, Compression: CompressionGzip})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDecodeOutput_Plain(t *testing.T) {
	out, err := DecodeOutput(&Value{Text: "All good"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "All good", *out)
}

func TestDecodeOutput_Base64Only(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString([]byte("héllo\n"))
	out, err := DecodeOutput(&Value{Encoding: EncodingBase64, Text: enc})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "héllo\n", *out)
}

func TestDecodeOutput_Base64WrappedLines(t *testing.T) {
	payload := "a fairly long captured output that wraps"
	enc := base64.StdEncoding.EncodeToString([]byte(payload))
	wrapped := "\n  " + enc[:10] + "\n  " + enc[10:] + "\n"

	out, err := DecodeOutput(&Value{Encoding: EncodingBase64, Text: wrapped})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, payload, *out)
}

func TestDecodeOutput_Base64Zlib(t *testing.T) {
	out, err := DecodeOutput(&Value{
		Encoding:    EncodingBase64,
		Compression: CompressionGzip,
		Text:        zlibBase64(t, "compiled\nWarning: deprecated\n"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "compiled\nWarning: deprecated\n", *out)
}

func TestDecodeOutput_CompressedWithoutEncoding(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte("raw"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, err := DecodeOutput(&Value{Compression: CompressionGzip, Text: buf.String()})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "raw", *out)
}

func TestDecodeOutput_InvalidUTF8IsReplaced(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString([]byte{'o', 'k', 0xff})
	out, err := DecodeOutput(&Value{Encoding: EncodingBase64, Text: enc})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ok�", *out)
}

func TestDecodeOutput_Errors(t *testing.T) {
	_, err := DecodeOutput(&Value{Encoding: EncodingBase64, Text: "!!!not base64"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64 output")

	notZlib := base64.StdEncoding.EncodeToString([]byte("plain text"))
	_, err = DecodeOutput(&Value{Encoding: EncodingBase64, Compression: CompressionGzip, Text: notZlib})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decompress output")
}
