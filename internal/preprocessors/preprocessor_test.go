// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

	p := NewPlaintextPreprocessor()
	require.True(t, p.CanProcess(path))

	content, err := p.Process(path)
	require.NoError(t, err)
	assert.True(t, content.Success)
	assert.Equal(t, "line one\nline two\n", content.Text)
	assert.Equal(t, "plaintext", content.ProcessorType)
	assert.Equal(t, 4, content.WordCount)
	assert.Equal(t, 3, content.LineCount)
}

func TestPlaintextRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.txt")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02, 'a'}, 0644))

	p := NewPlaintextPreprocessor()
	content, err := p.Process(path)
	require.Error(t, err)
	assert.False(t, content.Success)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestPlaintextRejectsUnknownExtension(t *testing.T) {
	p := NewPlaintextPreprocessor()
	assert.False(t, p.CanProcess("archive.zip"))
	assert.False(t, p.CanProcess("image.jpg"))
	assert.True(t, p.CanProcess("README.MD"))
}

func TestManagerRouting(t *testing.T) {
	m := NewManager()
	m.Register(NewPlaintextPreprocessor())
	m.Register(NewPDFPreprocessor())
	m.Register(NewExifPreprocessor())

	assert.Equal(t, "plaintext", m.GetPreprocessor("a.txt").GetName())
	assert.Equal(t, "pdf", m.GetPreprocessor("doc.PDF").GetName())
	assert.Equal(t, "exif", m.GetPreprocessor("photo.jpeg").GetName())
	assert.Nil(t, m.GetPreprocessor("binary.exe"))
}

func TestManagerProcessFileNoPreprocessor(t *testing.T) {
	m := NewManager()
	content, err := m.ProcessFile("unknown.bin")
	require.NoError(t, err)
	assert.False(t, content.Success)
	assert.Equal(t, "none", content.ProcessorType)
}

func TestFormatDMS(t *testing.T) {
	cases := []struct {
		value    float64
		positive byte
		negative byte
		want     string
	}{
		{37.5664, 'N', 'S', "37°33′59.0″N"},
		{-33.8688, 'N', 'S', "33°52′07.7″S"},
		{126.978, 'E', 'W', "126°58′40.8″E"},
		{-0.1276, 'E', 'W', "0°07′39.4″W"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDMS(tc.value, tc.positive, tc.negative))
	}
}

func TestFormatDMSCarriesRoundedSeconds(t *testing.T) {
	// 10 + 59/60 + 59.99/3600 rounds past 60 seconds.
	value := 10.0 + 59.0/60 + 59.99/3600
	assert.Equal(t, "11°00′00.0″N", formatDMS(value, 'N', 'S'))
}
