package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSplitBlock(t *testing.T) {
	tests := map[string]struct {
		block     []byte
		channels  int
		want      [][]byte
		expectErr bool
	}{
		"mono": {
			block:    []byte{1, 2, 3, 4},
			channels: 1,
			want:     [][]byte{{1, 2, 3, 4}},
		},
		"stereo": {
			block:    []byte{1, 2, 3, 4, 5, 6},
			channels: 2,
			want:     [][]byte{{1, 2, 3}, {4, 5, 6}},
		},
		"lost_frame_block": {
			block:    nil,
			channels: 2,
			want:     [][]byte{nil, nil},
		},
		"uneven": {
			block:     []byte{1, 2, 3},
			channels:  2,
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := splitBlock(tt.block, tt.channels)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntsToInt16(t *testing.T) {
	assert.Equal(t, []int16{0, 1000, -1000, 32767},
		intsToInt16([]int{0, 1000, -1000, 32767}, 16))
	assert.Equal(t, []int16{0, 1000, -32768},
		intsToInt16([]int{0, 1000 << 8, -32768 << 8}, 24), "24-bit samples shift down")
	assert.Empty(t, intsToInt16(nil, 16))
}

func TestWAVRoundTrip(t *testing.T) {
	pcm := make([]int16, 960)
	for i := range pcm {
		pcm[i] = int16(i%200 - 100)
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, writeWAV(path, pcm, 48000, 2))

	got, sampleRate, channels, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 48000, sampleRate)
	assert.Equal(t, 2, channels)
	assert.Equal(t, pcm, got)
}

func TestEncodeCmd_BadBitrate(t *testing.T) {
	pcm := make([]int16, 480)
	in := filepath.Join(t.TempDir(), "in.wav")
	require.NoError(t, writeWAV(in, pcm, 48000, 1))

	cmd := &encodeCmd{
		Input:   in,
		Output:  filepath.Join(t.TempDir(), "out.lc3"),
		FrameUs: 3000, // not a valid frame duration
		Bitrate: 80000,
	}
	assert.Error(t, cmd.Run(zaptest.NewLogger(t)))
}

func TestEncodeDecodeCmd_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	wavIn := filepath.Join(dir, "in.wav")
	stream := filepath.Join(dir, "out.lc3")
	wavOut := filepath.Join(dir, "out.wav")

	// One second of a quiet ramp, stereo.
	pcm := make([]int16, 48000*2)
	for i := range pcm {
		pcm[i] = int16(i % 512)
	}
	require.NoError(t, writeWAV(wavIn, pcm, 48000, 2))

	logger := zaptest.NewLogger(t)
	enc := &encodeCmd{Input: wavIn, Output: stream, FrameUs: 10000, Bitrate: 80000}
	require.NoError(t, enc.Run(logger))

	dec := &decodeCmd{Input: stream, Output: wavOut}
	require.NoError(t, dec.Run(logger))

	got, sampleRate, channels, err := readWAV(wavOut)
	require.NoError(t, err)
	assert.Equal(t, 48000, sampleRate)
	assert.Equal(t, 2, channels)
	assert.Len(t, got, len(pcm), "padding trimmed back to the source length")
}
