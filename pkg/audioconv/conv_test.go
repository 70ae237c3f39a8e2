package audioconv

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavBytes builds a minimal PCM16 RIFF/WAVE payload.
func wavBytes(t *testing.T, samples []int16, channels, rate int) []byte {
	t.Helper()

	var data bytes.Buffer
	require.NoError(t, binary.Write(&data, binary.LittleEndian, samples))

	var buf bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }

	buf.WriteString("RIFF")
	w(uint32(36 + data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(rate))
	w(uint32(rate * channels * 2))
	w(uint16(channels * 2))
	w(uint16(16))

	buf.WriteString("data")
	w(uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func sine(n int, freq float64, rate int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(20000 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return out
}

func TestToPCM16k_WavMono16k(t *testing.T) {
	in := sine(1600, 440, TargetRate) // 100ms
	got, err := ToPCM16k(wavBytes(t, in, 1, TargetRate))
	require.NoError(t, err)

	assert.Len(t, got, len(in))
	for _, s := range got {
		assert.LessOrEqual(t, float64(s), 1.0)
		assert.GreaterOrEqual(t, float64(s), -1.0)
	}
}

func TestToPCM16k_ResamplesAndDownmixes(t *testing.T) {
	// 44.1 kHz stereo in, 16 kHz mono out.
	const frames = 4410 // 100ms
	stereo := make([]int16, frames*2)
	mono := sine(frames, 440, 44100)
	for i, s := range mono {
		stereo[2*i] = s
		stereo[2*i+1] = s
	}

	got, err := ToPCM16k(wavBytes(t, stereo, 2, 44100))
	require.NoError(t, err)

	want := int(float64(frames) * float64(TargetRate) / 44100.0)
	assert.InDelta(t, want, len(got), 2)
}

func TestToPCM16k_RejectsGarbage(t *testing.T) {
	_, err := ToPCM16k([]byte("definitely not audio"))
	assert.ErrorContains(t, err, "unsupported audio container")

	_, err = ToPCM16k([]byte{0x01})
	assert.ErrorContains(t, err, "too short")
}

func TestResample_Identity(t *testing.T) {
	in := []float32{0.1, 0.2, 0.3}
	assert.Equal(t, in, resample(in, TargetRate, TargetRate))
}

func TestDownmix_Averages(t *testing.T) {
	got := downmix([]float32{1, 0, 0.5, 0.5}, 2)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, float64(got[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(got[1]), 1e-6)
}
