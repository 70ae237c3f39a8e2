// Package audioconv decodes recorded or uploaded audio payloads into the
// mono 16 kHz float32 samples the speech recognizer consumes.
package audioconv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	popus "github.com/pekim/opus"
)

// TargetRate is the sample rate the recognizer expects.
const TargetRate = 16000

// maxSamples caps decoded audio at ~5 minutes so a bad upload cannot
// balloon memory.
const maxSamples = TargetRate * 300

// ToPCM16k sniffs the container of an in-memory audio payload (wav, mp3,
// ogg-vorbis or ogg-opus) and decodes it to mono 16 kHz samples.
func ToPCM16k(data []byte) ([]float32, error) {
	if len(data) < 4 {
		return nil, errors.New("audio payload too short")
	}

	switch {
	case bytes.HasPrefix(data, []byte("RIFF")):
		return DecodeWAV(data)
	case bytes.HasPrefix(data, []byte("OggS")):
		if s, err := decodeVorbis(data); err == nil {
			return s, nil
		}
		if s, err := decodeOpus(data); err == nil {
			return s, nil
		}
		return nil, errors.New("ogg container is neither vorbis nor opus")
	case bytes.HasPrefix(data, []byte("ID3")), data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return decodeMP3(data)
	default:
		return nil, fmt.Errorf("unsupported audio container (magic %x)", data[:4])
	}
}

// FileToPCM16k reads and converts an audio file.
func FileToPCM16k(path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ToPCM16k(data)
}

// DecodeWAV converts a RIFF/WAVE payload to mono 16 kHz samples.
func DecodeWAV(data []byte) ([]float32, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, errors.New("invalid wav")
	}
	pb, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if pb == nil || len(pb.Data) == 0 {
		return nil, errors.New("empty wav")
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	x := intsToFloat32(pb.Data, bitDepth)

	channels, rate := 1, 44100
	if pb.Format != nil {
		if pb.Format.NumChannels > 0 {
			channels = pb.Format.NumChannels
		}
		if pb.Format.SampleRate > 0 {
			rate = pb.Format.SampleRate
		}
	}
	return finish(x, channels, rate)
}

func decodeMP3(data []byte) ([]float32, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	ints := make([]int16, len(raw)/2)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &ints); err != nil {
		return nil, err
	}
	x := int16sToFloat32(ints)

	rate := dec.SampleRate()
	if rate <= 0 {
		rate = 44100
	}
	// go-mp3 always emits interleaved stereo.
	return finish(x, 2, rate)
}

func decodeVorbis(data []byte) ([]float32, error) {
	pcm, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if format == nil || format.Channels <= 0 || format.SampleRate <= 0 {
		return nil, errors.New("invalid ogg/vorbis stream")
	}
	return finish(pcm, format.Channels, format.SampleRate)
}

func decodeOpus(data []byte) ([]float32, error) {
	dec, err := popus.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer dec.Destroy()

	channels := dec.ChannelCount()
	if channels <= 0 {
		channels = 1
	}

	// Opus always decodes at 48 kHz.
	var (
		pcm []float32
		buf = make([]int16, 48000*channels/2)
	)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			pcm = append(pcm, int16sToFloat32(buf[:n*channels])...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(pcm) == 0 {
		return nil, errors.New("empty opus stream")
	}
	return finish(pcm, channels, 48000)
}

// finish downmixes, resamples to TargetRate and applies the sample cap.
func finish(x []float32, channels, rate int) ([]float32, error) {
	if channels > 1 {
		x = downmix(x, channels)
	}
	if rate != TargetRate {
		x = resample(x, rate, TargetRate)
	}
	if len(x) > maxSamples {
		x = x[:maxSamples]
	}
	return x, nil
}

func intsToFloat32(data []int, bitDepth int) []float32 {
	out := make([]float32, len(data))
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	for i, v := range data {
		f := float64(v) * scale
		if f > 1 {
			f = 1
		} else if f < -1 {
			f = -1
		}
		out[i] = float32(f)
	}
	return out
}

func int16sToFloat32(data []int16) []float32 {
	out := make([]float32, len(data))
	const scale = 1.0 / 32768.0
	for i, v := range data {
		out[i] = float32(float64(v) * scale)
	}
	return out
}

// downmix averages interleaved channels into mono.
func downmix(in []float32, channels int) []float32 {
	frames := len(in) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		base := i * channels
		for c := 0; c < channels; c++ {
			sum += float64(in[base+c])
		}
		out[i] = float32(sum / float64(channels))
	}
	return out
}

// resample does linear interpolation between rates. Good enough for
// speech fed to a recognizer.
func resample(in []float32, inRate, outRate int) []float32 {
	if inRate == outRate || len(in) == 0 {
		return in
	}
	ratio := float64(outRate) / float64(inRate)
	n := int(float64(len(in)) * ratio)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		src := float64(i) / ratio
		i0 := int(src)
		if i0 >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		a := float32(src - float64(i0))
		out[i] = in[i0]*(1-a) + in[i0+1]*a
	}
	return out
}
