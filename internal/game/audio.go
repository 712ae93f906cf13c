package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundBonus
	SoundTurn
	SoundExpire
	SoundLevelUp
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var muted atomic.Bool

var sfxVolume = 0.58

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetMuted silences every following PlaySound.
func SetMuted(m bool) { muted.Store(m) }

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil || muted.Load() {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundBonus:
		return genArpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.075, 2.756)
	case SoundTurn:
		return genTick()
	case SoundExpire:
		return genSweep(900, 300, 0.18)
	case SoundLevelUp:
		return genArpeggio([]float64{440, 554.37, 659.25, 880, 1108.73}, 0.09, 3.5)
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genSweep(1400, 700, 0.065)
	}
	return nil
}

// genEat: two quick plucks a fifth apart, the second one brighter.
func genEat() []byte {
	const pluck = 0.045
	n := int(2 * pluck * SampleRate)
	half := n / 2
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		j, freq, bright := i, 392.0, 1.5
		if i >= half {
			j, freq, bright = i-half, 587.33, 2.5
		}
		t := float64(j) / SampleRate
		env := math.Exp(-float64(j) / float64(half) * 6)
		s := fm(t, freq, 3.0, bright*env) * env * 0.42
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTick: very short soft click for a turn.
func genTick() []byte {
	dur := 0.025
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		putStereoF32(buf, i, softSat(math.Sin(2*math.Pi*2200*t)*env*0.18))
	}
	return buf
}

// genSweep: single FM tone gliding from f0 to f1.
func genSweep(f0, f1, dur float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := f0 + (f1-f0)*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.6)*env*0.38))
	}
	return buf
}

// genArpeggio: FM bell notes each ringing over the next.
func genArpeggio(freqs []float64, noteDur, modRatio float64) []byte {
	noteLen := int(noteDur * SampleRate)
	total := len(freqs)*noteLen + int(0.22*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, modRatio, 5.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: a tone slithering down an octave over a low drone, then fading.
func genGameOver() []byte {
	n := int(0.9 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.2, 0.55, 0.5)
		// Octave glide with a 6 Hz wobble.
		freq := 440 * math.Pow(0.5, p) * (1 + 0.015*math.Sin(2*math.Pi*6*t))
		s := fm(t, freq, 1.5, 1.2*env) * env * 0.3
		s += math.Sin(2*math.Pi*110*t) * env * 0.12
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
