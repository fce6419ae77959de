package spruce

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ChimeSampleRate is the sample rate the chime PCM is synthesized at. Create
// the audio.Context at the same rate.
const ChimeSampleRate = 48000

// chime synthesis parameters: a short glassy blip with an exponential decay.
const (
	chimeFrequency = 1318.5 // E6
	chimeDuration  = 0.35   // seconds
	chimeDecay     = 9.0    // amplitude e-folding rate, 1/seconds
)

// Chimer plays the interaction chime. The PCM is synthesized once at
// construction; Play spawns a throwaway player per trigger so overlapping
// chimes mix naturally.
//
// Audio is strictly best-effort: with a nil context Play logs once and does
// nothing, and the interaction path proceeds regardless.
type Chimer struct {
	ctx     *audio.Context
	pcm     []byte
	volume  float64
	enabled bool
	warned  bool
}

// NewChimer creates a Chimer for the given audio context. A nil context is
// accepted and produces a silent Chimer.
func NewChimer(ctx *audio.Context) *Chimer {
	return &Chimer{
		ctx:     ctx,
		pcm:     synthChime(ChimeSampleRate),
		volume:  0.5,
		enabled: true,
	}
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (c *Chimer) SetVolume(v float64) {
	c.volume = math.Min(math.Max(v, 0), 1)
}

// SetEnabled mutes or unmutes the chime.
func (c *Chimer) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Play fires one chime. Never blocks; failures are logged and swallowed.
func (c *Chimer) Play() {
	if !c.enabled {
		return
	}
	if c.ctx == nil {
		if !c.warned {
			log.Printf("[spruce] chime: no audio context, sound disabled")
			c.warned = true
		}
		return
	}
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	p.SetVolume(c.volume)
	p.Play()
}

// Func returns the Chimer's Play as a ChimeFunc for Scene.SetChime.
func (c *Chimer) Func() ChimeFunc {
	return c.Play
}

// synthChime renders the chime as 16-bit little-endian stereo PCM: a
// fundamental plus a quieter third harmonic under an exponential envelope.
func synthChime(sampleRate int) []byte {
	n := int(chimeDuration * float64(sampleRate))
	buf := make([]byte, n*4)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-chimeDecay * t)
		v := (math.Sin(2*math.Pi*chimeFrequency*t) +
			0.4*math.Sin(2*math.Pi*chimeFrequency*3*t)) * env * 0.6

		s := int16(math.Min(math.Max(v, -1), 1) * 32767)
		lo, hi := byte(s), byte(s>>8)
		buf[i*4+0] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return buf
}
