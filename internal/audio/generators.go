package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// explosionGenerator is a noise burst with a low rumble and exponential decay.
type explosionGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *rand.Rand
}

func newExplosionGenerator(sr beep.SampleRate, seed int64) *explosionGenerator {
	return &explosionGenerator{sr: sr, rng: rand.New(rand.NewSource(seed))}
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 9)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.35 * math.Sin(2*math.Pi*55*t)
		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error {
	return nil
}

// laserGenerator is a square wave sweeping down from 1800 Hz.
type laserGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

func newLaserGenerator(sr beep.SampleRate) *laserGenerator {
	return &laserGenerator{sr: sr}
}

func (g *laserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 300 + 1500*math.Exp(-t*25)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		sample := 0.12
		if g.phase >= 0.5 {
			sample = -0.12
		}
		sample *= math.Exp(-t * 6)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *laserGenerator) Err() error {
	return nil
}

// alarmGenerator alternates two tones every quarter second, forever.
type alarmGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newAlarmGenerator(sr beep.SampleRate) *alarmGenerator {
	return &alarmGenerator{sr: sr}
}

func (g *alarmGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(250 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 880.0
		if (g.pos/half)%2 == 1 {
			freq = 660
		}
		sample := 0.1 * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *alarmGenerator) Err() error {
	return nil
}

// droneGenerator is an endless background pad. The track number picks the
// chord so successive tracks sound different.
type droneGenerator struct {
	sr    beep.SampleRate
	pos   int
	freqs []float64
}

var droneChords = [][]float64{
	{55, 82.41, 110},
	{49, 73.42, 98},
	{61.74, 92.5, 123.47},
	{43.65, 65.41, 87.31},
}

func newDroneGenerator(sr beep.SampleRate, track int) *droneGenerator {
	chord := droneChords[((track%len(droneChords))+len(droneChords))%len(droneChords)]
	return &droneGenerator{sr: sr, freqs: chord}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*0.1*t)
		var sample float64
		for _, f := range g.freqs {
			sample += math.Sin(2 * math.Pi * f * t)
		}
		sample *= 0.05 * swell
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error {
	return nil
}
