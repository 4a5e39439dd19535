// Package sfx synthesises the game's sound effects as stereo float32 PCM.
package sfx

import (
	"fmt"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // two float32 channels
)

// Sound identifies an effect.
type Sound int

const (
	Explosion    Sound = iota // enemy blown up
	BigExplosion              // player blown up
	Spark                     // bullet destroyed
	PlayerShot
	EnemyShot
	LifeLost
	Respawn
	GameOver
	BiomeChange
	soundCount
)

var soundNames = [soundCount]string{
	"explosion", "big_explosion", "spark", "player_shot", "enemy_shot",
	"life_lost", "respawn", "game_over", "biome_change",
}

func (s Sound) String() string {
	if s >= 0 && s < soundCount {
		return soundNames[s]
	}
	return fmt.Sprintf("Sound(%d)", int(s))
}

// Sounds lists every effect, for caches that render them up front.
func Sounds() []Sound {
	out := make([]Sound, soundCount)
	for i := range out {
		out[i] = Sound(i)
	}
	return out
}

// Generate renders s. seed varies the noise of the noisy effects; the tonal
// ones ignore it.
func Generate(s Sound, seed uint64) []byte {
	switch s {
	case Explosion:
		return genExplosion(0.3, seed)
	case BigExplosion:
		return genExplosion(1, seed)
	case Spark:
		return genSpark(seed)
	case PlayerShot:
		return genPlayerShot()
	case EnemyShot:
		return genEnemyShot()
	case LifeLost:
		return genLifeLost()
	case Respawn:
		return genRespawn()
	case GameOver:
		return genGameOver()
	case BiomeChange:
		return genBiomeChange()
	}
	panic(fmt.Sprintf("sfx: unknown sound %d", int(s)))
}

// Duration is the playing time of a rendered buffer in seconds.
func Duration(buf []byte) float64 {
	return float64(len(buf)/frameBytes) / SampleRate
}

// putStereo writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*frameBytes + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// Sample reads back the left channel of frame i.
func Sample(buf []byte, i int) float64 {
	o := i * frameBytes
	v := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return float64(math.Float32frombits(v))
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// softSat is a gentle saturation that never leaves [-1,1].
func softSat(x float64) float64 {
	if x > 1 {
		return 1 - 0.5/x
	}
	if x < -1 {
		return -1 + 0.5/(-x)
	}
	return x - x*x*x/3
}

// adsr is an envelope at normalized progress [0,1]; attack, decay and
// release are fractions of the whole.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1 - (progress-attack)/decay*(1-sustain)
	case progress < 1-release:
		return sustain
	default:
		return sustain * (1 - (progress-(1-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genExplosion: swept sub boom, noise crack and a bandpassed body. size in
// [0,1] deepens and lengthens it.
func genExplosion(size float64, seed uint64) []byte {
	dur := 0.26 + 0.5*size
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	lp1, lp2, rum := 0.0, 0.0, 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		from, to := 150-60*size, 34-16*size
		freq := from * math.Pow(to/from, p*(1.6+1.5*size))
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*(7-3.5*size)) * (0.44 + 0.3*size)

		crack := 0.0
		if win := 0.038 - 0.02*size; p < win {
			crack = lcg(&seed) * (1 - p/win) * (0.85 - 0.25*size)
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*(6.2-2*size)) * (0.3 + 0.15*size)

		rum = rum*0.95 + lcg(&seed)*0.05
		rumble := rum * math.Exp(-p*(3-1.5*size)) * (0.06 + 0.2*size)

		putStereo(buf, i, softSat((sub+crack+body+rumble)*0.86))
	}
	return buf
}

// genSpark: a very short filtered tick.
func genSpark(seed uint64) []byte {
	n := int(0.05 * SampleRate)
	buf := makeBuf(n)
	hp := 0.0
	prev := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		hp = 0.8 * (hp + raw - prev)
		prev = raw
		ping := math.Sin(2*math.Pi*(3200-1400*p)*t) * 0.25
		s := (hp*0.35 + ping) * math.Exp(-p*9)
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genPlayerShot: a falling FM zap for the five-bullet volley.
func genPlayerShot() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.45, 0.2, 0.3)
		freq := 1500 - 1000*p
		s := fm(t, freq, 0.5, 2.5*env) * env * 0.3
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genEnemyShot: a lower, rounder blip.
func genEnemyShot() []byte {
	n := int(0.1 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.1, 0.3)
		freq := 420 + 180*math.Sin(p*math.Pi)
		s := fm(t, freq, 2, 1.2*env) * env * 0.28
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genLifeLost: descending tone with a warm second harmonic.
func genLifeLost() []byte {
	n := int(0.3 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.5
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// bells mixes FM bell notes starting step samples apart, each ringing to the
// end of the buffer.
func bells(notes []float64, step, tail int, ratio float64) []byte {
	total := len(notes)*step + tail
	mix := make([]float64, total)
	for k, freq := range notes {
		start := k * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, ratio, 5*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genRespawn: rising bell staircase.
func genRespawn() []byte {
	return bells([]float64{440, 554.37, 659.25, 880}, int(0.08*SampleRate), int(0.22*SampleRate), 3.5)
}

// genBiomeChange: a brighter major arpeggio.
func genBiomeChange() []byte {
	return bells([]float64{523.25, 659.25, 783.99, 1046.5}, SampleRate*75/1000, int(0.18*SampleRate), 2.756)
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	n := int(0.9 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0},    // E4
		{261.63, 0.14}, // C4
		{220, 0.28},    // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2, 2*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	return render(mix)
}
