package sfx

import (
	"bytes"
	"math"
	"testing"
)

func TestGenerateAll(t *testing.T) {
	for _, s := range Sounds() {
		t.Run(s.String(), func(t *testing.T) {
			buf := Generate(s, 1)
			if len(buf) == 0 || len(buf)%frameBytes != 0 {
				t.Fatalf("buffer length %d", len(buf))
			}
			if d := Duration(buf); d <= 0 || d > 1.5 {
				t.Errorf("duration %v s", d)
			}
			peak := 0.0
			for i := 0; i < len(buf)/frameBytes; i++ {
				v := Sample(buf, i)
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("frame %d out of range: %v", i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
			if peak < 0.01 {
				t.Errorf("silent: peak %v", peak)
			}
		})
	}
}

func TestChannelsMatch(t *testing.T) {
	buf := Generate(PlayerShot, 0)
	for i := 0; i < len(buf); i += frameBytes {
		if !bytes.Equal(buf[i:i+4], buf[i+4:i+8]) {
			t.Fatalf("frame %d: channels differ", i/frameBytes)
		}
	}
}

func TestSeedVariesNoise(t *testing.T) {
	a, b := Generate(Explosion, 1), Generate(Explosion, 2)
	if bytes.Equal(a, b) {
		t.Error("different seeds rendered the same explosion")
	}
	if !bytes.Equal(Generate(Spark, 7), Generate(Spark, 7)) {
		t.Error("same seed rendered different sparks")
	}
	if Duration(Generate(BigExplosion, 1)) <= Duration(a) {
		t.Error("big explosion not longer")
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v", x, y)
		}
	}
}

func TestUnknownSoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	Generate(soundCount, 0)
}
