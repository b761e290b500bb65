package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Stream did not terminate")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		if n != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, testRate.N(100*time.Millisecond), n)
		}
		if peak > 1 {
			t.Errorf("wave %d: sample out of range: %v", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(100, 10*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("Sample %d not a square level: %v", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 50 * time.Millisecond
	osc := NewOscillator(0, time.Second, WaveSquare, testRate) // constant 1.0
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	total := testRate.N(d)
	buf := make([][2]float64, total+100)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("Expected envelope to cut stream at %d samples, got %d", total, n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Attack should start silent, got %v", buf[0][0])
	}
	if mid := buf[total/2][0]; mid != 1 {
		t.Errorf("Sustain should pass through, got %v", mid)
	}
	if last := buf[total-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Release should end near silence, got %v", last)
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("Exhausted envelope should report (0, false), got (%d, %v)", n, ok)
	}
}

func TestCreateSounds(t *testing.T) {
	bump := CreateBumpSound(testRate, 2, 0.5)
	if n, peak := drain(t, bump); n == 0 || peak == 0 {
		t.Errorf("Bump should be audible: n=%d peak=%v", n, peak)
	}

	whoosh := CreateWhooshSound(testRate, 0.5)
	if n, _ := drain(t, whoosh); n == 0 {
		t.Error("Whoosh produced no samples")
	}

	chime, err := CreateChimeSound(testRate, 0.5)
	if err != nil {
		t.Fatalf("CreateChimeSound failed: %v", err)
	}
	if n, peak := drain(t, chime); n == 0 || peak == 0 {
		t.Errorf("Chime should be audible: n=%d peak=%v", n, peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := CreateBumpSound(testRate, 0, 0)
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}
}
