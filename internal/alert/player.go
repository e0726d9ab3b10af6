package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player produces the audible part of an alert. Play blocks until the clip
// ends or ctx is cancelled.
type Player interface {
	Play(ctx context.Context) error
}

const (
	outputSampleRate = beep.SampleRate(44100)
	resampleQuality  = 4
)

// SpeakerPlayer decodes a bundled asset and plays it on the default output
// device through the beep speaker.
type SpeakerPlayer struct {
	asset string
	load  func(name string) ([]byte, error)

	mu          sync.Mutex
	initialized bool
}

func NewSpeakerPlayer(asset string, load func(name string) ([]byte, error)) *SpeakerPlayer {
	return &SpeakerPlayer{asset: asset, load: load}
}

func (p *SpeakerPlayer) Play(ctx context.Context) error {
	data, err := p.load(p.asset)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetMissing, err)
	}

	stream, format, err := Decode(p.asset, data)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := p.openDevice(); err != nil {
		return err
	}

	var source beep.Streamer = stream
	if format.SampleRate != outputSampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, outputSampleRate, stream)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(source, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// openDevice initializes the speaker once. A failed attempt is retried on
// the next alert.
func (p *SpeakerPlayer) openDevice() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(outputSampleRate, outputSampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	p.initialized = true
	return nil
}

// SilentPlayer skips audible playback.
type SilentPlayer struct{}

func (SilentPlayer) Play(ctx context.Context) error {
	return ctx.Err()
}
