package main

import (
	"embed"
	"fmt"

	"github.com/braheezy/qoa"
	"github.com/ebitengine/oto/v3"
)

// Embed all sound files from the sounds/ directory
//
//go:embed sounds/*
var soundFiles embed.FS

const (
	// the embedded sounds are encoded at this rate and channel count
	sampleRate   = 44100
	channelCount = 2
)

// Sound plays one decoded QOA clip, overlapping with earlier plays.
// A nil *Sound is silent.
type Sound struct {
	ctx     *oto.Context
	samples []int16
	// players still running; oto stops a player that is garbage collected
	live []*oto.Player
}

func decodeSound(name string) ([]int16, error) {
	qoaBytes, err := soundFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	qoaMetadata, qoaAudioData, err := qoa.Decode(qoaBytes)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if int(qoaMetadata.Channels) != channelCount {
		return nil, fmt.Errorf("decode %s: %d channels, want %d", name, qoaMetadata.Channels, channelCount)
	}
	return qoaAudioData, nil
}

// NewSound decodes an embedded clip and opens the default audio device.
func NewSound(name string) (*Sound, error) {
	samples, err := decodeSound(name)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(
		&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			// QOA is always 16 bit
			Format: oto.FormatSignedInt16LE,
		})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	// Wait for the audio context to be ready
	<-ready

	return &Sound{ctx: ctx, samples: samples}, nil
}

func (s *Sound) Play() {
	if s == nil {
		return
	}
	running := s.live[:0]
	for _, p := range s.live {
		if p.IsPlaying() {
			running = append(running, p)
		}
	}
	s.live = running

	player := s.ctx.NewPlayer(qoa.NewReader(s.samples, channelCount))
	player.Play()
	s.live = append(s.live, player)
}
