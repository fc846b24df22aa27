package sink

import (
	"fmt"
	"os"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
	"gopkg.in/hraban/opus.v2"
)

const (
	// opusFrameMillis is the packet duration fed to the encoder. 20 ms is
	// the libopus default and keeps packets well under maxPacketBytes.
	opusFrameMillis = 20
	maxPacketBytes  = 4000
	opusPayloadType = 111
	opusStreamSSRC  = 0x554e5452 // arbitrary but stable
)

type opusOpener struct{}

func (opusOpener) Ext() string { return "opus" }

func (opusOpener) Open(path string, spec Spec) (Sink, error) {
	enc, err := opus.NewEncoder(spec.SampleRate, spec.Channels, opus.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("opus encoder: %w", err)
	}
	if err := enc.SetBitrate(spec.OpusBitrateKbps * 1000); err != nil {
		return nil, fmt.Errorf("opus bitrate: %w", err)
	}
	ogg, err := oggwriter.New(path, uint32(spec.SampleRate), uint16(spec.Channels))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &opusSink{
		enc:      enc,
		ogg:      ogg,
		path:     path,
		spec:     spec,
		frameLen: spec.SampleRate * opusFrameMillis / 1000 * spec.Channels,
		packet:   make([]byte, maxPacketBytes),
	}, nil
}

// opusSink buffers incoming frames into fixed 20 ms packets; the trailing
// partial packet is zero-padded at Close.
type opusSink struct {
	enc      *opus.Encoder
	ogg      *oggwriter.OggWriter
	path     string
	spec     Spec
	frameLen int // samples per packet, all channels
	pending  []float32
	packet   []byte
	seq      uint16
	ts       uint32
}

func (s *opusSink) Write(interleaved []float32) (int, error) {
	s.pending = append(s.pending, interleaved...)
	for len(s.pending) >= s.frameLen {
		if err := s.encodePacket(s.pending[:s.frameLen]); err != nil {
			return 0, err
		}
		n := copy(s.pending, s.pending[s.frameLen:])
		s.pending = s.pending[:n]
	}
	return len(interleaved) / s.spec.Channels, nil
}

func (s *opusSink) encodePacket(pcm []float32) error {
	n, err := s.enc.EncodeFloat32(pcm, s.packet)
	if err != nil {
		return fmt.Errorf("opus encode: %w", err)
	}
	s.seq++
	s.ts += uint32(s.frameLen / s.spec.Channels)
	payload := make([]byte, n)
	copy(payload, s.packet[:n])
	pkt := &rtp.Packet{
		Header: rtp.Header{
			Version:        2,
			PayloadType:    opusPayloadType,
			SequenceNumber: s.seq,
			Timestamp:      s.ts,
			SSRC:           opusStreamSSRC,
		},
		Payload: payload,
	}
	if err := s.ogg.WriteRTP(pkt); err != nil {
		return fmt.Errorf("write ogg page: %w", err)
	}
	return nil
}

func (s *opusSink) Close() error {
	var encodeErr error
	if len(s.pending) > 0 {
		tail := make([]float32, s.frameLen)
		copy(tail, s.pending)
		encodeErr = s.encodePacket(tail)
	}
	if err := s.ogg.Close(); err != nil {
		return fmt.Errorf("finalize ogg: %w", err)
	}
	if encodeErr != nil {
		os.Remove(s.path)
		return encodeErr
	}
	return nil
}
