package sound

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// BundledName names the cue compiled into the binary.
const BundledName = "bloop.mp3"

//go:embed assets/bloop.mp3
var bundled []byte

var ErrUnsupported = errors.New("unsupported audio file type")

// Player plays a short sound without blocking the caller.
type Player interface {
	Play()
}

// Cue is a fully decoded clip held in memory so every Play starts at once.
type Cue struct {
	buffer *beep.Buffer
	rate   beep.SampleRate
	play   func(...beep.Streamer)
}

var speakerOnce struct {
	sync.Once
	rate beep.SampleRate
	err  error
}

// initSpeaker starts beep's speaker once for the lifetime of the process and
// returns the rate it runs at.
func initSpeaker(format beep.Format) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerOnce.rate = format.SampleRate
		speakerOnce.err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20))
	})
	return speakerOnce.rate, speakerOnce.err
}

// Open loads the cue at path, or the bundled cue when path is empty.
func Open(path string) (*Cue, error) {
	if path == "" {
		return LoadBundled()
	}
	return Load(path)
}

// LoadBundled decodes the cue embedded in the binary.
func LoadBundled() (*Cue, error) {
	buf, err := Decode(io.NopCloser(bytes.NewReader(bundled)))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", BundledName, err)
	}
	return newSpeakerCue(buf)
}

// Load opens and decodes the clip at path and prepares the speaker.
func Load(path string) (*Cue, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".mp3" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return newSpeakerCue(buf)
}

func newSpeakerCue(buf *beep.Buffer) (*Cue, error) {
	rate, err := initSpeaker(buf.Format())
	if err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Cue{buffer: buf, rate: rate, play: speaker.Play}, nil
}

// Decode reads an MP3 stream fully into a buffer and closes rc.
func Decode(rc io.ReadCloser) (*beep.Buffer, error) {
	streamer, format, err := mp3.Decode(rc)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Play starts the clip and returns immediately.
func (c *Cue) Play() {
	if c == nil || c.buffer == nil || c.play == nil {
		return
	}
	clip := beep.Streamer(c.buffer.Streamer(0, c.buffer.Len()))
	if from := c.buffer.Format().SampleRate; c.rate > 0 && from != c.rate {
		clip = beep.Resample(4, from, c.rate, clip)
	}
	c.play(clip)
}
