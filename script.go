package choreo

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownTrack is returned when a script has no track with the
	// requested name.
	ErrUnknownTrack = errors.New("unknown track")
	// ErrTrackType is returned when a track is requested as the wrong value
	// type.
	ErrTrackType = errors.New("track type mismatch")
	// ErrUnknownEase is returned for an ease name that is not registered.
	ErrUnknownEase = errors.New("unknown ease")
	// ErrBadTrack is returned for a malformed track definition.
	ErrBadTrack = errors.New("bad track")
)

// Track value types.
const (
	TrackFloat = "float"
	TrackColor = "color"
)

// Loop modes applied to a motion's OnFinish by ApplyFloat and ApplyColor.
const (
	LoopReset   = "reset"   // restart from the beginning
	LoopReverse = "reverse" // flip speed and play back
)

// scriptFile is the top-level YAML structure of an animation script. JSON is
// accepted as well since it is valid YAML.
type scriptFile struct {
	Tracks []trackSpec `yaml:"tracks"`
}

type trackSpec struct {
	Name           string       `yaml:"name"`
	Type           string       `yaml:"type,omitempty"`
	From           yaml.Node    `yaml:"from,omitempty"`
	Speed          *float64     `yaml:"speed,omitempty"`
	StartTime      float64      `yaml:"startTime,omitempty"`
	RemoveOnFinish *bool        `yaml:"removeOnFinish,omitempty"`
	Repeat         float64      `yaml:"repeat,omitempty"`
	PingPong       float64      `yaml:"pingpong,omitempty"`
	Loop           string       `yaml:"loop,omitempty"`
	Phrases        []phraseSpec `yaml:"phrases"`
}

type phraseSpec struct {
	Kind     string    `yaml:"kind"`
	To       yaml.Node `yaml:"to,omitempty"`
	Duration float64   `yaml:"duration,omitempty"`
	Ease     string    `yaml:"ease,omitempty"`
}

// track is a validated, built track.
type track struct {
	spec   trackSpec
	floats Phrase[float64]
	colors Phrase[colorful.Color]
}

// Script is a set of named animation tracks loaded from YAML:
//
//	tracks:
//	  - name: slide
//	    from: 0
//	    repeat: 7.5
//	    phrases:
//	      - {kind: ramp, to: 10, duration: 1, ease: in-out-quad}
//	      - {kind: hold, duration: 0.5}
//	  - name: tint
//	    type: color
//	    from: "#ff0000"
//	    loop: reverse
//	    phrases:
//	      - {kind: ramp, to: "#0000ff", duration: 2}
type Script struct {
	tracks map[string]*track
	names  []string
}

// LoadScript parses and validates an animation script. Unknown fields, ease
// names and phrase kinds are errors.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Tracks) == 0 {
		return nil, fmt.Errorf("parse script: no tracks")
	}

	s := &Script{tracks: make(map[string]*track, len(file.Tracks))}
	for i := range file.Tracks {
		ts := file.Tracks[i]
		if ts.Name == "" {
			return nil, fmt.Errorf("parse script: track %d: %w: missing name", i, ErrBadTrack)
		}
		if _, dup := s.tracks[ts.Name]; dup {
			return nil, fmt.Errorf("parse script: track %q: %w: duplicate name", ts.Name, ErrBadTrack)
		}
		tr, err := buildTrack(ts)
		if err != nil {
			return nil, fmt.Errorf("parse script: track %q: %w", ts.Name, err)
		}
		s.tracks[ts.Name] = tr
		s.names = append(s.names, ts.Name)
	}
	return s, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Names returns track names in declaration order.
func (s *Script) Names() []string {
	return s.names
}

// Type returns the value type of the named track.
func (s *Script) Type(name string) (string, error) {
	tr, ok := s.tracks[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	if tr.colors != nil {
		return TrackColor, nil
	}
	return TrackFloat, nil
}

// Float returns the named float track as a phrase.
func (s *Script) Float(name string) (Phrase[float64], error) {
	tr, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	if tr.floats == nil {
		return nil, fmt.Errorf("track %q: %w: not a float track", name, ErrTrackType)
	}
	return tr.floats, nil
}

// Color returns the named color track as a phrase.
func (s *Script) Color(name string) (Phrase[colorful.Color], error) {
	tr, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	if tr.colors == nil {
		return nil, fmt.Errorf("track %q: %w: not a color track", name, ErrTrackType)
	}
	return tr.colors, nil
}

// ApplyFloat plays the named float track into out on tl, configured with the
// track's speed, start time, removal policy and loop mode.
func ApplyFloat(tl *Timeline, s *Script, name string, out *Output[float64]) (*Motion[float64], error) {
	p, err := s.Float(name)
	if err != nil {
		return nil, err
	}
	return applyTrack(tl, s.tracks[name].spec, out, p), nil
}

// ApplyColor plays the named color track into out on tl.
func ApplyColor(tl *Timeline, s *Script, name string, out *Output[colorful.Color]) (*Motion[colorful.Color], error) {
	p, err := s.Color(name)
	if err != nil {
		return nil, err
	}
	return applyTrack(tl, s.tracks[name].spec, out, p), nil
}

func (s *Script) lookup(name string) (*track, error) {
	tr, ok := s.tracks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	return tr, nil
}

func applyTrack[T any](tl *Timeline, ts trackSpec, out *Output[T], p Phrase[T]) *Motion[T] {
	m := Apply(tl, out, p)
	if ts.Speed != nil {
		m.SetSpeed(*ts.Speed)
	}
	if ts.RemoveOnFinish != nil {
		m.SetRemoveOnFinish(*ts.RemoveOnFinish)
	}
	if ts.StartTime > 0 {
		m.SetStartTime(ts.StartTime)
	}
	switch ts.Loop {
	case LoopReset:
		m.OnFinish = func(m *Motion[T]) { m.ResetTime() }
	case LoopReverse:
		m.OnFinish = func(m *Motion[T]) {
			m.SetSpeed(-m.Speed())
			m.ResetTime()
		}
	}
	return m
}

func buildTrack(ts trackSpec) (*track, error) {
	if ts.Repeat < 0 || ts.PingPong < 0 || ts.StartTime < 0 {
		return nil, fmt.Errorf("%w: negative repeat, pingpong or startTime", ErrBadTrack)
	}
	if ts.Repeat > 0 && ts.PingPong > 0 {
		return nil, fmt.Errorf("%w: repeat and pingpong are exclusive", ErrBadTrack)
	}
	switch ts.Loop {
	case "", LoopReset, LoopReverse:
	default:
		return nil, fmt.Errorf("%w: unknown loop mode %q", ErrBadTrack, ts.Loop)
	}

	tr := &track{spec: ts}
	var err error
	switch ts.Type {
	case "", TrackFloat:
		tr.floats, err = buildPhrase(ts, decodeFloat, LerpNumber[float64])
	case TrackColor:
		tr.colors, err = buildPhrase(ts, decodeColor, LerpColor)
	default:
		err = fmt.Errorf("%w: unknown type %q", ErrBadTrack, ts.Type)
	}
	if err != nil {
		return nil, err
	}
	return tr, nil
}

func buildPhrase[T any](ts trackSpec, decode func(*yaml.Node) (T, error), lerp LerpFunc[T]) (Phrase[T], error) {
	var from T
	if ts.From.Kind != 0 {
		v, err := decode(&ts.From)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		from = v
	}

	seq := NewSequence(from, lerp)
	for i, ps := range ts.Phrases {
		if ps.Duration < 0 {
			return nil, fmt.Errorf("phrase %d: %w: negative duration", i, ErrBadTrack)
		}
		fn, ok := EaseByName(ps.Ease)
		if !ok {
			return nil, fmt.Errorf("phrase %d: %w %q", i, ErrUnknownEase, ps.Ease)
		}
		switch ps.Kind {
		case "ramp", "set":
			if ps.To.Kind == 0 {
				return nil, fmt.Errorf("phrase %d: %w: %s without a target", i, ErrBadTrack, ps.Kind)
			}
			to, err := decode(&ps.To)
			if err != nil {
				return nil, fmt.Errorf("phrase %d: %w", i, err)
			}
			if ps.Kind == "ramp" {
				seq.RampTo(to, ps.Duration, fn)
			} else {
				seq.Set(to)
			}
		case "hold":
			seq.Hold(ps.Duration)
		default:
			return nil, fmt.Errorf("phrase %d: %w: unknown kind %q", i, ErrBadTrack, ps.Kind)
		}
	}

	switch {
	case ts.Repeat > 0:
		return NewRepeat[T](seq, ts.Repeat), nil
	case ts.PingPong > 0:
		return NewPingPong[T](seq, ts.PingPong), nil
	}
	return seq, nil
}

func decodeFloat(n *yaml.Node) (float64, error) {
	var v float64
	if err := n.Decode(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func decodeColor(n *yaml.Node) (colorful.Color, error) {
	var hex string
	if err := n.Decode(&hex); err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrBadTrack, err)
	}
	return c, nil
}
