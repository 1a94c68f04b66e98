package choreo

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

const testScript = `
tracks:
  - name: slide
    from: 0
    phrases:
      - {kind: ramp, to: 10, duration: 1, ease: linear}
      - {kind: hold, duration: 0.5}
      - {kind: set, to: 3}
  - name: tint
    type: color
    from: "#ff0000"
    phrases:
      - {kind: ramp, to: "#0000ff", duration: 2, ease: in-out-quad}
  - name: pulse
    from: 1
    repeat: 2.5
    phrases:
      - {kind: ramp, to: 2, duration: 1}
`

func loadTestScript(t *testing.T, src string) *Script {
	t.Helper()
	s, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	return s
}

func TestLoadScriptFloatTrack(t *testing.T) {
	s := loadTestScript(t, testScript)

	if diff := cmp.Diff([]string{"slide", "tint", "pulse"}, s.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	p, err := s.Float("slide")
	if err != nil {
		t.Fatal(err)
	}
	if p.Duration() != 1.5 {
		t.Errorf("Duration = %f, want 1.5", p.Duration())
	}
	times := []float64{0, 0.5, 1, 1.25, 1.5}
	got := make([]float64, len(times))
	for i, at := range times {
		got[i] = p.Value(at)
	}
	want := []float64{0, 5, 10, 10, 3}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadScriptColorTrack(t *testing.T) {
	s := loadTestScript(t, testScript)

	typ, err := s.Type("tint")
	if err != nil || typ != TrackColor {
		t.Fatalf("Type = %q, %v; want color", typ, err)
	}
	p, err := s.Color("tint")
	if err != nil {
		t.Fatal(err)
	}
	if h := p.Value(0).Hex(); h != "#ff0000" {
		t.Errorf("start = %s, want #ff0000", h)
	}
	if h := p.Value(2).Hex(); h != "#0000ff" {
		t.Errorf("end = %s, want #0000ff", h)
	}
}

func TestLoadScriptRepeatTrack(t *testing.T) {
	s := loadTestScript(t, testScript)

	p, err := s.Float("pulse")
	if err != nil {
		t.Fatal(err)
	}
	if p.Duration() != 2.5 {
		t.Errorf("Duration = %f, want 2.5", p.Duration())
	}
	if v := p.Value(2.5); math.Abs(v-1.5) > 1e-9 {
		t.Errorf("Value(2.5) = %f, want 1.5", v)
	}
}

func TestLoadScriptJSON(t *testing.T) {
	s := loadTestScript(t, `{"tracks": [{"name": "a", "from": 1, "phrases": [{"kind": "ramp", "to": 3, "duration": 2}]}]}`)
	p, err := s.Float("a")
	if err != nil {
		t.Fatal(err)
	}
	if v := p.Value(1); v != 2 {
		t.Errorf("Value(1) = %f, want 2", v)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"missing name", `tracks: [{phrases: [{kind: hold, duration: 1}]}]`, ErrBadTrack},
		{"duplicate name", `tracks: [{name: a, phrases: []}, {name: a, phrases: []}]`, ErrBadTrack},
		{"unknown ease", `tracks: [{name: a, phrases: [{kind: ramp, to: 1, duration: 1, ease: wobble}]}]`, ErrUnknownEase},
		{"unknown kind", `tracks: [{name: a, phrases: [{kind: spin, duration: 1}]}]`, ErrBadTrack},
		{"ramp without target", `tracks: [{name: a, phrases: [{kind: ramp, duration: 1}]}]`, ErrBadTrack},
		{"negative duration", `tracks: [{name: a, phrases: [{kind: hold, duration: -1}]}]`, ErrBadTrack},
		{"bad color", `tracks: [{name: a, type: color, from: "#zz0000", phrases: []}]`, ErrBadTrack},
		{"repeat and pingpong", `tracks: [{name: a, repeat: 1, pingpong: 1, phrases: []}]`, ErrBadTrack},
		{"unknown type", `tracks: [{name: a, type: quaternion, phrases: []}]`, ErrBadTrack},
		{"unknown loop", `tracks: [{name: a, loop: forever, phrases: []}]`, ErrBadTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadScriptRejectsMalformed(t *testing.T) {
	for _, src := range []string{
		``,
		`tracks: []`,
		`tracks: [{name: a, colour: red, phrases: []}]`,
		`tracks: [{name: a, from: [1, 2], phrases: []}]`,
		`tracks: {`,
	} {
		if _, err := LoadScript([]byte(src)); err == nil {
			t.Errorf("LoadScript(%q) succeeded, want error", src)
		}
	}
}

func TestScriptLookupErrors(t *testing.T) {
	s := loadTestScript(t, testScript)

	if _, err := s.Float("missing"); !errors.Is(err, ErrUnknownTrack) {
		t.Errorf("Float(missing) = %v, want ErrUnknownTrack", err)
	}
	if _, err := s.Type("missing"); !errors.Is(err, ErrUnknownTrack) {
		t.Errorf("Type(missing) = %v, want ErrUnknownTrack", err)
	}
	if _, err := s.Color("slide"); !errors.Is(err, ErrTrackType) {
		t.Errorf("Color(slide) = %v, want ErrTrackType", err)
	}
	if _, err := s.Float("tint"); !errors.Is(err, ErrTrackType) {
		t.Errorf("Float(tint) = %v, want ErrTrackType", err)
	}
	out := NewOutput(0.0)
	if _, err := ApplyFloat(NewTimeline(), s, "tint", out); !errors.Is(err, ErrTrackType) {
		t.Errorf("ApplyFloat(tint) = %v, want ErrTrackType", err)
	}
	if out.IsConnected() {
		t.Error("failed ApplyFloat should not bind the output")
	}
}

func TestApplyFloatTrackOptions(t *testing.T) {
	s := loadTestScript(t, `
tracks:
  - name: slide
    from: 0
    speed: 2
    startTime: 0.5
    removeOnFinish: false
    phrases:
      - {kind: ramp, to: 10, duration: 2}
`)
	tl := NewTimeline()
	out := NewOutput(-1.0)
	m, err := ApplyFloat(tl, s, "slide", out)
	if err != nil {
		t.Fatal(err)
	}
	if m.Speed() != 2 || m.StartTime() != 0.5 || m.RemoveOnFinish() {
		t.Errorf("options not applied: speed %f, start %f, remove %v", m.Speed(), m.StartTime(), m.RemoveOnFinish())
	}

	got := stepAll(t, tl, out, 0.25, 0.25, 0.5, 0.5)
	want := []float64{-1, 0, 5, 10}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if tl.Len() != 1 {
		t.Error("track with removeOnFinish: false should stay scheduled")
	}
}

func TestApplyTrackLoopModes(t *testing.T) {
	tests := []struct {
		loop string
		want []float64
	}{
		{LoopReset, []float64{5, 10, 5, 10, 5}},
		{LoopReverse, []float64{5, 10, 5, 0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.loop, func(t *testing.T) {
			s := loadTestScript(t, `
tracks:
  - name: loop
    loop: `+tt.loop+`
    phrases:
      - {kind: ramp, to: 10, duration: 1}
`)
			tl := NewTimeline()
			out := NewOutput(0.0)
			if _, err := ApplyFloat(tl, s, "loop", out); err != nil {
				t.Fatal(err)
			}
			got := stepAll(t, tl, out, 0.5, 0.5, 0.5, 0.5, 0.5)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if tl.Len() != 1 {
				t.Error("looping track should stay scheduled")
			}
		})
	}
}

func TestApplyColor(t *testing.T) {
	s := loadTestScript(t, testScript)
	tl := NewTimeline()
	out := NewOutput(colorful.Color{})
	if _, err := ApplyColor(tl, s, "tint", out); err != nil {
		t.Fatal(err)
	}
	if err := tl.Step(2); err != nil {
		t.Fatal(err)
	}
	if h := out.Value().Hex(); h != "#0000ff" {
		t.Errorf("color = %s, want #0000ff", h)
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.yaml")
	if err := os.WriteFile(path, []byte(testScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScriptFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Names()) != 3 {
		t.Errorf("Names = %v", s.Names())
	}

	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
}
