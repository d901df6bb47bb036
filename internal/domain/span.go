package domain

import (
	"context"
	"encoding/json"
	"time"
)

const ContextProfileKey = "performanceProfile"

// Profile records how long each stage of a request took. It is attached to
// the request context by the resolver and read back out when responding.
type Profile struct {
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

type Span struct {
	Name    string    `json:"name"`
	startTs time.Time `json:"-"`

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

// GetProfile returns the profile stored on the context, or a throwaway one if
// the caller never attached any. Callers should not need to nil-check.
func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		return NewProfile()
	}
	return profile, profile.End
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one.
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan, endSpan = NewSpan(name)
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, endSpan
}

// NewSpan creates a detached span; concurrent ticker runs each take their own
// and attach it under the parent afterwards.
func NewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	return newSpan, newSpan.End
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// AttachSubSpan is used by the analysis fan-out: each ticker's span is built
// independently and attached once the goroutine finishes.
func (s *Span) AttachSubSpan(sub *Span) {
	s.SubSpans = append(s.SubSpans, sub)
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
