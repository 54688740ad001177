package upstream

import "math/rand/v2"

// Selector picks the base URL for one outbound call.
type Selector interface {
	Pick() string
}

// FixedSelector always returns the same base URL.
type FixedSelector string

// Pick returns the fixed URL.
func (s FixedSelector) Pick() string { return string(s) }

// RandomSelector picks uniformly among equivalent base URLs on every call.
// There is no health tracking: a dead host is picked as often as a live one.
type RandomSelector struct {
	urls []string
	intn func(n int) int
}

// NewRandomSelector returns a selector over urls. A nil intn uses math/rand/v2.
func NewRandomSelector(urls []string, intn func(n int) int) *RandomSelector {
	if intn == nil {
		intn = rand.IntN
	}
	return &RandomSelector{urls: append([]string(nil), urls...), intn: intn}
}

// Pick returns one of the configured URLs, or "" if none are configured.
func (s *RandomSelector) Pick() string {
	if len(s.urls) == 0 {
		return ""
	}
	return s.urls[s.intn(len(s.urls))]
}

// URLs returns a copy of the candidate URLs.
func (s *RandomSelector) URLs() []string {
	return append([]string(nil), s.urls...)
}
