package core

import "sync"

// Session remembers the comparison of the last (following, followers) text
// pair so repeated renders of unchanged input skip extraction.
type Session struct {
	mu sync.Mutex

	followingText string
	followersText string
	last          *Comparison
}

func NewSession() *Session {
	return &Session{}
}

// Compare returns the comparison for the pair. The bool reports whether it
// came from the memo. The returned sets are shared and must not be modified.
func (s *Session) Compare(followingText string, followersText string) (Comparison, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && s.followingText == followingText && s.followersText == followersText {
		return *s.last, true
	}

	c := CompareText(followingText, followersText)

	s.followingText = followingText
	s.followersText = followersText
	s.last = &c

	return c, false
}

// Cached reports whether the pair is the memoized one.
func (s *Session) Cached(followingText string, followersText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last != nil && s.followingText == followingText && s.followersText == followersText
}
