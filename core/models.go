package core

import "sort"

type ListType byte

const (
	_                  = iota
	Following ListType = iota
	Followers ListType = iota
)

const (
	MinHandleLength = 3
	MaxHandleLength = 30
)

// HandleSet holds unique normalized handles. Order is irrelevant.
type HandleSet map[string]struct{}

func NewHandleSet(handles ...string) HandleSet {
	s := make(HandleSet, len(handles))

	for _, h := range handles {
		s.Add(h)
	}

	return s
}

func (s HandleSet) Add(handle string) {
	s[handle] = struct{}{}
}

func (s HandleSet) Contains(handle string) bool {
	_, ok := s[handle]
	return ok
}

func (s HandleSet) Len() int {
	return len(s)
}

// Slice returns the handles in no particular order.
func (s HandleSet) Slice() []string {
	handles := make([]string, 0, len(s))

	for h := range s {
		handles = append(handles, h)
	}

	return handles
}

// Sorted returns the handles in byte order.
func (s HandleSet) Sorted() []string {
	handles := s.Slice()
	sort.Strings(handles)
	return handles
}

// Comparison is the outcome of comparing a Following set with a Followers set.
type Comparison struct {
	Following     HandleSet
	Followers     HandleSet
	NonFollowers  HandleSet
	FollowersOnly HandleSet
	Mutuals       HandleSet
}
