package core

// Compare classifies every handle of both sets. The inputs are not modified.
func Compare(following HandleSet, followers HandleSet) Comparison {
	c := Comparison{
		Following:     following,
		Followers:     followers,
		NonFollowers:  make(HandleSet),
		FollowersOnly: make(HandleSet),
		Mutuals:       make(HandleSet),
	}

	for h := range following {
		if followers.Contains(h) {
			c.Mutuals.Add(h)
		} else {
			c.NonFollowers.Add(h)
		}
	}

	for h := range followers {
		if !following.Contains(h) {
			c.FollowersOnly.Add(h)
		}
	}

	return c
}

// CompareText extracts both lists and compares them.
func CompareText(followingText string, followersText string) Comparison {
	return Compare(ExtractHandles(followingText), ExtractHandles(followersText))
}
