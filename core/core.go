package core

// ResultList identifies one of the three derived lists of a Comparison.
type ResultList byte

const (
	NonFollowersList ResultList = iota
	FollowersOnlyList
	MutualsList
)

// ResultLists is the fixed display and export order.
var ResultLists = []ResultList{NonFollowersList, FollowersOnlyList, MutualsList}

func GetListTypeDescription(listType ListType) string {
	switch listType {
	case Following:
		return "following"
	default:
		return "followers"
	}
}

func (lt ListType) String() string {
	return GetListTypeDescription(lt)
}

// ColumnName is the CSV header of the list.
func (rl ResultList) ColumnName() string {
	switch rl {
	case NonFollowersList:
		return "you_follow_but_they_dont_follow_you"
	case FollowersOnlyList:
		return "they_follow_you_but_you_dont_follow"
	default:
		return "mutuals"
	}
}

// Label is the human readable title of the list.
func (rl ResultList) Label() string {
	switch rl {
	case NonFollowersList:
		return "You follow, they don't follow you back"
	case FollowersOnlyList:
		return "They follow you, you don't follow back"
	default:
		return "Mutuals"
	}
}

func (rl ResultList) String() string {
	switch rl {
	case NonFollowersList:
		return "non_followers"
	case FollowersOnlyList:
		return "followers_only"
	default:
		return "mutuals"
	}
}

// Set returns the derived set the list refers to.
func (c Comparison) Set(rl ResultList) HandleSet {
	switch rl {
	case NonFollowersList:
		return c.NonFollowers
	case FollowersOnlyList:
		return c.FollowersOnly
	default:
		return c.Mutuals
	}
}
