package core

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ReportOptions controls how a Comparison is shaped for display.
type ReportOptions struct {
	Filter      *OrgFilter
	ExcludeOrgs bool
	Locale      language.Tag
}

type ReportList struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Handles []string `json:"handles"`
}

// Report is what gets displayed and exported. Counts of the input lists are
// never affected by the org filter.
type Report struct {
	FollowingCount int        `json:"following_count"`
	FollowersCount int        `json:"followers_count"`
	ExcludeOrgs    bool       `json:"exclude_orgs"`
	NonFollowers   ReportList `json:"non_followers"`
	FollowersOnly  ReportList `json:"followers_only"`
	Mutuals        ReportList `json:"mutuals"`
}

// BuildReport sorts the derived lists with the locale's collation and, when
// asked to, hides handles matched by the org filter.
func BuildReport(c Comparison, opts ReportOptions) Report {
	// Collators keep internal buffers and are not shared.
	col := collate.New(opts.Locale)

	build := func(rl ResultList) ReportList {
		handles := c.Set(rl).Slice()

		if opts.ExcludeOrgs {
			handles = opts.Filter.Exclude(handles)
		}

		col.SortStrings(handles)

		return ReportList{
			Name:    rl.String(),
			Label:   rl.Label(),
			Count:   len(handles),
			Handles: handles,
		}
	}

	return Report{
		FollowingCount: c.Following.Len(),
		FollowersCount: c.Followers.Len(),
		ExcludeOrgs:    opts.ExcludeOrgs,
		NonFollowers:   build(NonFollowersList),
		FollowersOnly:  build(FollowersOnlyList),
		Mutuals:        build(MutualsList),
	}
}

// Lists returns the derived lists in display order.
func (r Report) Lists() []ReportList {
	return []ReportList{r.NonFollowers, r.FollowersOnly, r.Mutuals}
}

// Columns returns the derived lists as CSV columns in export order.
func (r Report) Columns() []Column {
	lists := r.Lists()
	columns := make([]Column, len(ResultLists))

	for i, rl := range ResultLists {
		columns[i] = Column{Name: rl.ColumnName(), Values: lists[i].Handles}
	}

	return columns
}
