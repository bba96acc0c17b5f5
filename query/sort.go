package query

import (
	"github.com/samber/lo"
)

// SortField is a sort key. One enumeration is shared by every resource; each
// resource accepts a subset of it.
type SortField string

const (
	SortID         SortField = "id"
	SortTitle      SortField = "title"
	SortReleased   SortField = "released"
	SortRating     SortField = "rating"
	SortVoteCount  SortField = "votecount"
	SortSearchRank SortField = "searchrank"
	SortName       SortField = "name"
	SortVNCount    SortField = "vn_count"
	SortCharCount  SortField = "char_count"
	SortVoted      SortField = "voted"
	SortVote       SortField = "vote"
	SortAdded      SortField = "added"
	SortLastMod    SortField = "lastmod"
	SortStarted    SortField = "started"
	SortFinished   SortField = "finished"
)

// AllSortFields lists every known sort key.
var AllSortFields = []SortField{
	SortID,
	SortTitle,
	SortReleased,
	SortRating,
	SortVoteCount,
	SortSearchRank,
	SortName,
	SortVNCount,
	SortCharCount,
	SortVoted,
	SortVote,
	SortAdded,
	SortLastMod,
	SortStarted,
	SortFinished,
}

func (VN) sortable() []SortField {
	return []SortField{SortID, SortTitle, SortReleased, SortRating, SortVoteCount, SortSearchRank}
}

func (Release) sortable() []SortField {
	return []SortField{SortID, SortTitle, SortReleased, SortSearchRank}
}

func (Producer) sortable() []SortField {
	return []SortField{SortID, SortName, SortSearchRank}
}

func (Character) sortable() []SortField {
	return []SortField{SortID, SortName, SortSearchRank}
}

func (Staff) sortable() []SortField {
	return []SortField{SortID, SortName, SortSearchRank}
}

func (Tag) sortable() []SortField {
	return []SortField{SortID, SortName, SortVNCount, SortSearchRank}
}

func (Trait) sortable() []SortField {
	return []SortField{SortID, SortName, SortCharCount, SortSearchRank}
}

func (UList) sortable() []SortField {
	return []SortField{
		SortID,
		SortTitle,
		SortReleased,
		SortRating,
		SortVoteCount,
		SortVoted,
		SortVote,
		SortAdded,
		SortLastMod,
		SortStarted,
		SortFinished,
		SortSearchRank,
	}
}

// pickSort returns requested when allowed contains it and current otherwise.
// An inapplicable choice is not an error.
func pickSort(current, requested SortField, allowed []SortField) SortField {
	if lo.Contains(allowed, requested) {
		return requested
	}
	return current
}

// ParseSortField looks a sort key up by its wire name.
func ParseSortField(name string) (SortField, bool) {
	return lo.Find(AllSortFields, func(s SortField) bool { return string(s) == name })
}
