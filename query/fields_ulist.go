package query

// List entry fields. Fields of the listed visual novel and of its releases are
// nested under "vn." and "releases."; see UListVN and UListRelease.
const (
	UListID               UList = "id"
	UListAdded            UList = "added"
	UListVoted            UList = "voted"
	UListLastMod          UList = "lastmod"
	UListVote             UList = "vote"
	UListStarted          UList = "started"
	UListFinished         UList = "finished"
	UListNotes            UList = "notes"
	UListLabelsID         UList = "labels.id"
	UListLabelsLabel      UList = "labels.label"
	UListReleasesListStat UList = "releases.list_status"
)

var ulistOwnFields = []UList{
	UListID,
	UListAdded,
	UListVoted,
	UListLastMod,
	UListVote,
	UListStarted,
	UListFinished,
	UListNotes,
	UListLabelsID,
	UListLabelsLabel,
}

var ulistFields = func() []UList {
	fields := append([]UList(nil), ulistOwnFields...)
	fields = append(fields, prefixed[VN, UList]("vn.", vnFields)...)
	fields = append(fields, UListReleasesListStat)
	return append(fields, prefixed[Release, UList]("releases.", releaseFields)...)
}()

func (UList) fieldPaths() []string { return paths(ulistFields) }

// UListVN selects a field of the listed visual novel, e.g. UListVN(VNTitle) is "vn.title".
func UListVN(field VN) UList {
	return UList("vn." + string(field))
}

// UListRelease selects a field of the user's releases of the listed visual novel.
func UListRelease(field Release) UList {
	return UList("releases." + string(field))
}

// User lookup fields. The id and username are always returned.
const (
	UserLengthVotes    User = "lengthvotes"
	UserLengthVotesSum User = "lengthvotes_sum"
)

var userFields = []User{UserLengthVotes, UserLengthVotesSum}

func (User) fieldPaths() []string { return paths(userFields) }

// Label lookup fields. The id, private flag and label name are always returned.
const LabelCount Label = "count"

var labelFields = []Label{LabelCount}

func (Label) fieldPaths() []string { return paths(labelFields) }
