package vndb

import "github.com/vnkit/vnkit/query"

// UListEntry is a record returned by the ulist endpoint.
type UListEntry struct {
	ID       string         `json:"id" jsonschema:"description=VNDB id of the visual novel."`
	Added    int64          `json:"added,omitempty" jsonschema:"description=Unix timestamp of when the entry was added."`
	Voted    *int64         `json:"voted,omitempty" jsonschema:"description=Unix timestamp of the vote."`
	LastMod  int64          `json:"lastmod,omitempty" jsonschema:"description=Unix timestamp of the last change."`
	Vote     *int           `json:"vote,omitempty" jsonschema:"minimum=10,maximum=100"`
	Started  string         `json:"started,omitempty" jsonschema:"description=Start date in YYYY-MM-DD form."`
	Finished string         `json:"finished,omitempty" jsonschema:"description=Finish date in YYYY-MM-DD form."`
	Notes    string         `json:"notes,omitempty"`
	Labels   []UListLabel   `json:"labels,omitempty" jsonschema:"description=Labels on this entry. Private labels need authentication."`
	VN       *VisualNovel   `json:"vn,omitempty"`
	Releases []UListRelease `json:"releases,omitempty"`
}

// UListLabel is a label attached to a list entry.
type UListLabel struct {
	ID    query.LabelID `json:"id"`
	Label string        `json:"label"`
}

// UListRelease is a release on the user's list.
type UListRelease struct {
	ListStatus query.ReleaseStatus `json:"list_status" jsonschema:"enum=0,enum=1,enum=2,enum=3,enum=4"`
	Release
}

// UListLabels is the answer of the ulist_labels endpoint.
type UListLabels struct {
	Labels []LabelInfo `json:"labels"`
}

// LabelInfo describes one label of a user.
type LabelInfo struct {
	ID      query.LabelID `json:"id"`
	Private bool          `json:"private" jsonschema:"description=Private labels are only listed with the listread permission."`
	Label   string        `json:"label"`
	Count   *int          `json:"count,omitempty" jsonschema:"description=Number of entries with this label."`
}
