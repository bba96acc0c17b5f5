package query

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vnkit/vnkit/util"
)

const (
	MinVote = 10
	MaxVote = 100
)

// LabelID identifies a list label. Ids 1 to 6 are the built-in labels, user
// defined labels have ids from 10 up.
type LabelID int

const (
	Playing   LabelID = 1
	Finished  LabelID = 2
	Stalled   LabelID = 3
	Dropped   LabelID = 4
	WishList  LabelID = 5
	BlackList LabelID = 6
)

// Date is a calendar date as the list endpoints accept it. It is not
// checked for validity.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate reads a YYYY-MM-DD date. Like Date itself it does not check that
// the day exists.
func ParseDate(text string) (Date, error) {
	var (
		d    Date
		rest string
	)
	n, _ := fmt.Sscanf(text, "%d-%d-%d%s", &d.Year, &d.Month, &d.Day, &rest)
	if n != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", text)
	}

	return d, nil
}

// UListPatch is the body of PATCH /ulist/<id>. Only the fields that were set
// are sent; everything else is left unchanged on the server.
type UListPatch struct {
	vote        mo.Option[int]
	notes       mo.Option[string]
	started     mo.Option[Date]
	finished    mo.Option[Date]
	labels      mo.Option[[]LabelID]
	labelsSet   mo.Option[[]LabelID]
	labelsUnset mo.Option[[]LabelID]
}

// UListPatchBuilder stages a UListPatch. Like QueryBuilder, its setters
// return modified copies.
type UListPatchBuilder struct {
	patch UListPatch
}

// NewUListPatch starts an empty patch.
func NewUListPatch() UListPatchBuilder {
	return UListPatchBuilder{}
}

// Vote sets the vote, clamped to [MinVote, MaxVote].
func (b UListPatchBuilder) Vote(n int) UListPatchBuilder {
	b.patch.vote = mo.Some(util.Clamp(n, MinVote, MaxVote))
	return b
}

func (b UListPatchBuilder) Notes(notes string) UListPatchBuilder {
	b.patch.notes = mo.Some(notes)
	return b
}

func (b UListPatchBuilder) Started(d Date) UListPatchBuilder {
	b.patch.started = mo.Some(d)
	return b
}

func (b UListPatchBuilder) Finished(d Date) UListPatchBuilder {
	b.patch.finished = mo.Some(d)
	return b
}

// Labels replaces every label of the entry.
func (b UListPatchBuilder) Labels(ids ...LabelID) UListPatchBuilder {
	b.patch.labels = mo.Some(cloneLabels(ids))
	return b
}

// LabelsSet adds labels, keeping the others.
func (b UListPatchBuilder) LabelsSet(ids ...LabelID) UListPatchBuilder {
	b.patch.labelsSet = mo.Some(cloneLabels(ids))
	return b
}

// LabelsUnset removes labels, keeping the others.
func (b UListPatchBuilder) LabelsUnset(ids ...LabelID) UListPatchBuilder {
	b.patch.labelsUnset = mo.Some(cloneLabels(ids))
	return b
}

// Build returns the staged patch.
func (b UListPatchBuilder) Build() UListPatch {
	return b.patch
}

func (p UListPatch) Vote() mo.Option[int]         { return p.vote }
func (p UListPatch) Notes() mo.Option[string]     { return p.notes }
func (p UListPatch) Started() mo.Option[Date]     { return p.started }
func (p UListPatch) Finished() mo.Option[Date]    { return p.finished }
func (p UListPatch) Labels() mo.Option[[]LabelID] { return p.labels }

// IsEmpty reports whether the patch would change nothing.
func (p UListPatch) IsEmpty() bool {
	return !lo.Contains([]bool{
		p.vote.IsPresent(),
		p.notes.IsPresent(),
		p.started.IsPresent(),
		p.finished.IsPresent(),
		p.labels.IsPresent(),
		p.labelsSet.IsPresent(),
		p.labelsUnset.IsPresent(),
	}, true)
}

// MarshalJSON renders only the fields that were set. None of them is ever null.
func (p UListPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any)

	if vote, ok := p.vote.Get(); ok {
		body["vote"] = vote
	}
	if notes, ok := p.notes.Get(); ok {
		body["notes"] = notes
	}
	if started, ok := p.started.Get(); ok {
		body["started"] = started.String()
	}
	if finished, ok := p.finished.Get(); ok {
		body["finished"] = finished.String()
	}
	if labels, ok := p.labels.Get(); ok {
		body["labels"] = labels
	}
	if labels, ok := p.labelsSet.Get(); ok {
		body["labels_set"] = labels
	}
	if labels, ok := p.labelsUnset.Get(); ok {
		body["labels_unset"] = labels
	}

	return marshal(body)
}

// ReleaseStatus is the status of a release in a user's release list.
type ReleaseStatus int

const (
	Unknown ReleaseStatus = iota
	Pending
	Obtained
	OnLoan
	Deleted
)

func (s ReleaseStatus) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Pending:
		return "pending"
	case Obtained:
		return "obtained"
	case OnLoan:
		return "on loan"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("ReleaseStatus(%d)", int(s))
	}
}

// RListPatch is the body of PATCH /rlist/<id>. The zero value sets the status to Unknown.
type RListPatch struct {
	Status ReleaseStatus `json:"status"`
}

// cloneLabels never returns nil so that an emptied label set encodes as [].
func cloneLabels(ids []LabelID) []LabelID {
	return append([]LabelID{}, ids...)
}
