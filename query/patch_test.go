package query

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUListPatch(t *testing.T) {
	Convey("UListPatch", t, func() {
		Convey("Should clamp the vote", func() {
			vote := func(n int) int { return NewUListPatch().Vote(n).Build().Vote().OrEmpty() }
			So(vote(5), ShouldEqual, 10)
			So(vote(97), ShouldEqual, 97)
			So(vote(200), ShouldEqual, 100)
		})

		Convey("Should only send notes when only notes are set", func() {
			data, err := json.Marshal(NewUListPatch().Notes("finally").Build())
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"notes":"finally"}`)
		})

		Convey("Should send an empty object when nothing is set", func() {
			p := NewUListPatch().Build()
			data, err := json.Marshal(p)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{}`)
			So(p.IsEmpty(), ShouldBeTrue)
		})

		Convey("Should render every set field", func() {
			p := NewUListPatch().
				Vote(85).
				Started(Date{Year: 2023, Month: 4, Day: 1}).
				Finished(Date{Year: 2023, Month: 12, Day: 24}).
				LabelsSet(Finished).
				LabelsUnset(Playing, Stalled).
				Build()

			data, err := json.Marshal(p)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				`{"finished":"2023-12-24","labels_set":[2],"labels_unset":[1,3],"started":"2023-04-01","vote":85}`)
			So(p.IsEmpty(), ShouldBeFalse)
		})

		Convey("Should send an empty label set as an array", func() {
			data, err := json.Marshal(NewUListPatch().Labels().Build())
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"labels":[]}`)
		})

		Convey("Should leave earlier builders alone", func() {
			base := NewUListPatch().Notes("a")
			_ = base.Vote(50)
			So(base.Build().Vote().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestDate(t *testing.T) {
	Convey("Date", t, func() {
		Convey("Should zero pad", func() {
			So(Date{Year: 999, Month: 1, Day: 2}.String(), ShouldEqual, "0999-01-02")
		})

		Convey("Should not check the calendar", func() {
			So(Date{Year: 2024, Month: 13, Day: 32}.String(), ShouldEqual, "2024-13-32")
		})

		Convey("Should parse its own form", func() {
			d, err := ParseDate("2021-07-09")
			So(err, ShouldBeNil)
			So(d, ShouldResemble, Date{Year: 2021, Month: 7, Day: 9})
		})

		Convey("Should reject other forms", func() {
			for _, text := range []string{"", "2021", "2021-07", "yesterday", "2021-07-09x"} {
				_, err := ParseDate(text)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestRListPatch(t *testing.T) {
	Convey("RListPatch", t, func() {
		Convey("Should always send the status", func() {
			data, err := json.Marshal(RListPatch{})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"status":0}`)

			data, err = json.Marshal(RListPatch{Status: Obtained})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"status":2}`)
		})

		Convey("Should name statuses", func() {
			So(OnLoan.String(), ShouldEqual, "on loan")
			So(ReleaseStatus(9).String(), ShouldEqual, "ReleaseStatus(9)")
		})
	})
}
