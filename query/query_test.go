package query

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func decode(t *testing.T, v json.Marshaler) map[string]any {
	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	return body
}

func TestQueryBuilderDefaults(t *testing.T) {
	Convey("Given a fresh builder", t, func() {
		q := New[VN]().Build()

		Convey("Should use the API defaults", func() {
			So(q.Sort(), ShouldEqual, SortID)
			So(q.Reverse(), ShouldBeFalse)
			So(q.Results(), ShouldEqual, DefaultResults)
			So(q.Page(), ShouldEqual, 1)
			So(q.User().IsAbsent(), ShouldBeTrue)
			So(q.Count(), ShouldBeFalse)
			So(q.CompactFilters(), ShouldBeFalse)
			So(q.NormalizedFilters(), ShouldBeFalse)
			So(q.Filters(), ShouldBeNil)
			So(q.Fields(), ShouldEqual, "")
		})

		Convey("Should leave unset keys out of the body", func() {
			body := decode(t, q)
			So(body, ShouldNotContainKey, "filters")
			So(body, ShouldNotContainKey, "fields")
			So(body, ShouldNotContainKey, "user")
			So(body["sort"], ShouldEqual, "id")
			So(body["results"], ShouldEqual, 10)
			So(body["page"], ShouldEqual, 1)
		})

		Convey("Should know its endpoint", func() {
			So(q.Endpoint(), ShouldEqual, "vn")
			So(New[UList]().Build().Endpoint(), ShouldEqual, "ulist")
		})
	})
}

func TestQueryBuilderResults(t *testing.T) {
	Convey("Results", t, func() {
		Convey("Should clamp the page size", func() {
			So(New[VN]().Results(150).Build().Results(), ShouldEqual, 100)
			So(New[VN]().Results(255).Build().Results(), ShouldEqual, 100)
			So(New[VN]().Results(0).Build().Results(), ShouldEqual, 0)
			So(New[VN]().Results(-4).Build().Results(), ShouldEqual, 0)
			So(New[VN]().Results(42).Build().Results(), ShouldEqual, 42)
		})

		Convey("Should not touch the page", func() {
			So(New[Tag]().Page(0).Build().Page(), ShouldEqual, 0)
			So(New[Tag]().Page(9000).Build().Page(), ShouldEqual, 9000)
		})

		Convey("Should send page 0 instead of leaving it to the server", func() {
			body := decode(t, New[VN]().Page(0).Build())
			So(body, ShouldContainKey, "page")
			So(body["page"], ShouldEqual, 0)
		})
	})
}

func TestQueryBuilderSort(t *testing.T) {
	Convey("Sort", t, func() {
		Convey("Should accept a whitelisted field", func() {
			So(New[VN]().Sort(SortRating).Build().Sort(), ShouldEqual, SortRating)
			So(New[Tag]().Sort(SortVNCount).Build().Sort(), ShouldEqual, SortVNCount)
			So(New[UList]().Sort(SortLastMod).Build().Sort(), ShouldEqual, SortLastMod)
		})

		Convey("Should ignore a field the resource can not sort by", func() {
			q := New[Producer]().Sort(SortRating).Build()
			So(q.Sort(), ShouldEqual, SortID)
			So(decode(t, q)["sort"], ShouldEqual, "id")
		})

		Convey("Should keep an earlier valid choice", func() {
			q := New[Character]().Sort(SortName).Sort(SortReleased).Build()
			So(q.Sort(), ShouldEqual, SortName)
		})
	})
}

func TestQueryBuilderFlags(t *testing.T) {
	Convey("Flags", t, func() {
		Convey("Reverse should be idempotent", func() {
			once := New[VN]().Reverse().Build()
			twice := New[VN]().Reverse().Reverse().Build()
			So(once, ShouldResemble, twice)
			So(once.Reverse(), ShouldBeTrue)
		})

		Convey("User should be accepted by every resource", func() {
			So(New[UList]().User("u2").Build().User().OrEmpty(), ShouldEqual, "u2")
			So(New[VN]().User("u2").Build().User().OrEmpty(), ShouldEqual, "u2")
		})

		Convey("An empty user should still be sent once set", func() {
			body := decode(t, New[UList]().User("").Build())
			So(body, ShouldContainKey, "user")
			So(body["user"], ShouldEqual, "")
		})
	})
}

func TestQueryBuilderCopies(t *testing.T) {
	Convey("Given a builder used twice", t, func() {
		base := New[Release]().Filters(Where("platform", Eq, "win"))
		first := base.Results(5).Build()
		second := base.Filters(Where("platform", Eq, "lin")).Build()

		Convey("Each query should only see its own changes", func() {
			So(first.Results(), ShouldEqual, 5)
			So(Encode(first.Filters()), ShouldEqual, `["platform","=","win"]`)
			So(second.Results(), ShouldEqual, DefaultResults)
			So(Encode(second.Filters()), ShouldEqual, `["platform","=","lin"]`)
		})
	})
}

func TestQueryMarshal(t *testing.T) {
	Convey("Given a query with every field set", t, func() {
		q := New[UList]().
			Filters(And(Where("label", Eq, int(Playing)), Where("vote", Ge, 80))).
			Fields(FieldsOf(UListVote, UListVN(VNTitle), UListLabelsLabel)).
			Sort(SortVote).
			Reverse().
			Results(25).
			Page(3).
			User("u2").
			Count().
			CompactFilters().
			NormalizedFilters().
			Build()

		Convey("Should render the exact body", func() {
			data, err := q.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				`{"filters":["and",["label","=",1],["vote",">=",80]],`+
					`"fields":"vote,vn.title,labels.label","sort":"vote","reverse":true,`+
					`"results":25,"page":3,"user":"u2","count":true,`+
					`"compact_filters":true,"normalized_filters":true}`)
		})

		Convey("Should embed raw filters", func() {
			body := decode(t, New[VN]().RawFilters("03132gja2wzw").Build())
			So(body["filters"], ShouldEqual, "03132gja2wzw")
		})
	})
}
