package query

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func assertAllFields[F Selectable](declared []F) {
	csv := AllFields[F]().CSV()
	So(csv, ShouldEqual, strings.Join(paths(declared), ","))
	So(strings.HasSuffix(csv, ","), ShouldBeFalse)

	split := strings.Split(csv, ",")
	So(split, ShouldHaveLength, len(declared))
	So(lo.Uniq(split), ShouldHaveLength, len(split))
}

func TestAllFields(t *testing.T) {
	Convey("AllFields", t, func() {
		Convey("Should list every field once in declaration order", func() {
			assertAllFields(vnFields)
			assertAllFields(releaseFields)
			assertAllFields(producerFields)
			assertAllFields(characterFields)
			assertAllFields(staffFields)
			assertAllFields(tagFields)
			assertAllFields(traitFields)
			assertAllFields(ulistFields)
			assertAllFields(userFields)
			assertAllFields(labelFields)
		})

		Convey("Should start with the id", func() {
			So(AllFields[VN]().Paths()[0], ShouldEqual, VNID)
			So(AllFields[Release]().Paths()[0], ShouldEqual, ReleaseID)
		})
	})
}

func TestFieldsOf(t *testing.T) {
	Convey("FieldsOf", t, func() {
		Convey("Should keep order and duplicates", func() {
			fields := FieldsOf(VNTitle, VNID, VNTitle)
			So(fields.CSV(), ShouldEqual, "title,id,title")
			So(fields.Len(), ShouldEqual, 3)
		})

		Convey("Should not share its backing array", func() {
			selected := []Staff{StaffName, StaffLang}
			fields := FieldsOf(selected...)
			selected[0] = StaffGender
			So(fields.CSV(), ShouldEqual, "name,lang")
		})

		Convey("Should render nothing when empty", func() {
			So(NoFields[Trait]().CSV(), ShouldEqual, "")
			So(NoFields[Trait]().Len(), ShouldEqual, 0)
		})
	})
}

func TestUListFields(t *testing.T) {
	Convey("UList fields", t, func() {
		Convey("Should nest visual novel fields", func() {
			So(UListVN(VNStaffAliasesName), ShouldEqual, UList("vn.staff.aliases.name"))
			So(lo.Contains(KnownFields[UList](), "vn.staff.aliases.name"), ShouldBeTrue)
		})

		Convey("Should nest release fields", func() {
			So(UListRelease(ReleaseEngine), ShouldEqual, UList("releases.engine"))
			So(lo.Contains(KnownFields[UList](), "releases.engine"), ShouldBeTrue)
			So(lo.Contains(KnownFields[UList](), string(UListReleasesListStat)), ShouldBeTrue)
		})

		Convey("Should hold own, vn and release fields", func() {
			So(len(KnownFields[UList]()), ShouldEqual, len(ulistOwnFields)+len(vnFields)+1+len(releaseFields))
		})
	})
}

func TestParseFields(t *testing.T) {
	Convey("ParseFields", t, func() {
		Convey("Should split known from unknown names", func() {
			fields, unknown := ParseFields[Character]([]string{"name", " age ", "titel", "", "vns.role"})
			So(fields.CSV(), ShouldEqual, "name,age,vns.role")
			So(unknown, ShouldResemble, []string{"titel"})
		})

		Convey("Should not accept fields of another resource", func() {
			_, unknown := ParseFields[Producer]([]string{"title"})
			So(unknown, ShouldResemble, []string{"title"})
		})
	})
}
