package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Backend", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestCreate(t *testing.T) {
	Convey("Given an empty in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("Create should make the parent directories", func() {
			file, err := Create("/out/pages/vn.json")
			So(err, ShouldBeNil)
			_, err = file.WriteString("[]")
			So(err, ShouldBeNil)
			So(file.Close(), ShouldBeNil)

			isDir, err := API().IsDir("/out/pages")
			So(err, ShouldBeNil)
			So(isDir, ShouldBeTrue)
		})

		Convey("Create should truncate an existing file", func() {
			So(API().WriteFile("/vn.json", []byte("long content"), 0o644), ShouldBeNil)

			file, err := Create("/vn.json")
			So(err, ShouldBeNil)
			_, _ = file.WriteString("{}")
			So(file.Close(), ShouldBeNil)

			data, err := API().ReadFile("/vn.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})

		Convey("GacheFs should write to the active backend", func() {
			So(GacheFs{}.MkdirAll("/cache", os.ModePerm), ShouldBeNil)
			f, err := GacheFs{}.OpenFile("/cache/version.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, _ := API().Exists("/cache/version.json")
			So(exists, ShouldBeTrue)
		})
	})
}
