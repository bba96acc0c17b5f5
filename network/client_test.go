package network

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		Convey("Should apply the timeout", func() {
			So(NewClient(5*time.Second).Timeout, ShouldEqual, 5*time.Second)
		})

		Convey("Should treat a negative timeout as none", func() {
			So(NewClient(-time.Second).Timeout, ShouldEqual, time.Duration(0))
		})

		Convey("Should not share the default transport", func() {
			So(NewClient(time.Second).Transport, ShouldNotEqual, Client.Transport)
		})
	})
}
