package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/filesystem"
	"github.com/vnkit/vnkit/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.APIEndpoint), ShouldEqual, "https://api.vndb.org/kana")
			So(viper.GetInt(key.QueryResults), ShouldEqual, 10)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should read values from the environment", func() {
			t.Setenv("VNKIT_API_TOKEN", "abcd-efgh")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.APIToken), ShouldEqual, "abcd-efgh")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("api.user_agent"), ShouldEqual, "api_user_agent")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env should carry the application prefix", func() {
			f := Default[key.APITimeout]
			So(f.Env(), ShouldEqual, "VNKIT_API_TIMEOUT")
		})

		Convey("Parse should follow the default's type", func() {
			timeout := Default[key.APITimeout]
			v, err := timeout.Parse("30")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			_, err = timeout.Parse("soon")
			So(err, ShouldNotBeNil)

			pretty := Default[key.OutputPretty]
			v, err = pretty.Parse("false")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			_, err = pretty.Parse()
			So(err, ShouldNotBeNil)
		})
	})
}
