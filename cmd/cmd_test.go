package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/filesystem"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/query"
)

func queryCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addQueryFlags(cmd)
	So(cmd.Flags().Parse(args), ShouldBeNil)
	return cmd
}

func body(q json.Marshaler) map[string]any {
	data, err := q.MarshalJSON()
	So(err, ShouldBeNil)

	var m map[string]any
	So(json.Unmarshal(data, &m), ShouldBeNil)
	return m
}

func TestQueryBuilderFromFlags(t *testing.T) {
	Convey("Given strict mode and a default page size", t, func() {
		viper.Set(key.CliStrict, true)
		viper.Set(key.QueryResults, 25)
		defer viper.Set(key.CliStrict, nil)
		defer viper.Set(key.QueryResults, nil)

		Convey("Every flag should end up in the query", func() {
			cmd := queryCommand(
				"--filter", `["olang","!=","en"]`,
				"--search", "Saya no Uta",
				"--fields", "title,rating",
				"--sort", "rating", "-r",
				"--results", "150", "--page", "2",
				"--count", "--compact-filters", "--normalized-filters",
			)
			b, err := queryBuilder[query.VN](cmd.Flags())
			So(err, ShouldBeNil)

			q := b.Build()
			So(query.Encode(q.Filters()), ShouldEqual, `["and",["olang","!=","en"],["search","=","Saya no Uta"]]`)
			So(q.Fields(), ShouldEqual, "title,rating")
			So(q.Sort(), ShouldEqual, query.SortRating)
			So(q.Reverse(), ShouldBeTrue)
			So(q.Results(), ShouldEqual, query.MaxResults)
			So(q.Page(), ShouldEqual, 2)
			So(q.Count() && q.CompactFilters() && q.NormalizedFilters(), ShouldBeTrue)
		})

		Convey("The configured page size should apply without --results", func() {
			b, err := queryBuilder[query.Tag](queryCommand().Flags())
			So(err, ShouldBeNil)
			q := b.Build()
			So(q.Results(), ShouldEqual, 25)
			So(q.Filters(), ShouldBeNil)
			So(body(q), ShouldNotContainKey, "fields")
		})

		Convey("A compact filter should be sent as a string", func() {
			b, err := queryBuilder[query.VN](queryCommand("--filter", "03132gja2wzw").Flags())
			So(err, ShouldBeNil)
			So(body(b.Build())["filters"], ShouldEqual, "03132gja2wzw")
		})

		Convey("A JSON filter the model can not hold should be sent as given", func() {
			b, err := queryBuilder[query.VN](queryCommand("--filter", `["olang","~","en"]`).Flags())
			So(err, ShouldBeNil)
			So(body(b.Build())["filters"], ShouldResemble, []any{"olang", "~", "en"})
		})

		Convey("A broken JSON filter should be rejected", func() {
			_, err := queryBuilder[query.VN](queryCommand("--filter", `["olang","!="`).Flags())
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown fields should be rejected with a suggestion", func() {
			_, err := queryBuilder[query.VN](queryCommand("--fields", "titel").Flags())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean")
			So(err.Error(), ShouldContainSubstring, "title")
		})

		Convey("A sort field of another resource should be rejected", func() {
			_, err := queryBuilder[query.Producer](queryCommand("--sort", "rating").Flags())
			So(err, ShouldNotBeNil)
		})

		Convey("--all-fields should select every field", func() {
			b, err := queryBuilder[query.Trait](queryCommand("-A").Flags())
			So(err, ShouldBeNil)
			So(b.Build().Fields(), ShouldEqual, query.AllFields[query.Trait]().CSV())
		})
	})

	Convey("Given lenient mode", t, func() {
		viper.Set(key.CliStrict, false)
		defer viper.Set(key.CliStrict, nil)

		Convey("Unknown fields should be sent as given", func() {
			b, err := queryBuilder[query.VN](queryCommand("--fields", "title, brand_new").Flags())
			So(err, ShouldBeNil)
			So(b.Build().Fields(), ShouldEqual, "title,brand_new")
		})

		Convey("A sort field of another resource should keep the default", func() {
			b, err := queryBuilder[query.Producer](queryCommand("--sort", "rating").Flags())
			So(err, ShouldBeNil)
			So(b.Build().Sort(), ShouldEqual, query.SortID)
		})

		Convey("A sort field nobody knows should still be rejected", func() {
			_, err := queryBuilder[query.Producer](queryCommand("--sort", "popularity").Flags())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestUListPatchFromFlags(t *testing.T) {
	Convey("Given the ulist set command", t, func() {
		patchJSON := func(args ...string) (string, error) {
			cmd := &cobra.Command{Use: "set"}
			addUListSetFlags(cmd)
			if err := cmd.Flags().Parse(args); err != nil {
				return "", err
			}

			patch, err := ulistPatch(cmd)
			if err != nil {
				return "", err
			}
			data, err := json.Marshal(patch)
			return string(data), err
		}

		Convey("Only changed flags should be sent", func() {
			data, err := patchJSON("--notes", "great")
			So(err, ShouldBeNil)
			So(data, ShouldEqual, `{"notes":"great"}`)
		})

		Convey("Dates and labels should all be kept", func() {
			data, err := patchJSON(
				"--vote", "5",
				"--started", "2024-01-02",
				"--finished", "2024-03-04",
				"--add-labels", "finished,7",
				"--remove-labels", "playing",
			)
			So(err, ShouldBeNil)
			So(data, ShouldEqual,
				`{"finished":"2024-03-04","labels_set":[2,7],"labels_unset":[1],"started":"2024-01-02","vote":10}`)
		})

		Convey("Bad dates and labels should be errors", func() {
			_, err := patchJSON("--started", "yesterday")
			So(err, ShouldNotBeNil)

			_, err = patchJSON("--labels", "favourite")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParsers(t *testing.T) {
	Convey("parseLabels", t, func() {
		ids, err := parseLabels([]string{"Playing", " wishlist ", "12"})
		So(err, ShouldBeNil)
		So(ids, ShouldResemble, []query.LabelID{query.Playing, query.WishList, 12})

		_, err = parseLabels([]string{"0"})
		So(err, ShouldNotBeNil)
	})

	Convey("parseReleaseStatus", t, func() {
		for text, want := range map[string]query.ReleaseStatus{
			"obtained": query.Obtained,
			"on loan":  query.OnLoan,
			"onloan":   query.OnLoan,
			"on-loan":  query.OnLoan,
			"4":        query.Deleted,
		} {
			status, err := parseReleaseStatus(text)
			So(err, ShouldBeNil)
			So(status, ShouldEqual, want)
		}

		_, err := parseReleaseStatus("5")
		So(err, ShouldNotBeNil)
	})

	Convey("closest", t, func() {
		suggestion, ok := closest("api.tokn", []string{"api.token", "logs.json", "cli.colored"})
		So(ok, ShouldBeTrue)
		So(suggestion, ShouldEqual, "api.token")

		_, ok = closest("x", nil)
		So(ok, ShouldBeFalse)
	})

	Convey("matchFields", t, func() {
		matches := matchFields("staf", query.KnownFields[query.VN]())
		So(matches, ShouldNotBeEmpty)
		So(matches[0], ShouldStartWith, "staff.")
	})
}

func TestResources(t *testing.T) {
	Convey("Resources", t, func() {
		Convey("Every queryable resource should be searchable", func() {
			So(resourceNames(true), ShouldResemble,
				[]string{"character", "producer", "release", "staff", "tag", "trait", "vn"})
		})

		Convey("The list resources should only be described", func() {
			_, err := lookupResource("ulist", true)
			So(err, ShouldNotBeNil)

			r, err := lookupResource("ULIST", false)
			So(err, ShouldBeNil)
			So(r.fields, ShouldResemble, query.KnownFields[query.UList]())
		})

		Convey("Unknown resources should get a suggestion", func() {
			_, err := lookupResource("chracter", true)
			So(err.Error(), ShouldContainSubstring, "character")
		})
	})
}

type failingCloseFs struct{ afero.Fs }

func (fs failingCloseFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return failingCloseFile{file}, nil
}

type failingCloseFile struct{ afero.File }

func (failingCloseFile) Close() error { return errors.New("disk full") }

func TestPrintJSON(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		cmd := &cobra.Command{Use: "test"}
		addOutputFlag(cmd)

		response := query.Response[map[string]string]{
			Results: []map[string]string{{"id": "v17", "title": "<Ever17>"}},
			More:    true,
		}

		Convey("Stdout should get one compact line", func() {
			var out bytes.Buffer
			cmd.SetOut(&out)

			So(printJSON(cmd, response), ShouldBeNil)
			So(out.String(), ShouldEqual, `{"results":[{"id":"v17","title":"<Ever17>"}],"more":true}`+"\n")
		})

		Convey("--output should write the file and create its directory", func() {
			viper.Set(key.OutputPretty, true)
			defer viper.Set(key.OutputPretty, nil)

			So(cmd.Flags().Parse([]string{"-o", "out/vn.json"}), ShouldBeNil)
			So(printJSON(cmd, response), ShouldBeNil)

			data, err := filesystem.API().ReadFile("out/vn.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldStartWith, "{\n  \"results\": [")
		})

		Convey("A file that fails to close should be an error", func() {
			filesystem.SetFs(failingCloseFs{afero.NewMemMapFs()})

			So(cmd.Flags().Parse([]string{"-o", "vn.json"}), ShouldBeNil)
			err := printJSON(cmd, response)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "disk full")
		})
	})
}
