package vndb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vnkit/vnkit/query"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	agent  string
	ctype  string
	body   string
}

func serve(status int, reply string) (*httptest.Server, *recorded) {
	rec := new(recorded)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*rec = recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			agent:  r.Header.Get("User-Agent"),
			ctype:  r.Header.Get("Content-Type"),
			body:   string(body),
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	return server, rec
}

func TestClientSearch(t *testing.T) {
	Convey("Given a server answering a vn query", t, func() {
		server, rec := serve(http.StatusOK,
			`{"results":[{"id":"v17","title":"Ever17","rating":87.5},{"id":"v2002","title":"Remember11"}],"more":true,"count":2}`)
		defer server.Close()

		client := New(WithEndpoint(server.URL+"/"), WithUserAgent("test/1"))
		q := query.New[query.VN]().
			Filters(query.And(query.Where("olang", query.Ne, "en"), query.Where("released", query.Ge, "2020-01-01"))).
			Fields(query.FieldsOf(query.VNTitle, query.VNRating)).
			Count().
			Build()

		r, err := client.VN(context.Background(), q)

		Convey("Should post the query body", func() {
			So(err, ShouldBeNil)
			So(rec.method, ShouldEqual, http.MethodPost)
			So(rec.path, ShouldEqual, "/vn")
			So(rec.ctype, ShouldEqual, "application/json")
			So(rec.agent, ShouldEqual, "test/1")
			So(rec.auth, ShouldBeEmpty)

			expected, _ := q.MarshalJSON()
			So(rec.body, ShouldEqual, string(expected)+"\n")
			So(rec.body, ShouldContainSubstring, `["released",">=","2020-01-01"]`)
		})

		Convey("Should decode the page in order", func() {
			So(r.Results, ShouldHaveLength, 2)
			So(r.Results[0].ID, ShouldEqual, "v17")
			So(*r.Results[0].Rating, ShouldEqual, 87.5)
			So(r.Results[1].Rating, ShouldBeNil)
			So(r.More, ShouldBeTrue)
			So(r.Count.OrEmpty(), ShouldEqual, 2)
			So(r.CompactFilters.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a token", t, func() {
		server, rec := serve(http.StatusOK, `{"results":[{"id":"v17","vote":90,"labels":[{"id":2,"label":"Finished"}]}],"more":false}`)
		defer server.Close()

		client := New(WithEndpoint(server.URL), WithToken(" abcd-efgh "))
		So(client.Authenticated(), ShouldBeTrue)

		r, err := client.UList(context.Background(), query.New[query.UList]().User("u2").Build())

		Convey("Should authenticate and decode list entries", func() {
			So(err, ShouldBeNil)
			So(rec.auth, ShouldEqual, "token abcd-efgh")
			So(rec.path, ShouldEqual, "/ulist")
			So(*r.Results[0].Vote, ShouldEqual, 90)
			So(r.Results[0].Labels[0].ID, ShouldEqual, query.Finished)
		})
	})
}

func TestClientErrors(t *testing.T) {
	Convey("Given a server rejecting the request", t, func() {
		server, _ := serve(http.StatusTooManyRequests, "Throttled.\n")
		defer server.Close()

		_, err := New(WithEndpoint(server.URL)).Tags(context.Background(), query.New[query.Tag]().Build())

		Convey("Should return the status and body", func() {
			var apiErr *APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.StatusCode, ShouldEqual, http.StatusTooManyRequests)
			So(apiErr.Message, ShouldEqual, "Throttled.\n")
			So(IsThrottled(err), ShouldBeTrue)
			So(IsUnauthorized(err), ShouldBeFalse)
			So(err.Error(), ShouldEqual, "vndb: 429: Throttled.")
		})
	})

	Convey("Given a server sending garbage", t, func() {
		server, _ := serve(http.StatusOK, `{"results":`)
		defer server.Close()

		_, err := New(WithEndpoint(server.URL)).Stats(context.Background())

		Convey("Should report a decode failure", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "vndb stats: decode:")
		})
	})

	Convey("Given a cancelled context", t, func() {
		server, _ := serve(http.StatusOK, `{}`)
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(WithEndpoint(server.URL)).Stats(ctx)

		Convey("Should fail with the context error", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("An empty status body should fall back to the status text", t, func() {
		err := &APIError{StatusCode: http.StatusNotFound}
		So(err.Error(), ShouldEqual, "vndb: 404: Not Found")
		So(IsNotFound(err), ShouldBeTrue)
	})
}

func TestClientLookups(t *testing.T) {
	Convey("Users", t, func() {
		server, rec := serve(http.StatusOK, `{"NoUserWithThisNameExists":null,"u1":{"id":"u1","username":"yorhel","lengthvotes":10}}`)
		defer server.Close()

		users, err := New(WithEndpoint(server.URL)).Users(context.Background(),
			[]string{"NoUserWithThisNameExists", "u1"}, query.AllFields[query.User]())

		So(err, ShouldBeNil)
		So(rec.method, ShouldEqual, http.MethodGet)
		So(rec.path, ShouldEqual, "/user")
		So(rec.query, ShouldEqual, "fields=lengthvotes%2Clengthvotes_sum&q=NoUserWithThisNameExists&q=u1")
		So(users["NoUserWithThisNameExists"], ShouldBeNil)
		So(users["u1"].Username, ShouldEqual, "yorhel")
		So(*users["u1"].LengthVotes, ShouldEqual, 10)
		So(users["u1"].LengthVotesSum, ShouldBeNil)

		_, err = New(WithEndpoint(server.URL)).Users(context.Background(), nil, query.NoFields[query.User]())
		So(err, ShouldEqual, ErrNoUsers)
	})

	Convey("UListLabels", t, func() {
		server, rec := serve(http.StatusOK, `{"labels":[{"id":1,"private":false,"label":"Playing","count":3}]}`)
		defer server.Close()

		labels, err := New(WithEndpoint(server.URL)).UListLabels(context.Background(), "u2", query.AllFields[query.Label]())
		So(err, ShouldBeNil)
		So(rec.query, ShouldEqual, "fields=count&user=u2")
		So(labels.Labels[0].ID, ShouldEqual, query.Playing)
		So(*labels.Labels[0].Count, ShouldEqual, 3)
	})

	Convey("AuthInfo", t, func() {
		server, rec := serve(http.StatusOK, `{"id":"u2","username":"ayo","permissions":["listread"]}`)
		defer server.Close()

		info, err := New(WithEndpoint(server.URL), WithToken("t")).AuthInfo(context.Background())
		So(err, ShouldBeNil)
		So(rec.path, ShouldEqual, "/authinfo")
		So(rec.auth, ShouldEqual, "token t")
		So(info.Can(PermissionListRead), ShouldBeTrue)
		So(info.Can(PermissionListWrite), ShouldBeFalse)
	})
}

func TestClientLists(t *testing.T) {
	Convey("Given a list endpoint", t, func() {
		server, rec := serve(http.StatusNoContent, "")
		defer server.Close()

		client := New(WithEndpoint(server.URL), WithToken("t"))
		ctx := context.Background()

		Convey("PatchUList should send only the set fields", func() {
			err := client.PatchUList(ctx, "v17", query.NewUListPatch().Notes("great").Build())
			So(err, ShouldBeNil)
			So(rec.method, ShouldEqual, http.MethodPatch)
			So(rec.path, ShouldEqual, "/ulist/v17")
			So(rec.body, ShouldEqual, `{"notes":"great"}`+"\n")
		})

		Convey("RemoveUList should send no body", func() {
			So(client.RemoveUList(ctx, "v17"), ShouldBeNil)
			So(rec.method, ShouldEqual, http.MethodDelete)
			So(rec.body, ShouldBeEmpty)
			So(rec.ctype, ShouldBeEmpty)
		})

		Convey("PatchRList should always send the status", func() {
			So(client.PatchRList(ctx, "r12", query.RListPatch{Status: query.Obtained}), ShouldBeNil)
			So(rec.path, ShouldEqual, "/rlist/r12")
			So(rec.body, ShouldEqual, `{"status":2}`+"\n")
		})

		Convey("RemoveRList should hit the release", func() {
			So(client.RemoveRList(ctx, "r12"), ShouldBeNil)
			So(rec.method, ShouldEqual, http.MethodDelete)
			So(rec.path, ShouldEqual, "/rlist/r12")
		})
	})
}

func TestRecords(t *testing.T) {
	Convey("Resolution", t, func() {
		var release Release
		So(json.Unmarshal([]byte(`{"id":"r1","resolution":[1280,720]}`), &release), ShouldBeNil)
		So(release.Resolution.String(), ShouldEqual, "1280x720")

		So(json.Unmarshal([]byte(`{"id":"r2","resolution":"non-standard"}`), &release), ShouldBeNil)
		So(release.Resolution.NonStandard, ShouldBeTrue)

		data, err := json.Marshal(Resolution{Width: 640, Height: 480})
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `[640,480]`)

		So(json.Unmarshal([]byte(`{"resolution":[1]}`), &release), ShouldNotBeNil)
	})

	Convey("Nested relations should flatten", t, func() {
		var vn VisualNovel
		So(json.Unmarshal([]byte(`{"id":"v1","relations":[{"relation":"seq","relation_official":true,"id":"v2","title":"Two"}],"extlinks":[{"url":"u","label":"l","name":"n","id":42}]}`), &vn), ShouldBeNil)
		So(vn.Relations[0].Relation, ShouldEqual, "seq")
		So(vn.Relations[0].ID, ShouldEqual, "v2")
		So(vn.Relations[0].Title, ShouldEqual, "Two")
		So(vn.ExtLinks[0].ID, ShouldEqual, float64(42))
	})

	Convey("DevStatus should name itself", t, func() {
		So(DevInProgress.String(), ShouldEqual, "in development")
	})
}
