package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"fightgate/internal/adapters/http/api"
	"fightgate/internal/adapters/upstream"
	"fightgate/internal/app"
	"fightgate/internal/app/schema"
	"fightgate/internal/payment"
)

// stubDeps fakes the service behind the HTTP surface.
type stubDeps struct {
	dispatch func(ctx context.Context, key string, raw map[string]any) (any, error)
	catalog  []app.Descriptor
	stats    map[string]any
}

func (d *stubDeps) Dispatch(ctx context.Context, key string, raw map[string]any) (any, error) {
	return d.dispatch(ctx, key, raw)
}

func (d *stubDeps) Catalog() []app.Descriptor { return d.catalog }

func (d *stubDeps) GetStats() map[string]any { return d.stats }

func serve(router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDispatchEndpoint(t *testing.T) {
	Convey("Given the gateway HTTP surface", t, func() {
		var gotKey string
		var gotRaw map[string]any
		deps := &stubDeps{
			dispatch: func(_ context.Context, key string, raw map[string]any) (any, error) {
				gotKey = key
				gotRaw = raw
				return map[string]any{"ok": true}, nil
			},
		}
		router := api.NewServer(deps).Router()

		Convey("When posting a JSON object body", func() {
			rec := serve(router, http.MethodPost, "/entrypoints/search", `{"query":"aspinall"}`)

			Convey("Then the key and input reach the service and the output returns", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
				So(gotKey, ShouldEqual, "search")
				So(gotRaw, ShouldResemble, map[string]any{"query": "aspinall"})

				var payload map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &payload), ShouldBeNil)
				So(payload["ok"], ShouldEqual, true)
			})
		})

		Convey("When posting with an empty body", func() {
			rec := serve(router, http.MethodPost, "/entrypoints/overview", "")

			Convey("Then the service sees an empty input object", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(gotRaw, ShouldResemble, map[string]any{})
			})
		})

		Convey("When posting a body that is not a JSON object", func() {
			rec := serve(router, http.MethodPost, "/entrypoints/overview", `[1,2]`)

			Convey("Then the request is rejected before dispatch", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "bad_request")
				So(gotKey, ShouldBeEmpty)
			})
		})
	})
}

func TestDispatchErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown entrypoint", fmt.Errorf("%w: nope", app.ErrEntrypointNotFound), http.StatusNotFound, "not_found"},
		{"invalid input", fmt.Errorf("entrypoint event: %w: missing eventId", schema.ErrValidation), http.StatusBadRequest, "invalid_input"},
		{"payment declined", fmt.Errorf("%w: balance too low", payment.ErrDeclined), http.StatusPaymentRequired, "payment_required"},
		{"upstream failure", &upstream.StatusError{Status: 503, Body: "down"}, http.StatusBadGateway, "upstream_error"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	Convey("Given a service failing dispatch", t, func() {
		for _, tc := range cases {
			Convey("When the failure is "+tc.name, func() {
				deps := &stubDeps{
					dispatch: func(context.Context, string, map[string]any) (any, error) {
						return nil, tc.err
					},
				}
				rec := serve(api.NewServer(deps).Router(), http.MethodPost, "/entrypoints/event", `{}`)

				Convey("Then the status and code follow the taxonomy", func() {
					So(rec.Code, ShouldEqual, tc.wantStatus)

					var resp map[string]any
					So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
					So(resp["code"], ShouldEqual, tc.wantCode)
					So(resp["message"], ShouldNotBeEmpty)
				})
			})
		}
	})
}

func TestCatalogEndpoint(t *testing.T) {
	Convey("Given a service with a two-operation catalog", t, func() {
		deps := &stubDeps{
			catalog: []app.Descriptor{
				{
					Key:         "overview",
					Description: "List all events",
					Schema:      schema.New(),
				},
				{
					Key:         "event",
					Description: "Full detail for one event",
					Schema:      schema.New(schema.RequiredString("eventId")),
					Price:       1000,
				},
			},
		}
		router := api.NewServer(deps, api.WithBaseURL("https://fightgate.example.com")).Router()

		Convey("When fetching the well-known document", func() {
			rec := serve(router, http.MethodGet, "/.well-known/catalog.json", "")

			Convey("Then the document publishes keys, prices and input schemas", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var doc struct {
					Name        string `json:"name"`
					BaseURL     string `json:"baseURL"`
					Entrypoints []struct {
						Key         string         `json:"key"`
						Price       int64          `json:"price"`
						InputSchema map[string]any `json:"inputSchema"`
					} `json:"entrypoints"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &doc), ShouldBeNil)
				So(doc.Name, ShouldEqual, "fightgate")
				So(doc.BaseURL, ShouldEqual, "https://fightgate.example.com")
				So(doc.Entrypoints, ShouldHaveLength, 2)
				So(doc.Entrypoints[0].Key, ShouldEqual, "overview")
				So(doc.Entrypoints[1].Price, ShouldEqual, 1000)

				props, ok := doc.Entrypoints[1].InputSchema["properties"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(props, ShouldContainKey, "eventId")
			})
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the gateway HTTP surface", t, func() {
		deps := &stubDeps{
			stats: map[string]any{"entrypoints": 9, "ledgerTransactions": 3},
		}
		router := api.NewServer(deps).Router()

		Convey("When fetching stats", func() {
			rec := serve(router, http.MethodGet, "/stats", "")

			So(rec.Code, ShouldEqual, http.StatusOK)
			var stats map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["entrypoints"], ShouldEqual, 9)
		})

		Convey("When probing healthz", func() {
			rec := serve(router, http.MethodGet, "/healthz", "")

			Convey("Then the metrics scrape answers", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
