package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/ardanlabs/ledger/foundation/web"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestApp(t *testing.T) {
	t.Log("Given the need to route requests through the web framework.")
	{
		t.Logf("\tTest 0:\tWhen handling a grouped route with a parameter.")
		{
			var order []string
			mw := func(name string) web.Middleware {
				return func(handler web.Handler) web.Handler {
					return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
						order = append(order, name)
						return handler(ctx, w, r)
					}
				}
			}

			app := web.NewApp(make(chan os.Signal, 1), mw("app"))

			var traceID string
			h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				v, err := web.GetValues(ctx)
				if err != nil {
					return err
				}
				traceID = v.TraceID

				return web.Respond(ctx, w, map[string]string{"index": web.Param(r, "index")}, http.StatusOK)
			}
			app.Handle(http.MethodGet, "v1", "/blocks/:index", h, mw("route"))

			w := httptest.NewRecorder()
			app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/blocks/7", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tShould get a 200: got %d", failed, w.Code)
			}
			t.Logf("\t%s\tShould get a 200.", success)

			if body := strings.TrimSpace(w.Body.String()); body != `{"index":"7"}` {
				t.Fatalf("\t%s\tShould get the route parameter: got %s", failed, body)
			}
			t.Logf("\t%s\tShould get the route parameter.", success)

			if len(order) != 2 || order[0] != "app" || order[1] != "route" {
				t.Fatalf("\t%s\tShould run app middleware before route middleware: %v", failed, order)
			}
			t.Logf("\t%s\tShould run app middleware before route middleware.", success)

			if traceID == "" {
				t.Fatalf("\t%s\tShould assign a trace id.", failed)
			}
			t.Logf("\t%s\tShould assign a trace id.", success)
		}

		t.Logf("\tTest 1:\tWhen a handler returns a shutdown error.")
		{
			shutdown := make(chan os.Signal, 1)
			app := web.NewApp(shutdown)

			h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				return web.NewShutdownError("integrity failure")
			}
			app.Handle(http.MethodGet, "", "/fail", h)

			app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

			select {
			case <-shutdown:
				t.Logf("\t%s\tShould signal a shutdown.", success)
			default:
				t.Fatalf("\t%s\tShould signal a shutdown.", failed)
			}
		}
	}
}

func TestDecode(t *testing.T) {
	type submit struct {
		To     string `json:"to" validate:"required"`
		Amount int64  `json:"amount"`
	}

	t.Log("Given the need to decode request bodies.")
	{
		t.Logf("\tTest 0:\tWhen the body is missing a required field.")
		{
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":5}`))

			var s submit
			err := web.Decode(r, &s)
			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tShould get field errors: %v", failed, err)
			}
			t.Logf("\t%s\tShould get field errors.", success)
		}

		t.Logf("\tTest 1:\tWhen the body has an unknown field.")
		{
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"to":"B","fee":1}`))

			var s submit
			if err := web.Decode(r, &s); err == nil {
				t.Fatalf("\t%s\tShould reject unknown fields.", failed)
			}
			t.Logf("\t%s\tShould reject unknown fields.", success)
		}

		t.Logf("\tTest 2:\tWhen the body is valid.")
		{
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"to":"B","amount":5}`))

			var s submit
			if err := web.Decode(r, &s); err != nil {
				t.Fatalf("\t%s\tShould decode the body: %v", failed, err)
			}
			if s.To != "B" || s.Amount != 5 {
				t.Fatalf("\t%s\tShould decode the values: %+v", failed, s)
			}
			t.Logf("\t%s\tShould decode the body.", success)
		}
	}
}
