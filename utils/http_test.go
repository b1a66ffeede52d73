package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Failure to marshal json", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// causes an UnsupportedTypeError
		WriteJSONWithStatus(w, r, make(chan int), http.StatusInternalServerError)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, "")
	})

	Convey("Message response", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/mtn", nil)

		WriteJSONWithStatus(w, r, NewMessageResponse("done"), http.StatusOK)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldEqual, "{\"message\":\"done\"}\n")
	})

	Convey("Error response", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/mtn", nil)

		WriteJSONWithStatus(w, r, NewErrorResponse("failed"), http.StatusInternalServerError)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, "{\"error\":\"failed\"}\n")
	})
}
