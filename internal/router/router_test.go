package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jeomhps/hbnb-api/internal/storage/file"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store, err := file.Open(filepath.Join(t.TempDir(), "file.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, zerolog.Nop(), Options{CORSOrigins: []string{"*"}})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/v1"+path, nil)
	} else {
		req = httptest.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func object(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

func array(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var a []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a), w.Body.String())
	return a
}

// create POSTs body and returns the new object's id.
func create(t *testing.T, r http.Handler, path, body string) string {
	t.Helper()
	w := do(r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return object(t, w)["id"].(string)
}

type fixture struct {
	state, city, user, amenity, place string
}

func seed(t *testing.T, r http.Handler) fixture {
	t.Helper()
	var f fixture
	f.state = create(t, r, "/states", `{"name":"California"}`)
	f.city = create(t, r, "/states/"+f.state+"/cities", `{"name":"San Francisco"}`)
	f.user = create(t, r, "/users", `{"email":"host@hbnb.io","password":"pw"}`)
	f.amenity = create(t, r, "/amenities", `{"name":"Wifi"}`)
	f.place = create(t, r, "/cities/"+f.city+"/places", `{"user_id":"`+f.user+`","name":"Loft"}`)
	return f
}

func TestStatusAndStats(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", object(t, w)["status"])

	w = do(r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amenities":0,"cities":0,"places":0,"states":0,"users":0}`, w.Body.String())

	seed(t, r)
	w = do(r, http.MethodGet, "/stats", "")
	assert.JSONEq(t, `{"amenities":1,"cities":1,"places":1,"states":1,"users":1}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found","code":"NOT_FOUND"}`, w.Body.String())
}

func TestEmptyListsAreArrays(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/states", "/amenities", "/users"} {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", w.Body.String(), path)
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/states/missing", ""},
		{http.MethodPut, "/states/missing", `{"name":"x"}`},
		{http.MethodDelete, "/states/missing", ""},
		{http.MethodGet, "/states/missing/cities", ""},
		{http.MethodPost, "/states/missing/cities", `{"name":"x"}`},
		{http.MethodGet, "/cities/missing", ""},
		{http.MethodPut, "/cities/missing", `{"name":"x"}`},
		{http.MethodDelete, "/cities/missing", ""},
		{http.MethodGet, "/cities/missing/places", ""},
		{http.MethodPost, "/cities/missing/places", `{"user_id":"` + f.user + `","name":"x"}`},
		{http.MethodGet, "/amenities/missing", ""},
		{http.MethodPut, "/amenities/missing", `{"name":"x"}`},
		{http.MethodDelete, "/amenities/missing", ""},
		{http.MethodGet, "/users/missing", ""},
		{http.MethodPut, "/users/missing", `{"first_name":"x"}`},
		{http.MethodDelete, "/users/missing", ""},
		{http.MethodGet, "/places/missing", ""},
		{http.MethodPut, "/places/missing", `{"name":"x"}`},
		{http.MethodDelete, "/places/missing", ""},
		{http.MethodGet, "/places/missing/amenities", ""},
		{http.MethodPost, "/places/missing/amenities/" + f.amenity, ""},
		{http.MethodPost, "/places/" + f.place + "/amenities/missing", ""},
		{http.MethodDelete, "/places/" + f.place + "/amenities/" + f.amenity, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Not found", object(t, w)["error"])
		})
	}
}

func TestCreateRejectsBadBodies(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	cityPlaces := "/cities/" + f.city + "/places"

	tests := []struct {
		name, path, body, want string
		status             int
	}{
		{"state not json", "/states", `name=x`, "Not a JSON", http.StatusBadRequest},
		{"state array", "/states", `["x"]`, "Not a JSON", http.StatusBadRequest},
		{"state no name", "/states", `{}`, "Missing name", http.StatusBadRequest},
		{"city no name", "/states/" + f.state + "/cities", `{"state_id":"x"}`, "Missing name", http.StatusBadRequest},
		{"amenity no name", "/amenities", `{}`, "Missing name", http.StatusBadRequest},
		{"user no email", "/users", `{"password":"pw"}`, "Missing email", http.StatusBadRequest},
		{"user no password", "/users", `{"email":"a@b.c"}`, "Missing password", http.StatusBadRequest},
		{"place not json", cityPlaces, `nope`, "Not a JSON", http.StatusBadRequest},
		{"place no user_id", cityPlaces, `{"name":"x"}`, "Missing user_id", http.StatusBadRequest},
		{"place unknown user", cityPlaces, `{"user_id":"ghost"}`, "Not found", http.StatusNotFound},
		{"place no name", cityPlaces, `{"user_id":"` + f.user + `"}`, "Missing name", http.StatusBadRequest},
		{"place negative rooms", cityPlaces, `{"user_id":"` + f.user + `","name":"x","number_rooms":-2}`, "Invalid number_rooms", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.want, object(t, w)["error"])
		})
	}
}

func TestUpdateRejectsNonJSON(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	for _, path := range []string{"/states/" + f.state, "/cities/" + f.city, "/amenities/" + f.amenity, "/users/" + f.user, "/places/" + f.place} {
		w := do(r, http.MethodPut, path, `not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Not a JSON", object(t, w)["error"], path)
	}
}

func TestFieldLimits(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	long := strings.Repeat("n", 129)
	pw73 := strings.Repeat("p", 73)

	tests := []struct {
		name, method, path, body, want string
	}{
		{"user password over 72 bytes", http.MethodPost, "/users", `{"email":"a@b.c","password":"` + pw73 + `"}`, "Invalid password"},
		{"user multibyte password over 72 bytes", http.MethodPost, "/users", `{"email":"a@b.c","password":"` + strings.Repeat("é", 40) + `"}`, "Invalid password"},
		{"user update password over 72 bytes", http.MethodPut, "/users/" + f.user, `{"password":"` + pw73 + `"}`, "Invalid password"},
		{"user long email", http.MethodPost, "/users", `{"email":"` + long + `","password":"pw"}`, "Invalid email"},
		{"state long name", http.MethodPost, "/states", `{"name":"` + long + `"}`, "Invalid name"},
		{"state update long name", http.MethodPut, "/states/" + f.state, `{"name":"` + long + `"}`, "Invalid name"},
		{"amenity long name", http.MethodPost, "/amenities", `{"name":"` + long + `"}`, "Invalid name"},
		{"state upper-case key", http.MethodPost, "/states", `{"NAME":"x"}`, "Missing name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.want, object(t, w)["error"])
		})
	}

	w := do(r, http.MethodPost, "/users", `{"email":"a@b.c","password":"`+strings.Repeat("p", 72)+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestStateLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/states", `{"name":"Nevada","id":"forced"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := object(t, w)
	id := created["id"].(string)
	assert.NotEqual(t, "forced", id)
	assert.Equal(t, "State", created["__class__"])

	w = do(r, http.MethodGet, "/states/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, object(t, w))

	w = do(r, http.MethodPut, "/states/"+id, `{"name":"Utah","id":"other","created_at":"2000-01-01T00:00:00.000000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := object(t, w)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "Utah", updated["name"])
	assert.Equal(t, created["created_at"], updated["created_at"])
	assert.NotEqual(t, created["updated_at"], updated["updated_at"])

	w = do(r, http.MethodGet, "/states", "")
	list := array(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])

	w = do(r, http.MethodDelete, "/states/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = do(r, http.MethodGet, "/states/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCityIsScopedToState(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	other := create(t, r, "/states", `{"name":"Oregon"}`)

	w := do(r, http.MethodPost, "/states/"+f.state+"/cities", `{"name":"Oakland","state_id":"`+other+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, f.state, object(t, w)["state_id"])

	w = do(r, http.MethodGet, "/states/"+f.state+"/cities", "")
	assert.Len(t, array(t, w), 2)
	w = do(r, http.MethodGet, "/states/"+other+"/cities", "")
	assert.Equal(t, "[]", w.Body.String())

	w = do(r, http.MethodPut, "/cities/"+f.city, `{"state_id":"`+other+`","name":"SF"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := object(t, w)
	assert.Equal(t, f.state, got["state_id"])
	assert.Equal(t, "SF", got["name"])
}

func TestUserPasswordNeverRendered(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodPost, "/users", `{"email":"a@b.c","password":"secret","first_name":"Ann"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	u := object(t, w)
	assert.NotContains(t, u, "password")
	assert.Equal(t, "Ann", u["first_name"])

	w = do(r, http.MethodPut, "/users/"+u["id"].(string), `{"password":"new","last_name":"Lee","email":"ann@b.c"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := object(t, w)
	assert.NotContains(t, got, "password")
	assert.Equal(t, "Lee", got["last_name"])
	assert.Equal(t, "ann@b.c", got["email"])

	w = do(r, http.MethodGet, "/users", "")
	for _, item := range array(t, w) {
		assert.NotContains(t, item, "password")
	}
}

func TestPlaceUpdateKeepsForeignKeys(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)

	w := do(r, http.MethodPut, "/places/"+f.place,
		`{"user_id":"x","city_id":"y","name":"Barn","number_rooms":4,"price_by_night":120,"latitude":37.77,"unknown":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	p := object(t, w)
	assert.Equal(t, f.user, p["user_id"])
	assert.Equal(t, f.city, p["city_id"])
	assert.Equal(t, "Barn", p["name"])
	assert.EqualValues(t, 4, p["number_rooms"])
	assert.EqualValues(t, 120, p["price_by_night"])
	assert.InDelta(t, 37.77, p["latitude"], 1e-9)
	assert.Equal(t, []any{}, p["amenities"])

	w = do(r, http.MethodGet, "/cities/"+f.city+"/places", "")
	list := array(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, p, list[0])
}

func TestPlaceAmenityLinks(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	link := "/places/" + f.place + "/amenities/" + f.amenity

	w := do(r, http.MethodPost, link, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, f.amenity, object(t, w)["id"])

	w = do(r, http.MethodPost, link, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/places/"+f.place+"/amenities", "")
	list := array(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Wifi", list[0]["name"])

	w = do(r, http.MethodGet, "/places/"+f.place, "")
	assert.Equal(t, []any{f.amenity}, object(t, w)["amenities"])

	w = do(r, http.MethodDelete, link, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodDelete, link, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletingAmenityUnlinksIt(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/places/"+f.place+"/amenities/"+f.amenity, "").Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/amenities/"+f.amenity, "").Code)
	w := do(r, http.MethodGet, "/places/"+f.place, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, object(t, w)["amenities"])
}

func TestDeletingStateCascades(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/states/"+f.state, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/cities/"+f.city, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/places/"+f.place, "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/users/"+f.user, "").Code)
}

func TestPlacesSearch(t *testing.T) {
	r := newTestRouter(t)
	f := seed(t, r)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/places/"+f.place+"/amenities/"+f.amenity, "").Code)
	otherState := create(t, r, "/states", `{"name":"Texas"}`)
	otherCity := create(t, r, "/states/"+otherState+"/cities", `{"name":"Austin"}`)
	other := create(t, r, "/cities/"+otherCity+"/places", `{"user_id":"`+f.user+`","name":"Ranch"}`)
	pool := create(t, r, "/amenities", `{"name":"Pool"}`)

	ids := func(w *httptest.ResponseRecorder) []string {
		var out []string
		for _, p := range array(t, w) {
			assert.NotContains(t, p, "amenities")
			out = append(out, p["id"].(string))
		}
		return out
	}

	w := do(r, http.MethodPost, "/places_search", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{f.place, other}, ids(w))

	w = do(r, http.MethodPost, "/places_search", `{"states":["`+f.state+`"],"amenities":["`+f.amenity+`"]}`)
	assert.Equal(t, []string{f.place}, ids(w))

	w = do(r, http.MethodPost, "/places_search", `{"states":["`+f.state+`"],"amenities":["`+pool+`"]}`)
	assert.Equal(t, "[]", w.Body.String())

	w = do(r, http.MethodPost, "/places_search", `{"cities":["`+otherCity+`"],"states":["`+otherState+`"]}`)
	assert.Equal(t, []string{other}, ids(w))

	w = do(r, http.MethodPost, "/places_search", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Not a JSON", object(t, w)["error"])
}

func preflight(r http.Handler, origin string) *httptest.ResponseRecorder {
	// httptest requests target example.com, so origins must differ from it.
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/states", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSPreflightAllowAll(t *testing.T) {
	r := newTestRouter(t)
	w := preflight(r, "http://other.test")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightAllowList(t *testing.T) {
	store, err := file.Open(filepath.Join(t.TempDir(), "file.json"))
	require.NoError(t, err)
	r := New(store, zerolog.Nop(), Options{CORSOrigins: []string{"http://a.test", "http://b.test"}})

	for _, origin := range []string{"http://a.test", "http://b.test"} {
		w := preflight(r, origin)
		assert.Equal(t, http.StatusNoContent, w.Code, origin)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}

	w := preflight(r, "http://evil.test")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
