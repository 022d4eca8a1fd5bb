package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "empty header",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "several pairs with whitespace",
			header: " a=1 ;b=2;  c = 3 ",
			want:   map[string]string{"a": "1", "b": "2", "c": "3"},
		},
		{
			name:   "first occurrence wins",
			header: "sid=first; sid=second",
			want:   map[string]string{"sid": "first"},
		},
		{
			name:   "segments without equals are ignored",
			header: "flag; a=1; =nameless",
			want:   map[string]string{"a": "1"},
		},
		{
			name:   "value keeps everything after the first equals",
			header: "token=abc==",
			want:   map[string]string{"token": "abc=="},
		},
		{
			name:   "percent-encoded value is decoded",
			header: "name=J%C3%BCrgen%20B",
			want:   map[string]string{"name": "Jürgen B"},
		},
		{
			name:   "malformed escape is kept verbatim",
			header: "bad=100%zz",
			want:   map[string]string{"bad": "100%zz"},
		},
		{
			name:   "surrounding quotes are stripped",
			header: `q="quoted value"`,
			want:   map[string]string{"q": "quoted value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header))
		})
	}
}

func TestSerialize(t *testing.T) {
	expires := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	got, err := Serialize("sid", "a b;c", Options{
		MaxAge:   3600,
		Expires:  expires,
		Domain:   "example.com",
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: SameSiteLax,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"sid=a%20b%3Bc; Max-Age=3600; Expires=Fri, 02 Jan 2026 02:04:05 GMT; Domain=example.com; Path=/; HttpOnly; Secure; SameSite=Lax",
		got,
	)
}

func TestSerialize_DeleteCookie(t *testing.T) {
	got, err := Serialize("sid", "", Options{MaxAge: -1, Path: "/"})

	require.NoError(t, err)
	assert.Equal(t, "sid=; Max-Age=0; Path=/", got)
}

func TestSerialize_InvalidName(t *testing.T) {
	for _, name := range []string{"", "a b", "a;b", "a=b", "tab\tname", `"q"`} {
		_, err := Serialize(name, "v", Options{})
		assert.True(t, errors.Is(err, ErrInvalidName), "name %q", name)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		"",
		"plain",
		"with space",
		"semi;colon",
		"comma,value",
		`"quoted"`,
		"100%",
		"a=b=c",
		"  padded  ",
		"ünïcødé ✓",
		"plus+sign",
		"kPz3-Nq_x8eW0aYv1rT2uL9oJ5mH7gF4dS6cB3nM0qA",
	}

	for _, value := range values {
		header, err := Serialize("sid", value, Options{Path: "/", HTTPOnly: true, MaxAge: 60})
		require.NoError(t, err)

		// The attributes come back as separate pairs; only the cookie itself matters.
		assert.Equal(t, value, Parse(header)["sid"], "value %q", value)
	}
}

func TestMiddleware_StoresCookiesInRequestState(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add(echo.HeaderCookie, "sid=abc; theme=dark")
	req.Header.Add(echo.HeaderCookie, "sid=ignored; lang=en")
	c := e.NewContext(req, httptest.NewRecorder())

	var state deliverycontext.RequestState
	err := Middleware(func(c echo.Context) error {
		state = deliverycontext.GetRequestState(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sid": "abc", "theme": "dark", "lang": "en"}, state.Cookies())
}

func TestSet_AppendsHeader(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Set(c, "sid", "tok", Options{Path: "/"}))

	assert.Equal(t, []string{"sid=tok; Path=/"}, rec.Header().Values(echo.HeaderSetCookie))
}
