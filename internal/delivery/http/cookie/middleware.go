package cookie

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Middleware parses the request's Cookie headers once and stores the mapping
// in the request state.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		cookies := Parse(strings.Join(req.Header.Values(echo.HeaderCookie), "; "))

		ctx := req.Context()
		state := deliverycontext.GetRequestState(ctx).WithCookies(cookies)
		c.SetRequest(req.WithContext(deliverycontext.WithRequestState(ctx, state)))

		return next(c)
	}
}

// Set appends a Set-Cookie header to the response.
func Set(c echo.Context, name, value string, opts Options) error {
	header, err := Serialize(name, value, opts)
	if err != nil {
		return err
	}
	c.Response().Header().Add(echo.HeaderSetCookie, header)

	return nil
}
