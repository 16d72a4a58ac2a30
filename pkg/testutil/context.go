package testutil

import (
	"net/http"
	"time"

	"localdir/pkg/requestcontext"
)

// AsActor attaches an authenticated actor to the request, as the auth
// middleware would.
func AsActor(req *http.Request, actorID, role string) *http.Request {
	return req.WithContext(requestcontext.WithActor(req.Context(), actorID, role))
}

// At pins the request time.
func At(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// FromIP sets the client address seen by handlers.
func FromIP(req *http.Request, ip string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent()))
}
