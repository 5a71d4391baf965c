// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler and logs start/completion with duration:

	mux.HandleFunc("GET /status/us", middleware.WithLogging(handler.GetUS))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid state code")
	middleware.ParseJSONBody(r, &req)

# CORS

The CORS middleware allows the public status widgets to call the API from
any origin. Only GET/POST/OPTIONS are exposed.
*/
package middleware
