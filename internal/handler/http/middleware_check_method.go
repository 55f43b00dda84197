// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-server/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A path that is routed but not for the requested method is answered with a
// JSON 404, the same as an unknown path, so unsupported methods do not reveal
// which routes exist. Exact top-level patterns that do register the method are
// forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
