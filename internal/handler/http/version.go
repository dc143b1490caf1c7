package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		h.buildInfo.BuildVersion(), h.buildInfo.BuildDate(), h.buildInfo.BuildCommit())
}
