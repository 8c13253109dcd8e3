package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where Pprof expects to be mounted; pprof.Index only resolves
// named profiles below this exact path.
const PprofPath = "/debug/pprof/"

// Pprof returns a handler serving the net/http/pprof endpoints under PprofPath.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)

	return mux
}
