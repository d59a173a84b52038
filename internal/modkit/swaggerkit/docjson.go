package swaggerkit

import "net/http"

const skeletonDoc = `{"openapi":"3.0.3","info":{"title":"Panelgrid API","version":"0.0.0"},"paths":{}}`

// serveDocJSON answers with a skeleton document so the UI loads even
// when generated docs are absent
func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(skeletonDoc))
}
