package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var compressResponse = chimw.Compress(gzip.DefaultCompression)

// maxDecodedBody — предел распакованного тела запроса в байтах.
var maxDecodedBody int64 = 10 << 20

// WithGzip сжимает JSON-ответы для клиентов с Accept-Encoding: gzip
// и распаковывает тела запросов с Content-Encoding: gzip.
func WithGzip(next http.Handler) http.Handler {
	compressed := compressResponse(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(strings.ToLower(r.Header.Get("Content-Encoding")), "gzip") {
			gr, err := gzip.NewReader(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid gzip body")
				return
			}
			defer gr.Close()
			r.Body = http.MaxBytesReader(w, gr, maxDecodedBody)
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}
		compressed.ServeHTTP(w, r)
	})
}
