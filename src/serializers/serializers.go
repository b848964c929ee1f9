// FILE: clilogger/src/serializers/serializers.go

// Package serializers provides field serializers for common values: HTTP requests and
// responses from net/http or fasthttp, and errors.
package serializers

import (
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"

	"github.com/valyala/fasthttp"
)

// Standard returns the serializers registered under the "req", "res" and "err" keys.
func Standard() map[string]func(any) any {
	return map[string]func(any) any{
		"req": Request,
		"res": Response,
		"err": Error,
	}
}

// Request reduces a request to method, url, headers and remote address.
// Values of other types are returned unchanged.
func Request(v any) any {
	switch r := v.(type) {
	case *http.Request:
		if r == nil {
			return v
		}
		host, port := splitAddr(r.RemoteAddr)
		headers := make(map[string]string, len(r.Header))
		for k := range r.Header {
			headers[k] = r.Header.Get(k)
		}
		return map[string]any{
			"method":        r.Method,
			"url":           r.URL.RequestURI(),
			"headers":       headers,
			"remoteAddress": host,
			"remotePort":    port,
		}
	case *fasthttp.RequestCtx:
		if r == nil {
			return v
		}
		headers := make(map[string]string)
		r.Request.Header.VisitAll(func(key, value []byte) {
			headers[string(key)] = string(value)
		})
		host, port := splitAddr(r.RemoteAddr().String())
		return map[string]any{
			"method":        string(r.Method()),
			"url":           string(r.RequestURI()),
			"headers":       headers,
			"remoteAddress": host,
			"remotePort":    port,
		}
	}
	return v
}

// Response reduces a response to its status code and header block.
// Values of other types are returned unchanged.
func Response(v any) any {
	switch r := v.(type) {
	case *http.Response:
		if r == nil || r.StatusCode == 0 {
			return v
		}
		return map[string]any{
			"statusCode": r.StatusCode,
			"header":     headerBlock(r.Proto, r.Status, r.Header),
		}
	case *fasthttp.RequestCtx:
		if r == nil {
			return v
		}
		return map[string]any{
			"statusCode": r.Response.StatusCode(),
			"header":     string(r.Response.Header.Header()),
		}
	}
	return v
}

// Error reduces an error to its message, type name and detailed form.
// Values of other types are returned unchanged.
func Error(v any) any {
	err, ok := v.(error)
	if !ok || err == nil {
		return v
	}
	return map[string]any{
		"message": err.Error(),
		"name":    fmt.Sprintf("%T", err),
		"stack":   fmt.Sprintf("%+v", err),
	}
}

func splitAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 0
	}
	port, _ := strconv.Atoi(portStr)
	return host, port
}

func headerBlock(proto, status string, h http.Header) string {
	var b []byte
	b = fmt.Appendf(b, "%s %s\r\n", proto, status)
	for _, k := range sortedKeys(h) {
		for _, v := range h[k] {
			b = fmt.Appendf(b, "%s: %s\r\n", k, v)
		}
	}
	b = append(b, "\r\n"...)
	return string(b)
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
