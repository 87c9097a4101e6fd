// internal/app/system/httpjson/httpjson.go
//
// Package httpjson holds the JSON request/response helpers shared by all
// feature handlers. The API speaks JSON exclusively; every error body is
// {"message": "..."} so clients have one shape to handle.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies. Registration payloads are tiny; anything
// near this limit is garbage or abuse.
const MaxBodyBytes = 64 << 10 // 64 KiB

// Write serializes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": msg} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}

// Decode reads the request body into dst, enforcing MaxBodyBytes and
// rejecting unknown fields and trailing data.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second value means trailing garbage after the JSON document.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
