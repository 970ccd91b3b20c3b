package opendata

import "fmt"

// FetchError is a transport failure: a non-2xx status from the portal, or a
// request that never produced a response (StatusCode 0, Err set).
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch error %d: %s", e.StatusCode, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the body was not the JSON we asked for.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError means the JSON parsed but a field the pipeline depends on is
// missing or empty.
type ShapeError struct {
	URL   string
	Field string
}

func (e *ShapeError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("unexpected shape: missing %q", e.Field)
	}
	return fmt.Sprintf("unexpected shape from %s: missing %q", e.URL, e.Field)
}
