// Package server serves the rendered dashboard over HTTP.
//
// The page is rendered once at startup; the server only hands out the same
// bytes on "/". There are no other routes, no API and no per-request work
// beyond conditional GET handling.
package server
