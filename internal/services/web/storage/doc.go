// Package storage declares persistence interfaces for web-owned cache data.
//
// Everything stored here is derived from the content service and can be
// dropped at any time; the content service stays the source of truth.
package storage
