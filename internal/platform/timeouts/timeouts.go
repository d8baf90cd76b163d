// Package timeouts defines the timeout constants shared by HTTP surfaces and
// outbound clients.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CMSRequest caps a single element collection request, paging included.
const CMSRequest = 5 * time.Second

// CacheOpen caps the time spent opening and migrating the snapshot cache.
const CacheOpen = 10 * time.Second
