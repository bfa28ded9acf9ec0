package remote

// Package remote is the HTTP client of the format/download service. It
// resolves a video URL into its formats and streams a chosen format back as
// an in-memory payload, reporting transfer progress as a channel of events.
