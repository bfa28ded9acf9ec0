package download

// Package download orchestrates the lookup and download workflow: the
// Resolver fills the formats catalog from the remote service, the Controller
// runs at most one download at a time, forwards transfer progress to the
// reporter and hands the finished payload to file delivery. Failures are
// reported once through a Notifier and always end in the idle state.
