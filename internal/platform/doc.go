package platform

// Package platform contains OS integration: the download directory, handing
// a finished in-memory payload to the filesystem as a savable file, and
// revealing delivered files in the system file manager.
