package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the URL entry and the format list to the download workflow and renders
// progress, notices, and settings. All UI strings are localized via Localization.
