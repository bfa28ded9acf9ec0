package model

// Package model defines domain data structures shared by the orchestration
// layer and the user interfaces: the resolved video, its formats catalog and
// the download session with its status enum. Structures are plain values
// designed for read-only display binding and explicit state transitions.
