package progress

// Package progress converts raw byte-transfer ticks into a 0-100 percentage
// and drives a visual Indicator: indeterminate while a lookup runs or the
// transfer size is unknown, determinate once a total is reported.
