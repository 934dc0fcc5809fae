package main

import (
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
)

type dataState struct {
	session session.Session
	frame   session.Frame

	// what the next plot action reads: inline text wins over the path
	source     series.Source
	peakText   string
	troughText string
}
