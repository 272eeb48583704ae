package chapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name    string
		series  string
		chapter string
		want    string
	}{
		{"Lowercases and drops series title", "Bleach", "Bleach 567 Down", "567 down"},
		{"Empty inputs", "", "", ""},
		{"Empty series title", "", "Ch.1", "ch.1"},
		{"Commas and hyphens", "One Piece", "One Piece 024,005-a", "024.005.a"},
		{"Volume marker", "random", "Vol.001 Ch.003", "ch.003"},
		{"Volume marker without number is kept", "random", "Vol. 1 Ch. 4", "vol. 1 ch. 4"},
		{"Version marker", "Onepunch-Man", "Onepunch-Man Punch Ver002 028", "punch  028"},
		{"Attached version", "", "011v002: Assembly", "011: assembly"},
		{"Season marker", "D.I.C.E", "D.I.C.E[Season 001] Ep. 007", "[] ep. 007"},
		{"Season shorthand", "", "S3 - Chapter 20", ". chapter 20"},
		{"Marker inside a word is kept", "", "404 extravol002", "404.extravol002"},
		{"Volume word", "", "Volume 3 Chapter 12", "chapter 12"},
		{"Version word", "", "Version.2 12", "12"},
		{"Suffix rewrites", "", "12 special 13 omake 14 extra", "12.special 13.omake 14.extra"},
		{"Unicode letter blocks frontier", "", "év2 3", "év2 3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.series, tc.chapter))
		})
	}
}

func TestDeleteAtFrontier(t *testing.T) {
	re := noisePatterns[0]

	assert.Equal(t, " 1", deleteAtFrontier(re, "v2 1"))
	assert.Equal(t, "av2 1", deleteAtFrontier(re, "av2 1"))
	assert.Equal(t, "5: x", deleteAtFrontier(re, "5v.2: x"))
	assert.Equal(t, " ", deleteAtFrontier(re, "v1 s2"))
	assert.Equal(t, "no markers", deleteAtFrontier(re, "no markers"))
}
