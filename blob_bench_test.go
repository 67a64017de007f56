//go:build go1.24

package tilegeom_test

import (
	"testing"

	"deedles.dev/tilegeom"
)

func benchBlobs() (a, b tilegeom.Blob) {
	for y := 0; y < 128; y += 2 {
		a = a.Union(blobAt(0, y, 64, 2))
		b = b.Union(blobAt(32+y%16, y, 64, 3))
	}
	return a, b
}

func BenchmarkBlobUnion(bm *testing.B) {
	a, b := benchBlobs()
	for bm.Loop() {
		a.Union(b)
	}
}

func BenchmarkBlobDifference(bm *testing.B) {
	a, b := benchBlobs()
	for bm.Loop() {
		a.Difference(b)
	}
}
