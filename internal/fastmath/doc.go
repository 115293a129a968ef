// Package fastmath selects the square root used by the statistics packages.
//
// The default build uses math.Sqrt. Building with -tags fastmath switches to
// the algo-approx approximation (<0.01% relative error for x in [0, 1000]).
// The approximation shifts the key-length threshold by a negligible amount,
// but results are only bit-reproducible within one build flavour.
package fastmath
