// Package cluster performs two-way clustering of points by maximum cut.
//
// 🚀 How it works
//
//	Bipartition chains the whole qcut pipeline:
//
//	  points ──▶ Euclidean weight matrix ──▶ max-cut solver ──▶ labels
//
//	Far-apart points contribute heavy edges; maximizing the weight cut by
//	the bipartition therefore pulls dissimilar points into different
//	clusters and keeps tight groups together — unsupervised 2-means-like
//	clustering without centroids.
//
// Formulate stops halfway and hands back the weight matrix together with
// its Ising cost model, for callers that submit the problem to an external
// engine (annealer, QAOA, ...) instead of the native solvers.
//
// Labels are canonical: the first point is always in cluster 0, so equal
// inputs yield equal labelings.
//
// Errors: point-set and weight-matrix violations surface the pipeline's
// InvalidInput sentinels; fewer than two points is a domain error
// (ising.ErrTooFewNodes).
package cluster
