// Package qcut turns point clouds into weighted graphs and max-cut
// optimization problems — the classical core of annealing- and
// QAOA-style clustering pipelines.
//
// 🚀 What is qcut?
//
//	A small, pure-Go library that brings together:
//		• Distance matrices: symmetric Euclidean weight matrices from point sets
//		• Ising models: max-cut couplings (J, h, offset) with exact cut accounting
//		• QUBO export: gonum-backed quadratic forms for external samplers
//		• Native solvers: exact enumeration, greedy single-flip, simulated annealing
//		• Clustering: two-way bipartition of points via maximum cut
//
// ✨ Why choose qcut?
//
//   - Deterministic – seeded heuristics, bit-stable results per seed
//   - Strict sentinels – every failure matched with errors.Is, no panics
//   - Pure Go – no cgo, no I/O, no hidden state
//   - Interop-ready – coefficient lists and QUBO matrices for annealer engines
//
// Everything is organized under five subpackages:
//
//	matrix/   — Matrix interface, row-major Dense, weight-matrix validation
//	pointset/ — point sets and Euclidean distance-matrix builders
//	ising/    — max-cut cost models: couplings, offset, energy, cut value
//	maxcut/   — solvers: Exact, SingleFlip, Anneal (seeded, deterministic)
//	cluster/  — end-to-end two-way clustering of points
//
// Quick ASCII example:
//
//	 (0,0)●  ●(0,0.1)          (1,0)●  ●(1,0.1)
//	      └──┬──┘                   └──┬──┘
//	      cluster A  ←── max cut ──→  cluster B
//
//	two tight pairs far apart: the maximum cut separates the pairs.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/qcut
package qcut
