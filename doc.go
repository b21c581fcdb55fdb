// Package funcgraph analyzes the cycle structure of total functions
// f: [0,n) → [0,n) — the "functional graphs" behind deterministic state
// machines, permutations and iterated maps.
//
// 🚀 What is funcgraph?
//
//	A compact toolkit that brings together:
//		• bitvec     — fixed-length packed bit vectors with full set algebra
//		• transition — total integer functions, explicit or rule-backed
//		• cycles     — cycle enumeration, distance-to-cycle, tour lengths
//		               and the global period of any functional graph
//
// ✨ Why choose funcgraph?
//
//   - Linear-time guarantees – every analysis runs in O(n) amortized;
//     no index is walked more than a constant number of times
//   - Lazy where it matters – cycle enumeration is pull-based; stop
//     pulling to stop working
//   - Pure computation – deterministic, single-threaded, no I/O
//
// Quick ASCII example (n=6, f = [1,2,0,2,3,4]):
//
//	    5 ──▶ 4 ──▶ 3 ──▶ 2
//	                    ╱ ▲
//	             0 ──▶ 1  │
//	             ▲────────╯
//
//	one 3-cycle {0,1,2}; indices 3,4,5 are feeders at distances 1,2,3.
//
// Dive into each subpackage's doc.go for contracts, complexity bounds
// and worked examples.
//
//	go get github.com/katalvlaran/funcgraph
package funcgraph
