// Package tourplan plans profitable tours: pick a fixed number of stops among
// many cities so that revenue collected minus travel cost is as large as
// possible.
//
// 🚀 What is in the box?
//
//	An incremental search engine and the plumbing around it:
//		• Scoring: revenue-once, every transfer charged, optional second-order costs
//		• Solvers: greedy construction, exhaustive brute force, seeded genetic search
//		• Strategies: continuous/scattered crossover, inverse-frequency mutation
//		• Runner: background jobs, rate-limited progress, cancellation
//		• Persistence and reports: memory/SQLite/Badger stores, CSV and XLSX
//
// Packages:
//
//	tsp/      Instance, Score, Solver contract, GreedySolver, BruteForceSolver, GeneticSolver
//	matrix/   dense bounds-checked tables backing cost and revenue data
//	builder/  seeded random instance generator
//	runner/   drives a Solver on a goroutine and forwards Progress
//	store/    run records: MemoryStore, SQLiteStore, BadgerStore
//	report/   CSV and XLSX export of run records
//	examples/ end-to-end program
//
// Quick example:
//
//	tbl, _ := builder.RandomTable(12, builder.WithSeed(1))
//	s, _ := tsp.NewGreedy(tbl, 4)
//	best := tsp.Final(s)
//
//	go get github.com/katalvlaran/tourplan
package tourplan
