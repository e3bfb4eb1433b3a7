// Package runner drives a tsp.Solver on its own goroutine.
//
// The worker pulls Progress records as fast as the solver produces them and
// forwards them to Job.Updates through a rate limiter (60 records per second
// by default). Sends never block the worker: a record that finds the channel
// full is dropped, except the last one, which evicts older records until it
// fits. Updates is closed once the worker exits.
//
// Stop, or cancelling the context passed to Start, ends the run after the
// current unit of work. Wait returns the outcome; an optional Recorder
// persists it as a store.Run.
package runner
