// Package anim provides imperatively driven animated values.
//
// Values are advanced explicitly through Step from a single frame loop.
// Every started animation carries a completion continuation that fires exactly
// once: with Finished=true when it reaches its target, or Finished=false when a
// newer animation, Set, or Stop supersedes it. Continuations run synchronously
// on the caller's goroutine.
package anim
