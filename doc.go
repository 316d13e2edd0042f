// Package nru implements the bookkeeping for
// Not Recently Used (NRU) page replacement.
//
// NRU approximates LRU cheaply by sampling two bits per page
// and evicting from the lowest priority class that has pages.
//
// The following is a summary (intended for maintainers)
// of the moving parts and the rules they uphold.
//
// Glossary and invariants:
//
//   - Referenced (R)
//
//     Set when a page is read or written since the last clock tick.
//
//   - Modified (M)
//
//     Set when a page is written.
//     Only an explicit write-back would clear it; that is not modelled here.
//
//   - Clock tick
//
//     Periodic event which clears every R bit, so that "recently"
//     means "since the last tick".
//
//   - Victim
//
//     The page selected for eviction.
//
// Components:
//
//   - [Table]
//
//     One [State] per page. Page numbers outside of [0, size)
//     are reported as [ErrOutOfRange], never clamped.
//
//   - [Memory]
//
//     Owns a [Table] and the bytes of every page.
//     address = page*pageSize + offset, with 0 ≤ offset < pageSize.
//     Reads set only R, writes set only M; [Memory.Reset] is the clock tick.
//
//   - [Classifier]
//
//     Rebuilt wholesale by [Classifier.Classify]; after a pass
//     every page appears in exactly one class, in ascending order.
//     The snapshot goes stale as soon as the table changes.
//
// Classes:
//
//   - 0: [NotRefNotMod]. Cheapest to discard.
//   - 1: [NotRefMod]. Not recently used, but requires a write-back.
//   - 2: [RefNotMod]. Recently used.
//   - 3: [RefMod]. Recently used and requires a write-back.
//
// [Classifier.Victim] picks uniformly at random within the lowest non-empty class.
// That pick is the only non-deterministic behaviour in the package,
// and its source may be injected with [WithRand].
package nru
