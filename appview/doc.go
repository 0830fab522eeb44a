/*
Package appview reconstructs Dolphinder read-side state from raw ledger objects.

The ledger stores a profile's résumé collections (experience, education, certificates) as dynamic fields keyed by small integer indexes under the profile object, with a declared count on the profile itself. [Loader] re-assembles each collection by fanning out one lookup per index, discarding indexes that fail or are missing, and sorting the survivors by their display order. The result is best effort: a hole left by a removed entry is indistinguishable from a transient fetch failure at that index, and neither stops the rest of the collection from loading.

All objects come off the wire as untyped Move field bags. The decode step per entity produces validated, strongly-typed values and reports a [DecodeError] when a required field is absent or has the wrong shape, rather than panicking deep in render code.

[Cache] layers an expiring LRU over a Loader, keyed by logical resource identity, with explicit invalidation hooks for the write path: after a successful mutation the caller invalidates every cached read the write could affect, and the next read goes back to the ledger.
*/
package appview
