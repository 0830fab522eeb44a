/*
Package contract builds unsigned transactions against the Dolphinder Move contract.

Every public builder on [Builder] maps one-to-one to a contract entry point. Builders are pure: they do no I/O and perform no content validation (callers enforce UI limits like maximum post length). The resulting [Transaction] is an intent value, not wire bytes; serialization requires a live ledger round-trip and happens later, in the sponsor package, via [github.com/dolphinder-social/dolphinder/sui.Client].

Argument order and primitive encoding (string, u64, object reference, vector<string>) must match the entry point declaration exactly, since the Move runtime performs no coercion. The [CallArg] constructors make the chosen encoding explicit at the call site.
*/
package contract
