/*
Package sui is a thin JSON-RPC gateway to a Sui fullnode.

It covers the three read operations the application needs (object by id, owned objects by address and type, dynamic field by parent and key) plus server-side transaction serialization for the single-move-call transactions produced by the contract package. There is no local caching here; the appview package layers caching on top.

Not-found is a normal outcome on the read paths, reported as a nil result with a nil error, so callers can distinguish "the object does not exist" from "the node could not be reached" without unwrapping errors.
*/
package sui
