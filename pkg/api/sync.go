package api

// RawDocument is the wire form of a document: a plain JSON object as it
// travels between client and server. Remote serialization does not
// distinguish SQL NULL from "field never set", so raw documents may carry
// null-valued fields; they are normalized at the boundary before entering
// the local store.
type RawDocument map[string]any

// PullResponse is the server reply to GET /api/v1/sync/{collection}.
// Documents are ordered by _modified ascending and include soft-deleted
// ones.
type PullResponse struct {
	Documents []RawDocument `json:"documents"`
}

// PushRequest submits a batch of locally modified documents for a
// collection.
type PushRequest struct {
	Documents []RawDocument `json:"documents"`
}

// PushResponse echoes the pushed documents with the server-assigned
// _modified so the client can reconcile instead of re-pushing the same
// write on the next cycle.
type PushResponse struct {
	Documents []RawDocument `json:"documents"`
}

// ErrorResponse is the body of any non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}
