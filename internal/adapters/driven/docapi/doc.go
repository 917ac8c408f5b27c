// Package docapi implements the document store ports over the document
// store's HTTP API.
//
// Reads go to /doc-api/v1/docs/<collection>/<id>. Writes create a proposal
// with POST /doc-api/v1/props/<collection> and approve it with
// PATCH /doc-api/v1/props/any/<proposal>/<version>/status/approved,
// authenticated by the session nonce and token cookies.
//
// Every attempt is rate limited with a token bucket. Reads and approvals
// retry transient failures (connection errors, 429 and 5xx responses) with
// backoff. Proposal creation is sent exactly once.
package docapi
