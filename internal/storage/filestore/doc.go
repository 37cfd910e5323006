// Package filestore provides per-record JSON file persistence for UserHub.
//
// Each record is one JSON document stored at <base>/<collection>/<key>.json.
// Lookup is O(1) by construction; there is no index, no enumeration, and no
// cross-key atomicity. Records can optionally be sealed with an AEAD cipher
// at rest.
//
// The store performs no record-level locking. Two concurrent writers to the
// same (collection, key) may interleave; exclusive create guarantees that at
// most one concurrent creator wins.
package filestore
