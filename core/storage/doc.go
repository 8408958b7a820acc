// Package storage wraps the Minio S3-compatible client behind a small
// interface so features can be tested against mocks (see storage/mocks).
//
// The service uses object storage for generated artifacts only: the
// post-refresh summary image lives here, never country records.
package storage
