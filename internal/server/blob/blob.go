// Package blob abstracts where résumé payloads live. The default is the
// record row itself; the cloud shape can offload payloads to an
// S3-compatible bucket while keeping the wire contract unchanged.
package blob

import "context"

// Store persists opaque payloads by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectKey is the bucket key for one user's résumé payload.
func ObjectKey(userID, resumeID string) string {
	return "users/" + userID + "/" + resumeID
}
