// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the upstream order exports can be read from AWS S3
// or a self-hosted MinIO instance instead of the local data directory.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Checks whether an export is present without downloading it.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.GetObject(ctx, "orders", "system_a_orders.json", minio.GetObjectOptions{})
package storage
