// Package cloudwriter uploads finished table files to cloud object storage.
package cloudwriter

// CloudWriter buffers writes to one object; the upload happens on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory opens writers for objects in a bucket.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
