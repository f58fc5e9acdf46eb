package ports

// RecordSink receives compressed records in container order.
// AppendRecord must be safe to call from multiple goroutines; each call
// writes one complete record.
type RecordSink interface {
	AppendRecord(payload []byte) error
}
