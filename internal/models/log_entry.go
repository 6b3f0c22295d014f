package models

// LogEntry is one accepted access-log line. It lives only until it is applied to the aggregate.
type LogEntry struct {
	RemoteAddr string
	Timestamp  string
	Request    string
	StatusCode string // raw digit token, not checked against the allow-list
	ByteSize   uint64
}
