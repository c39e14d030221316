package interfaces

import "time"

// KeeperInterface is the persistence lifecycle: restore at startup, persist
// on demand (every mutation and at shutdown), periodic safety-net saves in
// between.
type KeeperInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
	LastPersist() time.Time
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}
