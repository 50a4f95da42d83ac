// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/inchain/inchain/log"
)

// LevelDb is a Db implementation backed by goleveldb, matching the original
// source's choice of org.iq80.leveldb.DB as its storage engine.
type LevelDb struct {
	mu     sync.RWMutex
	path   string
	db     *leveldb.DB
	closed bool
}

// OpenLevelDb opens (creating if necessary) a LevelDb rooted at path.
func OpenLevelDb(path string) (*LevelDb, error) {
	const op = "OpenLevelDb"

	opts := &opt.Options{
		OpenFilesCacheCapacity: 64,
	}
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, makeError(op, ErrDbOpenFailed,
			fmt.Sprintf("failed to open leveldb at %q: %v", path, err))
	}
	log.BcdbLog.Infof("Opened leveldb at %s", path)
	return &LevelDb{path: path, db: db}, nil
}

// Put stores value under key.  It returns false if the database is closed
// or the underlying write failed.
func (l *LevelDb) Put(key, value []byte) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return false
	}
	return l.db.Put(key, value, nil) == nil
}

// Get returns the value stored under key, or nil if key is absent or the
// database is closed.
func (l *LevelDb) Get(key []byte) []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil
	}
	v, err := l.db.Get(key, nil)
	if err != nil {
		return nil
	}
	return v
}

// Delete removes key.  A missing key is not treated as a failure.
func (l *LevelDb) Delete(key []byte) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return false
	}
	err := l.db.Delete(key, nil)
	return err == nil || err == leveldb.ErrNotFound
}

// Close releases the underlying leveldb handle.  It is idempotent.
func (l *LevelDb) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	log.BcdbLog.Infof("Closing leveldb at %s", l.path)
	return l.db.Close()
}

// Underlying returns the *leveldb.DB handle backing this Db.
func (l *LevelDb) Underlying() interface{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db
}

var _ Db = (*LevelDb)(nil)
