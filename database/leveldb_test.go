// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"path/filepath"
	"testing"
)

func TestLevelDbPutGetDelete(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenLevelDb(filepath.Join(dir, "peers"))
	if err != nil {
		t.Fatalf("OpenLevelDb: %v", err)
	}
	defer db.Close()

	key := []byte("addr:127.0.0.1:8333")
	value := []byte("some-serialized-address")

	if !db.Put(key, value) {
		t.Fatalf("Put returned false")
	}

	got := db.Get(key)
	if string(got) != string(value) {
		t.Fatalf("got %q want %q", got, value)
	}

	if !db.Delete(key) {
		t.Fatalf("Delete returned false")
	}
	if got := db.Get(key); got != nil {
		t.Fatalf("got %q after delete, want nil", got)
	}
}

func TestLevelDbGetMissingKey(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenLevelDb(filepath.Join(dir, "peers"))
	if err != nil {
		t.Fatalf("OpenLevelDb: %v", err)
	}
	defer db.Close()

	if got := db.Get([]byte("nonexistent")); got != nil {
		t.Fatalf("got %q, want nil", got)
	}
}

func TestLevelDbCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenLevelDb(filepath.Join(dir, "peers"))
	if err != nil {
		t.Fatalf("OpenLevelDb: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if db.Put([]byte("k"), []byte("v")) {
		t.Fatalf("Put succeeded on closed database")
	}
}
