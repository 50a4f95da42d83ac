// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"sync"

	"github.com/inchain/inchain/log"
)

// shutdownRequestChannel allows a subsystem to request shutdown through the
// same code path an OS interrupt signal would take.
var shutdownRequestChannel = make(chan struct{})

// interruptSignals defines the default signals to catch in order to do a
// proper shutdown.
var interruptSignals = []os.Signal{os.Interrupt}

// interruptListener listens for OS signals such as SIGINT (Ctrl+C) and
// shutdown requests from shutdownRequestChannel.  It returns a channel that
// is closed when either occurs.
func interruptListener() <-chan struct{} {
	c := make(chan struct{})
	closeOnce := sync.Once{}
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)

		select {
		case sig := <-interruptChannel:
			log.SrvrLog.Infof("Received signal (%s). Shutting down...", sig)
		case <-shutdownRequestChannel:
			log.SrvrLog.Info("Shutdown requested. Shutting down...")
		}

		closeOnce.Do(func() {
			close(c)
		})
	}()

	return c
}
