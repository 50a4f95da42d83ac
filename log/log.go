// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// LogWriter implements an io.Writer that outputs to standard output and,
// once InitLogRotator has been called, to the write-end pipe of the log
// rotator.
type LogWriter struct{}

func (LogWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if LogRotator != nil {
		LogRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all
// subsystem loggers created from it will write to the backend.  When adding
// new subsystems, add the subsystem logger variable here and to the
// SubsystemLoggers map.
//
// Until InitLogRotator has been called with a log file, loggers write to
// standard output only.
var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.  InitLogRotator assigns LogRotator without
	// synchronization, so it must not run while other goroutines are
	// logging.
	backendLog = btclog.NewBackend(LogWriter{})

	// LogRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	LogRotator *rotator.Rotator

	// SrvrLog is used by the node's top-level startup and shutdown
	// sequencing.
	SrvrLog = backendLog.Logger("SRVR")

	// PeerLog is used by the peer connection consumer: read/write pumps
	// and disconnects.
	PeerLog = backendLog.Logger("PEER")

	// AmgrLog is used by the address manager tracking known peers.
	AmgrLog = backendLog.Logger("AMGR")

	// BcdbLog is used by the key/value storage layer.
	BcdbLog = backendLog.Logger("BCDB")
)

// SubsystemLoggers maps each subsystem identifier to its associated logger.
var SubsystemLoggers = map[string]btclog.Logger{
	"SRVR": SrvrLog,
	"PEER": PeerLog,
	"AMGR": AmgrLog,
	"BCDB": BcdbLog,
}

// InitLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory.  It must be called before
// the package-global log rotator variables are used.
func InitLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}

	LogRotator = r
}

// SetLogLevel sets the logging level for the provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := SubsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range SubsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}
