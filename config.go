// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/inchain/inchain/chaincfg"
	"github.com/inchain/inchain/log"
)

const (
	defaultConfigFilename = "inchaind.conf"
	defaultDataDirname    = "data"
	defaultLogFilename    = "inchaind.log"
	defaultLogLevel       = "info"
)

// config defines the command-line and configuration-file options this node
// accepts.  Its shape follows the same flat, tag-driven style the rest of
// the ecosystem uses go-flags for: one struct, one flag per field.
type config struct {
	HomeDir    string `short:"b" long:"homedir" description:"Directory to store data and logs"`
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `long:"datadir" description:"Directory to store the peer address database"`
	LogDir     string `long:"logdir" description:"Directory to log output"`

	Listen  string `long:"listen" description:"Address to listen for incoming peer connections (host:port)"`
	TestNet bool   `long:"testnet" description:"Use the test network"`

	ConnectPeers []string `long:"connect" description:"Address of a peer to connect to at startup; may be specified multiple times"`

	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`
}

// loadConfig reads command-line flags into a config, then layers a
// configuration file on top (command-line flags still win on a second
// pass), applying defaults, selecting the active network parameters, and
// initializing logging.  The two-pass flag/ini/flag shape mirrors how the
// wider ecosystem resolves --configfile with go-flags.
func loadConfig() (*config, []string, error) {
	preCfg := config{
		HomeDir:    defaultHomeDir(),
		DebugLevel: defaultLogLevel,
	}

	preParser := flags.NewParser(&preCfg, flags.Default)
	if _, err := preParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ConfigFile == "" {
		preCfg.ConfigFile = filepath.Join(preCfg.HomeDir, defaultConfigFilename)
	}

	cfg := preCfg
	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		if err := flags.NewIniParser(flags.NewParser(&cfg, flags.Default)).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config file %s: %w", preCfg.ConfigFile, err)
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if cfg.HomeDir == "" {
		cfg.HomeDir = defaultHomeDir()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
	}
	if cfg.LogDir == "" {
		cfg.LogDir = cfg.HomeDir
	}

	if cfg.TestNet {
		chaincfg.SetActiveNetParams(chaincfg.TestNetParams)
	} else {
		chaincfg.SetActiveNetParams(chaincfg.MainNetParams)
	}

	if cfg.Listen == "" {
		cfg.Listen = fmt.Sprintf(":%d", chaincfg.ActiveNetParams().DefaultPort())
	}

	log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	log.SetLogLevels(cfg.DebugLevel)

	return &cfg, remainingArgs, nil
}

// defaultHomeDir returns the directory this node uses by default for its
// data and log files: a ".inchain" directory under the user's home
// directory.
func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".inchain")
}
