// Copyright (c) 2017 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging builds the logrus logger shared by every package of the
// module and hands it to their SetLogger hooks.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fdio-stack/go-vpp/adapter/shmclient"
	"github.com/fdio-stack/go-vpp/adapter/tcpclient"
	"github.com/fdio-stack/go-vpp/config"
	"github.com/fdio-stack/go-vpp/core"
	"github.com/fdio-stack/go-vpp/stats"
	"github.com/fdio-stack/go-vpp/vppapi"
)

// New returns a logger configured by cfg and the writer it logs to.
// The caller closes the writer when it is a rotating file.
func New(cfg config.LogConfig) (*logrus.Logger, io.WriteCloser, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,    // megabytes
			MaxBackups: cfg.MaxBackups, // number of backups
			MaxAge:     cfg.MaxAge,     // days
			Compress:   cfg.Compress,
		}
	}
	logger.SetOutput(out)

	return logger, out, nil
}

// Setup configures the logger and installs it in every package.
func Setup(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	logger, out, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	Install(logger)
	return logger, out, nil
}

// Install hands logger to every package, tagged with the package name.
func Install(logger *logrus.Logger) {
	core.SetLogger(logger.WithField("logger", "govpp/core"))
	shmclient.SetLogger(logger.WithField("logger", "govpp/shmclient"))
	tcpclient.SetLogger(logger.WithField("logger", "govpp/tcpclient"))
	vppapi.SetLogger(logger.WithField("logger", "govpp/vppapi"))
	stats.SetLogger(logger.WithField("logger", "govpp/stats"))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
