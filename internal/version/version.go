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

// Package version reports the build version, set at link time with
// -ldflags "-X github.com/fdio-stack/go-vpp/internal/version.version=...".
package version

import "fmt"

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// Version returns the version string.
func Version() string {
	return version
}

// Info returns version, commit and build date in one line.
func Info() string {
	s := version
	if commit != "" {
		s += fmt.Sprintf(" (commit %s)", commit)
	}
	if buildDate != "" {
		s += fmt.Sprintf(" built %s", buildDate)
	}
	return s
}
