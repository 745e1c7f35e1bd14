/*
* Copyright © 2024-2026 private, Darmstadt, Germany and/or its licensors
*
* SPDX-License-Identifier: Apache-2.0
*
*   Licensed under the Apache License, Version 2.0 (the "License");
*   you may not use this file except in compliance with the License.
*   You may obtain a copy of the License at
*
*       http://www.apache.org/licenses/LICENSE-2.0
*
*   Unless required by applicable law or agreed to in writing, software
*   distributed under the License is distributed on an "AS IS" BASIS,
*   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
*   See the License for the specific language governing permissions and
*   limitations under the License.
*
 */

// Package exiftool isolates the external exiftool process behind the
// MetadataStore boundary. All metadata access of the tools goes through
// this package, nothing else in the module starts a subprocess.
package exiftool

import (
	"bytes"
	"os/exec"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/tknie/log"
)

// DefaultBinary name of the external metadata tool searched on the PATH
const DefaultBinary = "exiftool"

// MetadataStore access to image metadata of a file. The exiftool command
// is the production implementation, tests substitute their own.
type MetadataStore interface {
	// ReadGPS return the GPS position stored in the image or nil if the
	// image carries no GPS fields
	ReadGPS(fileName string) (*GPSPosition, error)
	// WriteTags assign the given tag values in-place
	WriteTags(fileName string, tags map[string]string) error
}

// Command metadata store backed by one exiftool subprocess per call
type Command struct {
	Binary string
}

// NewCommand create a Command after verifying the binary is available
func NewCommand(binary string) (*Command, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, errors.Wrapf(err, "'%s' not found in PATH", binary)
	}
	return &Command{Binary: binary}, nil
}

// run start one blocking invocation and hand back both output streams.
// The raw stderr text is part of the error, diagnostics of the tool must
// never be swallowed.
func (c *Command) run(args []string) ([]byte, error) {
	log.Log.Debugf("Call %s with %v", c.Binary, args)
	cmd := exec.Command(c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		log.Log.Errorf("%s error: %v: %s", c.Binary, err, msg)
		return nil, errors.Wrapf(err, "%s failed: %s", c.Binary, msg)
	}
	return stdout.Bytes(), nil
}

// writeTagsArgs build the assignment argument list, tags in sorted order
// so invocations are reproducible
func writeTagsArgs(fileName string, tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	args := make([]string, 0, len(tags)+2)
	for _, name := range names {
		args = append(args, "-"+name+"="+tags[name])
	}
	args = append(args, "-overwrite_original", fileName)
	return args
}

// WriteTags assign all given tags in one in-place invocation
func (c *Command) WriteTags(fileName string, tags map[string]string) error {
	_, err := c.run(writeTagsArgs(fileName, tags))
	return err
}

// readGPSArgs query arguments, -j for a JSON record array and -n for
// numeric values instead of degree/minute/second strings
func readGPSArgs(fileName string) []string {
	return []string{
		"-GPSLatitude",
		"-GPSLongitude",
		"-GPSLatitudeRef",
		"-GPSLongitudeRef",
		"-j",
		"-n",
		fileName,
	}
}

// ReadGPS extract the GPS position of the image. A nil position without
// error means the image carries no GPS fields.
func (c *Command) ReadGPS(fileName string) (*GPSPosition, error) {
	output, err := c.run(readGPSArgs(fileName))
	if err != nil {
		return nil, err
	}
	return ParseGPSOutput(output)
}
