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
package tools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tknie/log"
	"gopkg.in/yaml.v2"
)

// scan optional scan.yaml configuration
type scan struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
	Exiftool    string   `yaml:"exiftool"`
}

// defaultExtensions extensions scanned when neither environment nor
// scan.yaml define a set. The original workflow only handled JPEG files.
var defaultExtensions = []string{"jpg", "jpeg"}

// ReadScanFile read config file
func ReadScanFile(file string) ([]byte, error) {
	scanFile, err := os.Open(file)
	if err != nil {
		log.Log.Debugf("Open file error: %#v", err)
		return nil, fmt.Errorf("open file err of %s: %v", file, err)
	}
	defer scanFile.Close()

	fi, _ := scanFile.Stat()
	log.Log.Debugf("File size=%d", fi.Size())
	var buffer bytes.Buffer
	_, err = io.Copy(&buffer, scanFile)
	if err != nil {
		log.Log.Debugf("Read file error: %#v", err)
		return nil, fmt.Errorf("read file err of %s: %v", file, err)
	}
	return buffer.Bytes(), nil
}

func readScanConfig() *scan {
	scan := &scan{}
	byteValue, err := ReadScanFile("scan.yaml")
	if err != nil {
		return scan
	}
	err = yaml.Unmarshal(byteValue, scan)
	if err != nil {
		log.Log.Debugf("Unmarshal error: %#v", err)
		return scan
	}
	for i := 0; i < len(scan.Directories); i++ {
		scan.Directories[i] = os.ExpandEnv(scan.Directories[i])
	}
	return scan
}

// EvaluatePictureDirectories directories to scan when none are given on
// the command line, from the environment or scan.yaml
func EvaluatePictureDirectories() (directories []string, err error) {
	e := os.Getenv("EXIFPATCH_DIRECTORIES")
	if e != "" {
		directories = strings.Split(e, ",")
		return directories, nil
	}

	scan := readScanConfig()
	if len(scan.Directories) == 0 {
		return nil, fmt.Errorf("no picture directories configured")
	}
	return scan.Directories, nil
}

// EvaluateScanExtensions image extensions considered in a directory scan,
// from the environment, scan.yaml or the default set
func EvaluateScanExtensions() []string {
	e := os.Getenv("EXIFPATCH_EXTENSIONS")
	if e != "" {
		return strings.Split(strings.ToLower(e), ",")
	}
	scan := readScanConfig()
	if len(scan.Extensions) > 0 {
		return scan.Extensions
	}
	return defaultExtensions
}

// EvaluateExiftoolBinary exiftool binary name or path, empty selects the
// default lookup on PATH
func EvaluateExiftoolBinary() string {
	e := os.Getenv("EXIFPATCH_EXIFTOOL")
	if e != "" {
		return e
	}
	return readScanConfig().Exiftool
}
