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
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/go-faster/errors"
	"github.com/tknie/exifpatch"
	"github.com/tknie/exifpatch/exiftool"
	"github.com/tknie/log"
)

// DateTuple year, month and day digit strings taken verbatim out of a
// filename. No calendar validation happens here, the external tool is
// the arbiter of date validity.
type DateTuple struct {
	Year  string
	Month string
	Day   string
}

// Trailing date patterns directly before the extension, checked from the
// most specific to the coarsest one. A filename matching the full date
// must never fall through to the year-month or year pattern.
var (
	fullDateExp  = regexp.MustCompile(`-(\d{4})-(\d{2})-(\d{2})\.[^.]+$`)
	yearMonthExp = regexp.MustCompile(`-(\d{4})-(\d{2})\.[^.]+$`)
	yearOnlyExp  = regexp.MustCompile(`-(\d{4})\.[^.]+$`)
)

// ExtractDateFromFileName derive a date from filename patterns like
// whatever-1987-08-01.jpg, whatever-1987-08.jpg or whatever-1987.jpg.
// A missing day or month defaults to 01. Returns nil if the filename
// carries no trailing date.
func ExtractDateFromFileName(fileName string) *DateTuple {
	baseName := filepath.Base(fileName)

	if m := fullDateExp.FindStringSubmatch(baseName); m != nil {
		return &DateTuple{Year: m[1], Month: m[2], Day: m[3]}
	}
	if m := yearMonthExp.FindStringSubmatch(baseName); m != nil {
		return &DateTuple{Year: m[1], Month: m[2], Day: "01"}
	}
	if m := yearOnlyExp.FindStringSubmatch(baseName); m != nil {
		return &DateTuple{Year: m[1], Month: "01", Day: "01"}
	}
	return nil
}

// dateTags tag assignments stamping all relevant date fields to noon of
// the extracted day
func (date *DateTuple) dateTags() map[string]string {
	dateString := fmt.Sprintf("%s:%s:%s 12:00:00", date.Year, date.Month, date.Day)
	return map[string]string{
		"DateTimeOriginal": dateString,
		"CreateDate":       dateString,
		"ModifyDate":       dateString,
	}
}

// DateUpdateParameter input of one directory run
type DateUpdateParameter struct {
	Directory  string
	Extensions []string
	Store      exiftool.MetadataStore
}

// DateUpdateStat result counters of one directory run
type DateUpdateStat struct {
	Directory string
	Processed uint64
	Skipped   uint64
	ByteCount uint64
}

func dateUpdateOutput(s time.Time, parameter interface{}) {
	stat := parameter.(*DateUpdateStat)
	fmt.Printf("Updating dates in %s since %v: processed %d, skipped %d\n",
		stat.Directory, s.Format(exifpatch.TimeFormat), stat.Processed, stat.Skipped)
}

func matchesExtension(fileName string, extensions []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// UpdateDatesByFileName scan the directory (non-recursive) for image
// files and stamp the date found in each filename. Files without a date
// and files the tool rejects are counted as skipped, the run continues.
func UpdateDatesByFileName(parameter *DateUpdateParameter) (*DateUpdateStat, error) {
	directory := parameter.Directory
	if directory == "" {
		directory = "."
	}
	fi, err := os.Stat(directory)
	if err != nil {
		return nil, errors.Errorf("path '%s' does not exist", directory)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("path '%s' is not a directory", directory)
	}
	extensions := parameter.Extensions
	if len(extensions) == 0 {
		extensions = EvaluateScanExtensions()
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory '%s'", directory)
	}
	candidates := make([]os.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !matchesExtension(entry.Name(), extensions) {
			continue
		}
		candidates = append(candidates, entry)
	}

	stat := &DateUpdateStat{Directory: directory}
	if len(candidates) == 0 {
		fmt.Printf("No matching image files found in '%s'.\n", directory)
		return stat, nil
	}
	fmt.Printf("Found %d image files.\n", len(candidates))

	exifpatch.ScheduleParameter(dateUpdateOutput, stat, 30*time.Second)
	for _, entry := range candidates {
		path := filepath.Join(directory, entry.Name())
		if info, ierr := entry.Info(); ierr == nil {
			stat.ByteCount += uint64(info.Size())
		}
		date := ExtractDateFromFileName(path)
		if date == nil {
			fmt.Printf("No date found in filename: %s - skipping\n", path)
			stat.Skipped++
			continue
		}
		fmt.Printf("Extracted date from %s: %s-%s-%s\n", path, date.Year, date.Month, date.Day)
		if err := parameter.Store.WriteTags(path, date.dateTags()); err != nil {
			log.Log.Errorf("Date update failed on %s: %v", path, err)
			fmt.Printf("Failed to update %s: %v\n", path, err)
			stat.Skipped++
			continue
		}
		fmt.Printf("Updated %s with date %s-%s-%s\n", path, date.Year, date.Month, date.Day)
		stat.Processed++
	}
	exifpatch.StopScheduler()

	fmt.Printf("\nSummary: Processed %d files, skipped %d files.\n", stat.Processed, stat.Skipped)
	fmt.Printf("Considered %s of image data.\n", units.HumanSize(float64(stat.ByteCount)))
	return stat, nil
}
