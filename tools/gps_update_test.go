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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tknie/exifpatch/exiftool"
)

func float(v float64) *float64 {
	return &v
}

func writeTestImage(t *testing.T, directory, name string) string {
	t.Helper()
	path := filepath.Join(directory, name)
	err := os.WriteFile(path, []byte("image"), 0644)
	assert.NoError(t, err)
	return path
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(nil, nil))
	assert.NoError(t, ValidateCoordinates(float(90), float(180)))
	assert.NoError(t, ValidateCoordinates(float(-90), float(-180)))
	assert.NoError(t, ValidateCoordinates(float(0), float(0)))

	err := ValidateCoordinates(float(91), nil)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "latitude must be between -90 and 90 degrees")
	}
	err = ValidateCoordinates(float(-90.0001), nil)
	assert.Error(t, err)
	err = ValidateCoordinates(nil, float(180.5))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "longitude must be between -180 and 180 degrees")
	}
}

func TestUpdateGPSMutuallyExclusiveArguments(t *testing.T) {
	target := writeTestImage(t, t.TempDir(), "target.jpg")
	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{
		Latitude:    float(45),
		Longitude:   float(9),
		SourceImage: "source.jpg",
		TargetImage: target,
		Store:       store,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
	// Rejected before any file is touched
	assert.Empty(t, store.wrote)
	assert.Empty(t, store.reads)

	err = UpdateGPS(&GPSParameter{TargetImage: target, Store: store})
	assert.Error(t, err)
}

func TestUpdateGPSLatitudeRequiresLongitude(t *testing.T) {
	target := writeTestImage(t, t.TempDir(), "target.jpg")
	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{Latitude: float(45), TargetImage: target, Store: store})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "together")
	assert.Empty(t, store.wrote)
}

func TestUpdateGPSExplicitCoordinates(t *testing.T) {
	target := writeTestImage(t, t.TempDir(), "target.jpg")
	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{
		Latitude:    float(-45),
		Longitude:   float(9.5),
		TargetImage: target,
		Store:       store,
	})
	assert.NoError(t, err)
	tags := store.wrote[target]
	assert.Equal(t, "45", tags["GPSLatitude"])
	assert.Equal(t, "S", tags["GPSLatitudeRef"])
	assert.Equal(t, "9.5", tags["GPSLongitude"])
	assert.Equal(t, "E", tags["GPSLongitudeRef"])
}

func TestUpdateGPSOutOfRange(t *testing.T) {
	target := writeTestImage(t, t.TempDir(), "target.jpg")
	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{
		Latitude:    float(91),
		Longitude:   float(9),
		TargetImage: target,
		Store:       store,
	})
	assert.Error(t, err)
	assert.Empty(t, store.wrote)
}

func TestUpdateGPSCopyKeepsReferenceLetters(t *testing.T) {
	directory := t.TempDir()
	source := writeTestImage(t, directory, "source.jpg")
	target := writeTestImage(t, directory, "target.jpg")

	store := newFakeStore()
	// Longitude 0.0 W would flip to E on a signed round trip
	store.position = &exiftool.GPSPosition{
		Latitude:     45.0,
		LatitudeRef:  "S",
		Longitude:    0.0,
		LongitudeRef: "W",
	}
	err := UpdateGPS(&GPSParameter{SourceImage: source, TargetImage: target, Store: store})
	assert.NoError(t, err)
	assert.Equal(t, []string{source}, store.reads)
	tags := store.wrote[target]
	assert.Equal(t, "45", tags["GPSLatitude"])
	assert.Equal(t, "S", tags["GPSLatitudeRef"])
	assert.Equal(t, "0", tags["GPSLongitude"])
	assert.Equal(t, "W", tags["GPSLongitudeRef"])
}

func TestUpdateGPSCopyWithoutGPSData(t *testing.T) {
	directory := t.TempDir()
	source := writeTestImage(t, directory, "source.jpg")
	target := writeTestImage(t, directory, "target.jpg")

	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{SourceImage: source, TargetImage: target, Store: store})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no GPS data found")
	assert.Empty(t, store.wrote)
}

func TestUpdateGPSMissingImages(t *testing.T) {
	store := newFakeStore()
	err := UpdateGPS(&GPSParameter{
		Latitude:    float(45),
		Longitude:   float(9),
		TargetImage: "/no/such/image.jpg",
		Store:       store,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	target := writeTestImage(t, t.TempDir(), "target.jpg")
	err = UpdateGPS(&GPSParameter{
		SourceImage: "/no/such/source.jpg",
		TargetImage: target,
		Store:       store,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source image")
}
