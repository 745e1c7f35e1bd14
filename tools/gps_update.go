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

	"github.com/go-faster/errors"
	"github.com/tknie/exifpatch/exiftool"
	"github.com/tknie/log"
)

// GPSParameter input of one GPS set or copy operation. Either the
// signed coordinate pair or the source image is given, never both.
type GPSParameter struct {
	Latitude    *float64
	Longitude   *float64
	SourceImage string
	TargetImage string
	Store       exiftool.MetadataStore
}

// ValidateCoordinates check signed coordinate ranges, absent values are
// vacuously valid
func ValidateCoordinates(lat, lon *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return errors.New("latitude must be between -90 and 90 degrees")
	}
	if lon != nil && (*lon < -180 || *lon > 180) {
		return errors.New("longitude must be between -180 and 180 degrees")
	}
	return nil
}

// UpdateGPS apply explicit coordinates to the target image or copy the
// GPS fields of a source image onto it. Any failure here is fatal for
// the operation, nothing is retried.
func UpdateGPS(parameter *GPSParameter) error {
	explicit := parameter.Latitude != nil || parameter.Longitude != nil
	if explicit && parameter.SourceImage != "" {
		return errors.New("either explicit coordinates or a source image may be given, not both")
	}
	if !explicit && parameter.SourceImage == "" {
		return errors.New("explicit coordinates or a source image required")
	}
	if explicit && (parameter.Latitude == nil || parameter.Longitude == nil) {
		return errors.New("latitude and longitude must be given together")
	}
	if _, err := os.Stat(parameter.TargetImage); err != nil {
		return errors.Errorf("image '%s' does not exist", parameter.TargetImage)
	}

	if explicit {
		return setCoordinates(parameter)
	}
	return copyCoordinates(parameter)
}

func setCoordinates(parameter *GPSParameter) error {
	if err := ValidateCoordinates(parameter.Latitude, parameter.Longitude); err != nil {
		return err
	}
	fmt.Printf("Setting GPS coordinates for '%s':\n", parameter.TargetImage)
	fmt.Printf("  Latitude: %v\n", *parameter.Latitude)
	fmt.Printf("  Longitude: %v\n", *parameter.Longitude)

	position := exiftool.SignedPosition(*parameter.Latitude, *parameter.Longitude)
	log.Log.Debugf("Set position %s on %s", position, parameter.TargetImage)
	if err := parameter.Store.WriteTags(parameter.TargetImage, position.Tags()); err != nil {
		return err
	}
	fmt.Println("GPS data updated successfully.")
	return nil
}

// copyCoordinates forward the source's magnitudes and reference letters
// unchanged, the signed pair is printed for display only
func copyCoordinates(parameter *GPSParameter) error {
	if _, err := os.Stat(parameter.SourceImage); err != nil {
		return errors.Errorf("source image '%s' does not exist", parameter.SourceImage)
	}
	fmt.Printf("Copying GPS data from '%s' to '%s'\n", parameter.SourceImage, parameter.TargetImage)

	position, err := parameter.Store.ReadGPS(parameter.SourceImage)
	if err != nil {
		return err
	}
	if position == nil {
		return errors.Errorf("no GPS data found in '%s'", parameter.SourceImage)
	}
	lat, lon := position.Signed()
	fmt.Println("GPS data found in source image:")
	fmt.Printf("  Latitude: %v %s\n", position.Latitude, position.LatitudeRef)
	fmt.Printf("  Longitude: %v %s\n", position.Longitude, position.LongitudeRef)
	fmt.Printf("  (Decimal: %v, %v)\n", lat, lon)

	if err := parameter.Store.WriteTags(parameter.TargetImage, position.Tags()); err != nil {
		return err
	}
	fmt.Println("GPS data copied successfully.")
	return nil
}
