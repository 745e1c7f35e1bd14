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
package exiftool

import (
	"fmt"
)

// GPSPosition unsigned coordinate magnitudes with hemisphere reference
// letters, the representation the EXIF GPS tags use. When a position is
// copied between images the magnitudes and letters are forwarded
// unchanged, never round-tripped through signed values. At the equator
// and prime meridian a signed 0.0 cannot reproduce the original letter.
type GPSPosition struct {
	Latitude     float64
	LatitudeRef  string
	Longitude    float64
	LongitudeRef string
}

// SignedPosition convert a signed decimal pair to magnitudes plus
// reference letters. Exactly 0.0 maps to N respectively E, a fixed
// convention.
func SignedPosition(lat, lon float64) *GPSPosition {
	pos := &GPSPosition{Latitude: lat, LatitudeRef: "N", Longitude: lon, LongitudeRef: "E"}
	if lat < 0 {
		pos.Latitude = -lat
		pos.LatitudeRef = "S"
	}
	if lon < 0 {
		pos.Longitude = -lon
		pos.LongitudeRef = "W"
	}
	return pos
}

// Signed return the signed decimal pair, for display only
func (pos *GPSPosition) Signed() (lat, lon float64) {
	lat = pos.Latitude
	if pos.LatitudeRef == "S" {
		lat = -lat
	}
	lon = pos.Longitude
	if pos.LongitudeRef == "W" {
		lon = -lon
	}
	return lat, lon
}

// Tags return the tag assignments writing this position
func (pos *GPSPosition) Tags() map[string]string {
	return map[string]string{
		"GPSLatitude":     fmt.Sprintf("%v", pos.Latitude),
		"GPSLatitudeRef":  pos.LatitudeRef,
		"GPSLongitude":    fmt.Sprintf("%v", pos.Longitude),
		"GPSLongitudeRef": pos.LongitudeRef,
	}
}

func (pos *GPSPosition) String() string {
	lat, lon := pos.Signed()
	return fmt.Sprintf("%v %s, %v %s (%v, %v)",
		pos.Latitude, pos.LatitudeRef, pos.Longitude, pos.LongitudeRef, lat, lon)
}
