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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedPosition(t *testing.T) {
	position := SignedPosition(-45.0, 9.5)
	assert.Equal(t, 45.0, position.Latitude)
	assert.Equal(t, "S", position.LatitudeRef)
	assert.Equal(t, 9.5, position.Longitude)
	assert.Equal(t, "E", position.LongitudeRef)

	lat, lon := position.Signed()
	assert.Equal(t, -45.0, lat)
	assert.Equal(t, 9.5, lon)
}

func TestSignedPositionZeroIsNorthEast(t *testing.T) {
	// Fixed convention, not derivable from the sign of 0.0
	position := SignedPosition(0.0, 0.0)
	assert.Equal(t, "N", position.LatitudeRef)
	assert.Equal(t, "E", position.LongitudeRef)
}

func TestPositionKeepsReferenceLetters(t *testing.T) {
	// A stored position is never reconstructed from its signed value,
	// the original letters survive even at the equator or meridian
	position := &GPSPosition{Latitude: 45.0, LatitudeRef: "S", Longitude: 0.0, LongitudeRef: "W"}
	tags := position.Tags()
	assert.Equal(t, "45", tags["GPSLatitude"])
	assert.Equal(t, "S", tags["GPSLatitudeRef"])
	assert.Equal(t, "0", tags["GPSLongitude"])
	assert.Equal(t, "W", tags["GPSLongitudeRef"])

	lat, lon := position.Signed()
	assert.Equal(t, -45.0, lat)
	assert.Equal(t, 0.0, lon)
}
