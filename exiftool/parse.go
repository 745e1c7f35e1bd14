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
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/tknie/log"
)

// gpsRecord loose record shape of one exiftool -j array entry, fields
// stay optional until checked
type gpsRecord struct {
	latitude     *float64
	longitude    *float64
	latitudeRef  string
	longitudeRef string
}

// ParseGPSOutput map the -j -n query output to a position. The output is
// an array of records, only the first one is of interest. A first record
// without latitude or longitude means the image carries no GPS data,
// which is a regular result and not an error. Unparseable output is an
// error of its own, distinct from a tool failure.
func ParseGPSOutput(output []byte) (*GPSPosition, error) {
	rec := &gpsRecord{}
	found := false
	d := jx.DecodeBytes(output)
	err := d.Arr(func(d *jx.Decoder) error {
		if found {
			return d.Skip()
		}
		found = true
		return d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "GPSLatitude":
				v, err := d.Float64()
				if err != nil {
					return err
				}
				rec.latitude = &v
			case "GPSLongitude":
				v, err := d.Float64()
				if err != nil {
					return err
				}
				rec.longitude = &v
			case "GPSLatitudeRef":
				v, err := d.Str()
				if err != nil {
					return err
				}
				rec.latitudeRef = v
			case "GPSLongitudeRef":
				v, err := d.Str()
				if err != nil {
					return err
				}
				rec.longitudeRef = v
			default:
				return d.Skip()
			}
			return nil
		})
	})
	if err != nil {
		log.Log.Errorf("GPS output parse error: %v", err)
		return nil, errors.Wrap(err, "parsing exiftool output")
	}
	if !found || rec.latitude == nil || rec.longitude == nil {
		log.Log.Debugf("No GPS fields in record (found=%v)", found)
		return nil, nil
	}
	// Missing reference letters default to the northern/eastern
	// hemisphere, matching the numeric tag convention
	if rec.latitudeRef == "" {
		rec.latitudeRef = "N"
	}
	if rec.longitudeRef == "" {
		rec.longitudeRef = "E"
	}
	return &GPSPosition{
		Latitude:     *rec.latitude,
		LatitudeRef:  rec.latitudeRef,
		Longitude:    *rec.longitude,
		LongitudeRef: rec.longitudeRef,
	}, nil
}
