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

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tknie/exifpatch"
	"github.com/tknie/exifpatch/exiftool"
	"github.com/tknie/exifpatch/tools"
	"github.com/tknie/log"
)

const description = `This tool updates the EXIF GPS data of one image. Either explicit
coordinates are given with -lat and -lon (signed decimal degrees), or -from
copies the GPS fields of a source image onto the target unchanged, keeping
the original hemisphere reference letters.

Usage: exifgps [-lat LAT -lon LON | -from SOURCE] IMAGE

`

func main() {
	latArg := ""
	lonArg := ""
	sourceImage := ""
	json := false

	err := tools.InitLogLevelWithFile("exifgps.log")
	if err != nil {
		fmt.Printf("Error initialzing logging: %v\n", err)
		return
	}
	flag.Usage = func() {
		fmt.Print(description)
		fmt.Println("Default flags:")
		flag.PrintDefaults()
	}
	flag.StringVar(&latArg, "lat", "", "Latitude value (-90 to 90)")
	flag.StringVar(&lonArg, "lon", "", "Longitude value (-180 to 180)")
	flag.StringVar(&sourceImage, "from", "", "Source image to copy GPS data from")
	flag.BoolVar(&json, "j", false, "Output in JSON format")
	flag.Parse()

	exifpatch.InitTool("exifgps", json)

	err = updateImage(latArg, lonArg, sourceImage, flag.Args())
	log.Log.Debugf("Result updating GPS data: %v", err)
	exifpatch.FinalizeTool("exifgps", json, err)
	if err != nil {
		os.Exit(1)
	}
}

// parseCoordinate keep absent flags distinct from a zero value, the
// empty string stays a nil coordinate
func parseCoordinate(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value '%s'", name, value)
	}
	return &v, nil
}

func updateImage(latArg, lonArg, sourceImage string, args []string) error {
	if len(args) != 1 {
		flag.Usage()
		return fmt.Errorf("exactly one target image required")
	}

	lat, err := parseCoordinate("latitude", latArg)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	lon, err := parseCoordinate("longitude", lonArg)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	store, err := exiftool.NewCommand(tools.EvaluateExiftoolBinary())
	if err != nil {
		fmt.Println("Error locating exiftool:", err)
		return err
	}
	parameter := &tools.GPSParameter{
		Latitude:    lat,
		Longitude:   lon,
		SourceImage: sourceImage,
		TargetImage: args[0],
		Store:       store,
	}
	if err := tools.UpdateGPS(parameter); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	return nil
}
