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
	"runtime"
	"runtime/pprof"

	"github.com/tknie/exifpatch"
	"github.com/tknie/exifpatch/exiftool"
	"github.com/tknie/exifpatch/tools"
	"github.com/tknie/log"
)

const description = `This tool scans directories for image files carrying a trailing date in the
filename, like vacation-1987-08-01.jpg, vacation-1987-08.jpg or
vacation-1987.jpg, and stamps that date into the EXIF date fields using
exiftool. A missing day or month defaults to 01.

`

func main() {
	json := false

	err := tools.InitLogLevelWithFile("exifdate.log")
	if err != nil {
		fmt.Printf("Error initialzing logging: %v\n", err)
		return
	}
	flag.Usage = func() {
		fmt.Print(description)
		fmt.Println("Default flags:")
		flag.PrintDefaults()
	}
	var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
	flag.BoolVar(&json, "j", false, "Output in JSON format")
	flag.Parse()

	exifpatch.InitTool("exifdate", json)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}
	defer writeMemProfile(*memprofile)

	directories := flag.Args()
	if len(directories) == 0 {
		directories, err = tools.EvaluatePictureDirectories()
		if err != nil {
			directories = []string{"."}
		}
	}

	err = updateDirectories(directories)
	log.Log.Debugf("Result updating dates: %v", err)
	exifpatch.FinalizeTool("exifdate", json, err)
	if err != nil {
		os.Exit(1)
	}
}

func updateDirectories(directories []string) error {
	store, err := exiftool.NewCommand(tools.EvaluateExiftoolBinary())
	if err != nil {
		fmt.Println("Error locating exiftool:", err)
		return err
	}
	for _, directory := range directories {
		parameter := &tools.DateUpdateParameter{
			Directory: directory,
			Store:     store,
		}
		if _, err := tools.UpdateDatesByFileName(parameter); err != nil {
			fmt.Println("Error:", err)
			return err
		}
	}
	return nil
}

func writeMemProfile(file string) {
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			panic("could not create memory profile: " + err.Error())
		}
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			panic("could not write memory profile: " + err.Error())
		}
		defer f.Close()
		fmt.Println("Memory profile written")
	}
}
