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
package exifpatch

import (
	"time"
)

var stopSchedule chan bool
var syncSchedule chan bool

// ScheduleParameter call the given function with the parameter on the given
// delay until StopScheduler is called. The function is called one final time
// on stop so the last state is always reported.
func ScheduleParameter(what func(start time.Time, parameter interface{}), parameter interface{}, delay time.Duration) {
	stopSchedule = make(chan bool)
	syncSchedule = make(chan bool)
	startTime := time.Now()
	go func() {
		for {
			select {
			case <-time.After(delay):
			case <-stopSchedule:
				what(startTime, parameter)
				syncSchedule <- true
				return
			}
			what(startTime, parameter)
		}
	}()
}

// StopScheduler stop the progress scheduler and wait for the final report
func StopScheduler() {
	stopSchedule <- true

	<-syncSchedule
}
