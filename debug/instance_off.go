// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !debug

package debug

import "reflect"

// InstanceCount is deliberately missing here: release builds do not count,
// and reporting 0 would be wrong.

func NewInstance[T any]()             {}
func DeleteInstance[T any]()          {}
func AssertZeroInstances[T any]() int { return 0 }

type InstanceInfo struct {
	Type  reflect.Type
	Count int64
}

func Instances() []InstanceInfo    { return nil }
func AssertNoInstances(t TestingT) {}
