// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package c2smodel

import (
	"strconv"
)

// Info represents a C2S session immutable info set.
type Info struct {
	M map[string]string
}

// String returns string value associated to k key.
func (i Info) String(k string) string {
	return i.M[k]
}

// Bool returns bool value associated to k key.
func (i Info) Bool(k string) bool {
	v, _ := strconv.ParseBool(i.M[k])
	return v
}

// Int returns int value associated to k key.
func (i Info) Int(k string) int {
	v, _ := strconv.ParseInt(i.M[k], 10, strconv.IntSize)
	return int(v)
}

// With returns a copy of the info set with k key set to val.
func (i Info) With(k string, val interface{}) Info {
	m := make(map[string]string, len(i.M)+1)
	for mk, mv := range i.M {
		m[mk] = mv
	}
	switch v := val.(type) {
	case string:
		m[k] = v
	case bool:
		m[k] = strconv.FormatBool(v)
	case int:
		m[k] = strconv.Itoa(v)
	}
	return Info{M: m}
}
