// Copyright (C) 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"fmt"
	"sort"
	"time"
)

// Message is a single log entry.
type Message struct {
	// Text is the message body.
	Text string
	// Time is the time the message was logged.
	Time time.Time
	// Severity is the importance of the message.
	Severity Severity
	// Tag is the optional tag associated with the logging context.
	Tag string
	// StopProcess indicates the process should stop after this message.
	StopProcess bool
	// Values are the key-value pairs bound to the logging context.
	Values Values
}

// Value is a single key-value pair bound to a logging context.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a list of Value entries, sortable by name.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(a, b int) bool { return v[a].Name < v[b].Name }
func (v Values) Swap(a, b int)      { v[a], v[b] = v[b], v[a] }

var _ sort.Interface = Values{}

// String returns the message in a single-line human readable form.
func (m *Message) String() string {
	b := &bytes.Buffer{}
	b.WriteString(m.Severity.Short())
	if m.Tag != "" {
		fmt.Fprintf(b, " [%s]", m.Tag)
	}
	b.WriteString(": ")
	b.WriteString(m.Text)
	for _, v := range m.Values {
		fmt.Fprintf(b, " %s=%v", v.Name, v.Value)
	}
	return b.String()
}
