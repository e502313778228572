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
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler is the interface implemented by types that consume log messages.
type Handler interface {
	Handle(*Message)
}

// handler wraps a function in the Handler interface.
type handler func(*Message)

func (h handler) Handle(m *Message) { h(m) }

type handlerKeyTy string

const handlerKey handlerKeyTy = "log.handlerKey"

// PutHandler returns a new context with the Handler assigned to h.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler assigned to ctx, or nil.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}

// Writer returns a Handler that writes single-line messages to w.
// It is safe to share the returned handler between goroutines.
func Writer(w io.Writer) Handler {
	mu := sync.Mutex{}
	return handler(func(m *Message) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, m.String())
	})
}

// Stdout returns a Handler that writes to os.Stdout.
func Stdout() Handler { return Writer(os.Stdout) }

// Stderr returns a Handler that writes to os.Stderr.
func Stderr() Handler { return Writer(os.Stderr) }
