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

package hook

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sort"
	"sync"
)

// Priority defines hook execution priority.
type Priority int32

const (
	// LowestPriority defines lowest hook execution priority.
	LowestPriority = Priority(math.MinInt32)

	// DefaultPriority defines default hook execution priority.
	DefaultPriority = Priority(0)

	// HighestPriority defines highest hook execution priority.
	HighestPriority = Priority(math.MaxInt32)
)

// Handler defines a generic hook handler function.
type Handler func(execCtx *ExecutionContext) error

// ErrStopped error is returned by a handler to halt hook execution.
var ErrStopped = errors.New("hook: execution stopped")

// ExecutionContext defines a hook execution info context.
type ExecutionContext struct {
	Info    interface{}
	Sender  interface{}
	Context context.Context
}

type handler struct {
	h Handler
	p Priority
}

// chain keeps handlers ordered by descending priority.
// Handlers sharing a priority run in registration order.
// Chains are never mutated in place so Run can iterate a snapshot unlocked.
type chain []handler

func (c chain) insert(hnd handler) chain {
	i := sort.Search(len(c), func(i int) bool { return c[i].p < hnd.p })
	nc := make(chain, 0, len(c)+1)
	nc = append(nc, c[:i]...)
	nc = append(nc, hnd)
	return append(nc, c[i:]...)
}

func (c chain) remove(hnd Handler) chain {
	ptr := reflect.ValueOf(hnd).Pointer()
	for i := range c {
		if reflect.ValueOf(c[i].h).Pointer() == ptr {
			return append(c[:i:i], c[i+1:]...)
		}
	}
	return c
}

// Hooks represents a set of event hook handlers.
type Hooks struct {
	mu     sync.RWMutex
	chains map[string]chain
}

// NewHooks returns a new initialized Hooks instance.
func NewHooks() *Hooks {
	return &Hooks{
		chains: make(map[string]chain),
	}
}

// AddHook adds a new handler to a given hook providing an execution priority value.
// Handlers with a higher priority are executed first.
func (h *Hooks) AddHook(hook string, hnd Handler, priority Priority) {
	h.mu.Lock()
	h.chains[hook] = h.chains[hook].insert(handler{h: hnd, p: priority})
	h.mu.Unlock()
}

// RemoveHook removes a hook registered handler.
func (h *Hooks) RemoveHook(hook string, hnd Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := h.chains[hook].remove(hnd)
	if len(c) == 0 {
		delete(h.chains, hook)
		return
	}
	h.chains[hook] = c
}

// Run invokes all hook handlers in priority order.
// If halted return value is true a handler returned ErrStopped and no more handlers were invoked.
func (h *Hooks) Run(hook string, execCtx *ExecutionContext) (halted bool, err error) {
	h.mu.RLock()
	c := h.chains[hook]
	h.mu.RUnlock()

	for _, hnd := range c {
		switch err := hnd.h(execCtx); {
		case err == nil:
			continue
		case errors.Is(err, ErrStopped):
			return true, nil
		default:
			return false, err
		}
	}
	return false, nil
}
