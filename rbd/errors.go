// Copyright 2026 go-rbd Authors
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

package rbd

import "errors"

// ErrInvalidArgument is returned when an evaluation request is malformed:
// zero time axis, zero workers, out-of-range component counts, or missing
// buffers. Validation happens before any worker is spawned, so the output
// buffer is untouched when this error is returned.
var ErrInvalidArgument = errors.New("rbd: invalid argument")

// ErrBackendUnavailable is returned when a backend pinned with WithBackend
// exceeds the capability detected for this CPU.
var ErrBackendUnavailable = errors.New("rbd: backend unavailable")

// ErrInternalFailure is returned when the worker pool could not run all
// batches to completion. The output buffer contents are undefined.
var ErrInternalFailure = errors.New("rbd: evaluation failed")
