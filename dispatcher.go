// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesctr

import (
	"github.com/pion/aesctr/internal/aes128"
)

type pendingOperation struct {
	id    OperationID
	kind  OperationKind
	state operationState

	buf, counter []byte
	token        interface{}
	onDone       Callback

	schedule   *aes128.Schedule
	generation uint64
}

// EncryptCTRAsync queues an in-place encryption of buf and returns
// without waiting for it. Invalid arguments are reported by the returned
// error, which wraps ErrSubmissionRejected, and onDone is never called.
// Otherwise onDone is called exactly once, after buf has been encrypted.
func (e *Engine) EncryptCTRAsync(buf, counter []byte, token interface{}, onDone Callback) (OperationID, error) {
	return e.submit(OperationEncrypt, buf, counter, token, onDone)
}

// DecryptCTRAsync is the asynchronous counterpart of DecryptCTR. See
// EncryptCTRAsync.
func (e *Engine) DecryptCTRAsync(buf, counter []byte, token interface{}, onDone Callback) (OperationID, error) {
	return e.submit(OperationDecrypt, buf, counter, token, onDone)
}

// Pending returns the number of accepted asynchronous operations whose
// Callback has not yet returned.
func (e *Engine) Pending() int {
	e.queueMutex.Lock()
	defer e.queueMutex.Unlock()

	return e.pending
}

// Close stops accepting asynchronous submissions, waits until every
// accepted operation has completed and stops the worker goroutine.
// The synchronous API keeps working after Close. Close must not be
// called from a Callback.
func (e *Engine) Close() error {
	e.queueMutex.Lock()
	e.closing = true
	e.queueMutex.Unlock()

	e.signal()
	<-e.closed
	return nil
}

func (e *Engine) submit(kind OperationKind, buf, counter []byte, token interface{}, onDone Callback) (OperationID, error) {
	if onDone == nil {
		return 0, &errorRejected{Kind: kind, Err: errNilCallback}
	}

	schedule, generation, err := e.snapshot(counter)
	if err != nil {
		e.log.Debugf("%s rejected: %v", kind, err)
		return 0, &errorRejected{Kind: kind, Err: err}
	}

	e.queueMutex.Lock()
	if e.closing {
		e.queueMutex.Unlock()
		return 0, &errorRejected{Kind: kind, Err: ErrEngineClosed}
	}
	e.nextID++
	op := &pendingOperation{
		id:         e.nextID,
		kind:       kind,
		state:      stateSubmitted,
		buf:        buf,
		counter:    counter,
		token:      token,
		onDone:     onDone,
		schedule:   schedule,
		generation: generation,
	}
	e.queue = append(e.queue, op)
	e.pending++
	id := op.id
	e.queueMutex.Unlock()

	e.signal()
	e.log.Tracef("%s %d %s, %d bytes", kind, id, stateSubmitted, len(buf))

	return id, nil
}

func (e *Engine) signal() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// next blocks until an operation is queued. It returns false once the
// Engine is closing and the queue is drained.
func (e *Engine) next() (*pendingOperation, bool) {
	for {
		e.queueMutex.Lock()
		if len(e.queue) > 0 {
			op := e.queue[0]
			e.queue[0] = nil
			e.queue = e.queue[1:]
			e.queueMutex.Unlock()
			return op, true
		}
		closing := e.closing
		e.queueMutex.Unlock()

		if closing {
			return nil, false
		}
		<-e.wake
	}
}

func (e *Engine) run() {
	defer close(e.closed)

	for {
		op, ok := e.next()
		if !ok {
			return
		}

		op.state = stateRunning
		process(op.schedule, op.buf, op.counter)
		op.state = stateCompleted
		e.log.Tracef("%s %d %s", op.kind, op.id, op.state)

		op.onDone(Completion{
			ID:         op.id,
			Kind:       op.kind,
			Token:      op.token,
			Generation: op.generation,
		})

		e.queueMutex.Lock()
		e.pending--
		e.queueMutex.Unlock()
	}
}
