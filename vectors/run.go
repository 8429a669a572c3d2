// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package vectors

import (
	"errors"
	"fmt"
	"time"

	"github.com/pion/aesctr"
)

var (
	errTimeout = errors.New("vectors: completion not delivered in time")
	errSkipped = errors.New("vectors: skipped, previous operation still outstanding")
)

// Result is the outcome of one check.
type Result struct {
	Name     string
	Expected []byte
	Got      []byte
	Err      error
	Elapsed  time.Duration
}

// Passed reports whether the check produced the expected bytes.
func (r Result) Passed() bool {
	return r.Err == nil && string(r.Expected) == string(r.Got)
}

// Run installs v.Key on e and runs four checks: blocking encrypt,
// blocking decrypt, then asynchronous encrypt and decrypt. Each
// asynchronous check waits at most wait for its completion.
//
// Every check starts from a fresh copy of v.Counter, since the engine
// consumes the counter it is given.
func Run(e *aesctr.Engine, v Vector, wait time.Duration) ([]Result, error) {
	if err := e.SetKey(v.Key); err != nil {
		return nil, err
	}

	data := append([]byte{}, v.Plaintext...)
	results := make([]Result, 0, 4)

	results = append(results, runSync(fmt.Sprintf("CTR test #1 (encryption %s tests)", v.Name),
		e.EncryptCTR, data, v.Counter, v.Ciphertext))
	results = append(results, runSync(fmt.Sprintf("CTR test #2 (decryption %s tests)", v.Name),
		e.DecryptCTR, data, v.Counter, v.Plaintext))

	// Start the asynchronous pair from the plaintext whatever the blocking
	// checks did to data.
	copy(data, v.Plaintext)
	results = append(results, runAsync(fmt.Sprintf("CTR test #3 (async encryption %s tests)", v.Name),
		aesctr.OperationEncrypt, e.EncryptCTRAsync, data, v.Counter, v.Ciphertext, wait))
	name := fmt.Sprintf("CTR test #4 (async decryption %s tests)", v.Name)
	if errors.Is(results[len(results)-1].Err, errTimeout) {
		results = append(results, Result{Name: name, Expected: v.Plaintext, Err: errSkipped})
	} else {
		results = append(results, runAsync(name,
			aesctr.OperationDecrypt, e.DecryptCTRAsync, data, v.Counter, v.Plaintext, wait))
	}

	return results, nil
}

type syncFunc func(buf, counter []byte) error

type asyncFunc func(buf, counter []byte, token interface{}, onDone aesctr.Callback) (aesctr.OperationID, error)

func runSync(name string, fn syncFunc, data, counter, expected []byte) Result {
	start := time.Now()
	err := fn(data, append([]byte{}, counter...))

	return Result{
		Name:     name,
		Expected: expected,
		Got:      append([]byte{}, data...),
		Err:      err,
		Elapsed:  time.Since(start),
	}
}

func runAsync(name string, kind aesctr.OperationKind, fn asyncFunc, data, counter, expected []byte, wait time.Duration) Result {
	res := Result{Name: name, Expected: expected}
	done := make(chan aesctr.Completion, 1)

	start := time.Now()
	id, err := fn(data, append([]byte{}, counter...), name, func(c aesctr.Completion) {
		done <- c
	})
	if err != nil {
		res.Err = err
		return res
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case c := <-done:
		res.Elapsed = time.Since(start)
		switch {
		case c.ID != id:
			res.Err = fmt.Errorf("vectors: completion for operation %d, submitted %d", c.ID, id)
		case c.Kind != kind:
			res.Err = fmt.Errorf("vectors: completion kind %s, want %s", c.Kind, kind)
		}
		res.Got = append([]byte{}, data...)
	case <-timer.C:
		// The operation is still owned by the engine; data must not be read.
		res.Err = errTimeout
	}
	return res
}
