// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesctr

import "fmt"

// OperationKind identifies which transform an asynchronous completion
// belongs to.
type OperationKind int

// Operation kinds. The values match the callback discriminator of the
// driver ABI.
const (
	OperationEncrypt OperationKind = iota + 1
	OperationDecrypt
)

func (k OperationKind) String() string {
	switch k {
	case OperationEncrypt:
		return "encrypt"
	case OperationDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(k))
	}
}

// OperationID is assigned to every accepted asynchronous submission.
// IDs are unique per Engine and increase in submission order.
type OperationID uint64

// Completion is delivered exactly once for every accepted asynchronous
// submission.
type Completion struct {
	ID   OperationID
	Kind OperationKind

	// Token is the opaque value passed at submission.
	Token interface{}

	// Generation identifies the key the operation ran under. It is
	// incremented by every SetKey and ClearKey.
	Generation uint64
}

// Callback receives the Completion of an asynchronous operation. It runs
// on the Engine's worker goroutine, after the buffer has been transformed.
// A Callback must not block for long: later operations wait behind it.
type Callback func(Completion)

type operationState int

const (
	stateSubmitted operationState = iota
	stateRunning
	stateCompleted
)

func (s operationState) String() string {
	switch s {
	case stateSubmitted:
		return "submitted"
	case stateRunning:
		return "running"
	case stateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
