// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package vectors

import (
	"testing"
	"time"

	"github.com/pion/aesctr"
	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSP80038A(t *testing.T) {
	lim := test.TimeOut(time.Second * 5)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	e, err := aesctr.NewEngine()
	require.NoError(t, err)

	for _, v := range SP80038A() {
		results, err := Run(e, v, time.Second)
		require.NoError(t, err)
		require.Len(t, results, 4)

		for _, r := range results {
			assert.NoError(t, r.Err, r.Name)
			assert.True(t, r.Passed(), "%s: expected % x got % x", r.Name, r.Expected, r.Got)
		}
	}

	assert.NoError(t, e.Close())
}

func TestRunBadKey(t *testing.T) {
	e, err := aesctr.NewEngine()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, e.Close())
	}()

	v := SP80038A()[0]
	v.Key = v.Key[:8]

	_, err = Run(e, v, time.Second)
	assert.ErrorIs(t, err, aesctr.ErrInvalidKeyLength)
}

func TestRunDetectsMismatch(t *testing.T) {
	e, err := aesctr.NewEngine()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, e.Close())
	}()

	v := SP80038A()[0]
	v.Ciphertext = append([]byte{}, v.Ciphertext...)
	v.Ciphertext[0] ^= 0xff

	results, err := Run(e, v, time.Second)
	require.NoError(t, err)

	assert.False(t, results[0].Passed())
	assert.True(t, results[1].Passed())
	assert.False(t, results[2].Passed())
	assert.True(t, results[3].Passed())
}

func TestRunClosedEngine(t *testing.T) {
	e, err := aesctr.NewEngine()
	require.NoError(t, err)
	require.NoError(t, e.Close())

	results, err := Run(e, SP80038A()[0], time.Second)
	require.NoError(t, err)

	assert.True(t, results[0].Passed())
	assert.True(t, results[1].Passed())
	assert.ErrorIs(t, results[2].Err, aesctr.ErrEngineClosed)
	assert.ErrorIs(t, results[3].Err, aesctr.ErrEngineClosed)
}

func TestRunAsyncTimeout(t *testing.T) {
	lim := test.TimeOut(time.Second * 5)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	v := SP80038A()[0]
	e, err := aesctr.NewEngine(aesctr.WithKey(v.Key))
	require.NoError(t, err)

	release := make(chan struct{})
	_, err = e.EncryptCTRAsync(nil, make([]byte, aesctr.CounterSize), nil, func(aesctr.Completion) {
		<-release
	})
	require.NoError(t, err)

	results, err := Run(e, v, 10*time.Millisecond)
	require.NoError(t, err)

	assert.True(t, results[0].Passed())
	assert.True(t, results[1].Passed())
	assert.ErrorIs(t, results[2].Err, errTimeout)
	assert.ErrorIs(t, results[3].Err, errSkipped)

	close(release)
	assert.NoError(t, e.Close())
}
