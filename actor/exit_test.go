/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitStatus(t *testing.T) {
	testCases := []struct {
		status    *ExitStatus
		text      string
		isSuccess bool
	}{
		{status: Success(), text: "success", isSuccess: true},
		{status: Quit(), text: "quit", isSuccess: true},
		{status: Killed(), text: "killed"},
		{status: DownstreamClosed(), text: "downstream closed"},
		{status: Failure(errExplosion), text: "failure: boom"},
		{status: Panicked(errExplosion), text: "panicked: boom"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.text, func(t *testing.T) {
			assert.Equal(t, testCase.text, testCase.status.String())
			assert.Equal(t, testCase.text, testCase.status.Error())
			assert.Equal(t, testCase.isSuccess, testCase.status.IsSuccess())
		})
	}
}

func TestExitStatusIsFailure(t *testing.T) {
	assert.True(t, Failure(errExplosion).IsFailure())
	assert.True(t, Panicked(errExplosion).IsFailure())
	assert.True(t, DownstreamClosed().IsFailure())
	assert.False(t, Success().IsFailure())
	assert.False(t, Quit().IsFailure())
	// killed is neither a success nor a downstream failure
	assert.False(t, Killed().IsFailure())
}

func TestExitStatusUnwrap(t *testing.T) {
	status := Failure(errExplosion)
	require.ErrorIs(t, status, errExplosion)
	assert.NoError(t, Quit().Unwrap())
}

func TestToExitStatus(t *testing.T) {
	// an ExitStatus returned by a handler passes through untouched
	status := Quit()
	assert.Same(t, status, toExitStatus(status))

	wrapped := fmt.Errorf("handling failed: %w", status)
	assert.Same(t, status, toExitStatus(wrapped))

	// anything else is normalized to a failure
	normalized := toExitStatus(errExplosion)
	assert.True(t, normalized.IsFailure())
	require.ErrorIs(t, normalized, errExplosion)
}
