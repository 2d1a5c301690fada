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

package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCompletableSuccess(t *testing.T) {
	completable := NewCompletable[int]()
	completable.Success(42)

	value, err := completable.Future().Await(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestCompletableFailure(t *testing.T) {
	expected := errors.New("kaboom")
	completable := NewCompletable[string]()
	completable.Failure(expected)

	value, err := completable.Future().Await(context.TODO())
	assert.ErrorIs(t, err, expected)
	assert.Empty(t, value)
}

func TestCompletableFirstWriteWins(t *testing.T) {
	completable := NewCompletable[int]()
	completable.Success(1)
	completable.Success(2)
	completable.Failure(errors.New("ignored"))

	value, err := completable.Future().Await(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestCompletableAbandon(t *testing.T) {
	completable := NewCompletable[int]()
	completable.Abandon()

	value, err := completable.Future().Await(context.TODO())
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.Zero(t, value)

	// abandoning never overrides an earlier completion
	completed := NewCompletable[int]()
	completed.Success(7)
	completed.Abandon()
	value, err = completed.Future().Await(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestAwaitContextCanceled(t *testing.T) {
	completable := NewCompletable[int]()
	ctx, cancel := context.WithTimeout(context.TODO(), 50*time.Millisecond)
	defer cancel()

	value, err := completable.Future().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, value)

	// the outcome of the first Await sticks, even if the value arrives later
	completable.Success(3)
	value, err = completable.Future().Await(context.TODO())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, value)
}

func TestAwaitIsRepeatable(t *testing.T) {
	completable := NewCompletable[string]()
	completable.Success("hello")

	for i := 0; i < 3; i++ {
		value, err := completable.Future().Await(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	}
}

func TestNewRunsTask(t *testing.T) {
	fut := New(func() (int, error) {
		return 10, nil
	})
	value, err := fut.Await(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	expected := errors.New("task failed")
	failed := New(func() (int, error) {
		return 0, expected
	})
	value, err = failed.Await(context.TODO())
	assert.ErrorIs(t, err, expected)
	assert.Zero(t, value)
}
