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

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapInfo(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)
	logger.Info("test info")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &fields))
	assert.Equal(t, "info", fields["level"])
	assert.Equal(t, "test info", fields["msg"])
	assert.Equal(t, InfoLevel, logger.LogLevel())
}

func TestZapDebugf(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(DebugLevel, buffer)
	logger.Debugf("hello %s", "world")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &fields))
	assert.Equal(t, "debug", fields["level"])
	assert.Equal(t, "hello world", fields["msg"])
}

func TestZapLevelFiltering(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(ErrorLevel, buffer)
	logger.Info("dropped")
	logger.Debug("dropped")
	require.Zero(t, buffer.Len())

	logger.Error("kept")
	assert.True(t, strings.Contains(buffer.String(), "kept"))
}

func TestZapPanic(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)
	assert.Panics(t, func() {
		logger.Panic("boom")
	})
	assert.True(t, strings.Contains(buffer.String(), "boom"))
}

func TestZapLogOutput(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)
	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Equal(t, buffer, outputs[0])
	require.NoError(t, logger.Flush())
}
