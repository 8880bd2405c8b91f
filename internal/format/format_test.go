package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileSize(t *testing.T) {
	assert.Equal(t, "2.00 MB", FileSize(2*1024*1024))
	assert.Equal(t, "0.50 MB", FileSize(512*1024))
	assert.Equal(t, "0.00 MB", FileSize(-1))
	assert.Equal(t, "10MB", MaxSizeMB(10*1024*1024))
}

func TestCopyright(t *testing.T) {
	assert.Equal(t, "© 2025 OMG Agents. All rights reserved.", Copyright(2025, "OMG Agents", "All rights reserved."))
}

func TestFmtDate(t *testing.T) {
	d := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025年1月15日", FmtDate(d, "ja"))
	assert.Equal(t, "Jan 15, 2025", FmtDate(d, "EN"))
}
