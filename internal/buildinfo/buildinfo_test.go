package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/reader-launcher/internal/buildinfo"
)

func TestVersion(t *testing.T) {
	assert.NotNil(t, buildinfo.BuildInfo)
	assert.NotEmpty(t, buildinfo.Version())
}
