package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", shorten("a3f8c2d1e9b40c77"))
	assert.Equal(t, "dev", shorten("dev"))
	assert.Equal(t, "", shorten(""))
}

func TestFull(t *testing.T) {
	assert.Equal(t, AppName+"/"+GitCommit, Full())
	assert.NotEmpty(t, GitCommit)
}
