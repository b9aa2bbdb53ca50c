package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("session", "quiz", "01HZX")
	assert.Equal(t, "studyforge:session:quiz:01HZX", key)
}

func TestGenerateCacheKey_WithParams(t *testing.T) {
	key := GenerateCacheKey("session", "quiz", "01HZX", "page", "2")
	assert.Equal(t, "studyforge:session:quiz:01HZX:page_2", key)
}
