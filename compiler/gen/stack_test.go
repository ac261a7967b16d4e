package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	t.Parallel()
	var s stack

	_, ok := s.index(1)
	assert.False(t, ok)
	assert.Equal(t, 1, s.count())
	assert.Equal(t, "", s.entityName())
	assert.Equal(t, "", s.fieldName())

	s.pushEntity("users")
	s.pushIndex(2, 5)
	s.pushField("tags")
	s.pushIndex(3, 4)

	i, ok := s.index(1)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	i, ok = s.index(2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = s.index(3)
	assert.False(t, ok)
	_, ok = s.index(0)
	assert.False(t, ok)
	assert.Equal(t, 4, s.count())
	assert.Equal(t, 2, s.depth())
	assert.Equal(t, "users", s.entityName())
	assert.Equal(t, "tags", s.fieldName())

	s.popIndex()
	s.popField()
	assert.Equal(t, 5, s.count())
	assert.Equal(t, "", s.fieldName())
	s.popIndex()
	s.popEntity()
	assert.Equal(t, 0, s.depth())
	assert.Equal(t, "", s.entityName())
}

func TestPathString(t *testing.T) {
	t.Parallel()
	g := &genContext{}
	g.pushPath("users")
	g.pushPath(indexSeg(2))
	g.pushPath("address")
	g.pushPath("city")
	assert.Equal(t, "users[2].address.city", g.pathString())
	g.popPath()
	g.popPath()
	assert.Equal(t, "users[2]", g.pathString())
}
