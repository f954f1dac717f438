package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuild(t *testing.T) {
	name := "Fitness Plus"
	var phone *string
	active := false

	u := NewUpdate()
	SetIfNotNil(u, "name", &name)
	SetIfNotNil(u, "phone", phone)
	SetIfNotNil(u, "active", &active)

	query, args := u.Build("members", 7, "id, name")

	assert.Equal(t, "UPDATE members SET name = $1, active = $2, updated_at = NOW() WHERE id = $3 RETURNING id, name", query)
	assert.Equal(t, []interface{}{"Fitness Plus", false, 7}, args)
	assert.False(t, u.Empty())
}

func TestUpdateBuildOnlyTimestamp(t *testing.T) {
	u := NewUpdate()
	assert.True(t, u.Empty())

	query, args := u.Build("gyms", 1, "id")

	assert.Equal(t, "UPDATE gyms SET updated_at = NOW() WHERE id = $1 RETURNING id", query)
	assert.Equal(t, []interface{}{1}, args)
}
