package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTouchMovesUpdatedAtForward(t *testing.T) {
	s := NewState("California")
	before := s.UpdatedAt
	s.Touch()
	assert.True(t, s.UpdatedAt.After(before))
	assert.Equal(t, before, s.CreatedAt)
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPlace("c1", "u1", "Loft")
	p.LinkAmenity("a1")

	c := p.Clone().(*Place)
	c.Name = "Barn"
	c.LinkAmenity("a2")

	assert.Equal(t, "Loft", p.Name)
	assert.Equal(t, []string{"a1"}, p.AmenityIDs)
	assert.Equal(t, []string{"a1", "a2"}, c.AmenityIDs)
}

func TestPlaceAmenityLinks(t *testing.T) {
	p := NewPlace("c1", "u1", "Loft")
	assert.True(t, p.LinkAmenity("a1"))
	assert.False(t, p.LinkAmenity("a1"))
	assert.True(t, p.HasAmenity("a1"))
	assert.True(t, p.UnlinkAmenity("a1"))
	assert.False(t, p.UnlinkAmenity("a1"))
	assert.Empty(t, p.AmenityIDs)
}

func TestUserPasswordIsHashed(t *testing.T) {
	u, err := NewUser("bob@hbnb.io", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("nope")))
}

func TestNewByKind(t *testing.T) {
	for _, k := range Kinds {
		e := New(k)
		require.NotNil(t, e, k)
		assert.Equal(t, k, e.Kind())
	}
	assert.Nil(t, New("Review"))
	assert.Equal(t, "State.42", Key(KindState, "42"))
}
