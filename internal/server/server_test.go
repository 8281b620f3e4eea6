package server

import (
	"testing"

	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(models.DefaultCatalog())
	assert.NotNil(t, s)
}
