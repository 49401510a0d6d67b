package state

import (
	"github.com/google/uuid"
)

// NewLayerID returns a random identifier for a freshly created layer.
func NewLayerID() string {
	return uuid.NewString()
}

// NewLayer builds the layer record that goes on top of n existing layers.
func NewLayer(n int) Layer {
	return Layer{ID: NewLayerID(), Position: n}
}
