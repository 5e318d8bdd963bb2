package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewLoading, "loading"},
		{ViewDirectory, "directory"},
		{ViewDetails, "details"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewType_StartsWithLoading(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewLoading, v)
}

func TestCatalogLoaded(t *testing.T) {
	msg := CatalogLoaded{Count: 12}
	assert.Equal(t, 12, msg.Count)
	assert.NoError(t, msg.Err)

	msg = CatalogLoaded{Err: errors.New("boom")}
	assert.EqualError(t, msg.Err, "boom")
}

func TestContactStarted(t *testing.T) {
	msg := ContactStarted{Action: ContactCall, Target: "555-0100"}

	assert.Equal(t, ContactAction("call"), msg.Action)
	assert.Equal(t, "555-0100", msg.Target)
	assert.Equal(t, ContactAction("email"), ContactEmail)
}
