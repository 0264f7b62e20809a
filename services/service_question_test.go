package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devflow_workspace/model"
)

func tag(name string) model.Tag {
	return model.Tag{ID: bson.NewObjectID(), Name: name}
}

func TestTagDeltaNoChange(t *testing.T) {
	current := []model.Tag{tag("go"), tag("mongodb")}

	toAdd, toRemove := tagDelta(current, []string{"go", "mongodb"})

	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestTagDeltaCaseInsensitive(t *testing.T) {
	current := []model.Tag{tag("Go"), tag("MongoDB")}

	toAdd, toRemove := tagDelta(current, []string{"GO", "mongodb"})

	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestTagDeltaAddAndRemove(t *testing.T) {
	goTag := tag("go")
	current := []model.Tag{goTag, tag("redis")}

	toAdd, toRemove := tagDelta(current, []string{"go", "fiber"})

	assert.Equal(t, []string{"fiber"}, toAdd)
	require.Len(t, toRemove, 1)
	assert.Equal(t, "redis", toRemove[0].Name)
}

func TestTagDeltaDedupesRequested(t *testing.T) {
	toAdd, toRemove := tagDelta(nil, []string{"go", " Go ", "go"})

	assert.Equal(t, []string{"go"}, toAdd)
	assert.Empty(t, toRemove)
}

// Every requested tag ends up either kept or added, never both, so the
// join-record count always matches the final tag list.
func TestTagDeltaConservation(t *testing.T) {
	current := []model.Tag{tag("a"), tag("b"), tag("c")}
	requested := []string{"b", "c", "d"}

	toAdd, toRemove := tagDelta(current, requested)

	final := len(current) + len(toAdd) - len(toRemove)
	assert.Equal(t, len(requested), final)
}
