package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/713zhao/aireminder/internal/reminder"
)

func TestOwnerFilterPendingMatchesUnsetFlag(t *testing.T) {
	// Pending must read as "not completed": other producers write into the
	// same collection and may omit isCompleted, and those documents still
	// belong in every pending view.
	filter := ownerFilter("alice", reminder.StatusPending)

	assert.Equal(t, "alice", filter["ownerId"])
	assert.Equal(t, bson.M{"$ne": true}, filter["isCompleted"])
}

func TestOwnerFilterCompleted(t *testing.T) {
	filter := ownerFilter("alice", reminder.StatusCompleted)
	assert.Equal(t, true, filter["isCompleted"])
}

func TestOwnerFilterAllLeavesCompletionUnconstrained(t *testing.T) {
	filter := ownerFilter("alice", reminder.StatusAll)
	_, constrained := filter["isCompleted"]
	assert.False(t, constrained)
	assert.Equal(t, bson.M{"$ne": true}, filter["deleted"])
}
