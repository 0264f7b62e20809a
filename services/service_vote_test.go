package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow_workspace/model"
)

func TestPlanVoteFirstCast(t *testing.T) {
	plan := planVote("", model.VoteTypeUpvote)

	assert.True(t, plan.Insert)
	assert.False(t, plan.Delete)
	assert.False(t, plan.Switch)
	require.Len(t, plan.Adjust, 1)
	assert.Equal(t, voteAdjust{model.VoteTypeUpvote, 1}, plan.Adjust[0])
}

func TestPlanVoteToggleOff(t *testing.T) {
	plan := planVote(model.VoteTypeDownvote, model.VoteTypeDownvote)

	assert.True(t, plan.Delete)
	assert.False(t, plan.Insert)
	require.Len(t, plan.Adjust, 1)
	assert.Equal(t, voteAdjust{model.VoteTypeDownvote, -1}, plan.Adjust[0])
}

func TestPlanVoteSwitch(t *testing.T) {
	plan := planVote(model.VoteTypeUpvote, model.VoteTypeDownvote)

	assert.True(t, plan.Switch)
	assert.False(t, plan.Insert)
	assert.False(t, plan.Delete)
	// Both counter adjustments belong to one plan so they commit together.
	require.Len(t, plan.Adjust, 2)
	assert.Equal(t, voteAdjust{model.VoteTypeUpvote, -1}, plan.Adjust[0])
	assert.Equal(t, voteAdjust{model.VoteTypeDownvote, 1}, plan.Adjust[1])
}

// Casting the same vote twice must return to NoVote with counters at their
// pre-vote values.
func TestPlanVoteToggleIdempotence(t *testing.T) {
	counters := map[string]int{model.VoteTypeUpvote: 7, model.VoteTypeDownvote: 3}
	state := ""

	apply := func(requested string) {
		plan := planVote(state, requested)
		for _, adj := range plan.Adjust {
			counters[adj.VoteType] += adj.Change
		}
		switch {
		case plan.Insert, plan.Switch:
			state = requested
		case plan.Delete:
			state = ""
		}
	}

	apply(model.VoteTypeUpvote)
	apply(model.VoteTypeUpvote)

	assert.Equal(t, "", state)
	assert.Equal(t, 7, counters[model.VoteTypeUpvote])
	assert.Equal(t, 3, counters[model.VoteTypeDownvote])
}

func TestPlanVoteSwitchConservesTotal(t *testing.T) {
	counters := map[string]int{model.VoteTypeUpvote: 1, model.VoteTypeDownvote: 0}

	plan := planVote(model.VoteTypeUpvote, model.VoteTypeDownvote)
	for _, adj := range plan.Adjust {
		counters[adj.VoteType] += adj.Change
	}

	assert.Equal(t, 0, counters[model.VoteTypeUpvote])
	assert.Equal(t, 1, counters[model.VoteTypeDownvote])
}
