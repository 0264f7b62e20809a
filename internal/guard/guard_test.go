package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/authctx"
)

func validAsk() dto.AskQuestionDTO {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'x'
	}
	return dto.AskQuestionDTO{
		Title:   "How do transactions work?",
		Content: string(long),
		Tags:    []string{"go", "mongodb"},
	}
}

func TestCheckValidInputAnonymous(t *testing.T) {
	sess, err := Check(validAsk(), Options{})

	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCheckValidationFailureFieldMap(t *testing.T) {
	body := dto.AskQuestionDTO{Title: "hi", Content: "too short", Tags: nil}

	_, err := Check(body, Options{})

	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "title")
	assert.Contains(t, ae.Fields, "content")
	assert.Contains(t, ae.Fields, "tags")
}

func TestCheckUsesJSONFieldNames(t *testing.T) {
	_, err := Check(dto.CreateVoteDTO{}, Options{})

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "targetId")
	assert.NotContains(t, ae.Fields, "TargetID")
}

func TestCheckAuthorizeWithoutSession(t *testing.T) {
	_, err := Check(validAsk(), Options{Authorize: true})

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindUnauthorized, ae.Kind)
}

func TestCheckAuthorizeWithSession(t *testing.T) {
	want := &authctx.Session{UserID: bson.NewObjectID()}

	sess, err := Check(validAsk(), Options{Authorize: true, Session: want})

	require.NoError(t, err)
	assert.Equal(t, want, sess)
}

func TestObjectIDTag(t *testing.T) {
	body := dto.CreateVoteDTO{
		TargetID:   "not-a-hex-id",
		TargetType: "question",
		VoteType:   "upvote",
	}

	_, err := Check(body, Options{})

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "targetId")

	body.TargetID = bson.NewObjectID().Hex()
	_, err = Check(body, Options{})
	assert.NoError(t, err)
}

// Validation runs before authorization, so bad input with no session still
// reports the field errors.
func TestCheckValidationBeforeAuthorize(t *testing.T) {
	_, err := Check(dto.CreateVoteDTO{}, Options{Authorize: true})

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}
