package profession

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromParameters_Success(t *testing.T) {
	t.Parallel()

	r := FromParameters("362B9515-7A5C-44B7-9708-A0FB6E48F5B5", "  Cook ")
	require.True(t, r.IsSuccess(), "unexpected failure: %v", r.Err())

	p := r.Value()
	assert.Equal(t, uuid.MustParse("362b9515-7a5c-44b7-9708-a0fb6e48f5b5"), p.ID)
	assert.Equal(t, "Cook", p.Name)
	assert.Equal(t, p.ID.String(), r.ID())
	assert.True(t, r.Err().IsEmpty())
}

func TestFromParameters_Failures(t *testing.T) {
	t.Parallel()

	validID := uuid.NewString()

	tests := []struct {
		name     string
		id       string
		profName string
		wantCode string
	}{
		{"empty id", "", "Cook", CodeInvalidID},
		{"malformed id", "not-a-uuid", "Cook", CodeInvalidID},
		{"nil uuid", uuid.Nil.String(), "Cook", CodeInvalidID},
		{"blank name", validID, "   ", CodeInvalidName},
		{"long name", validID, strings.Repeat("a", MaxNameLength+1), CodeInvalidName},
		{"both invalid", "nope", "", CodeInvalidParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromParameters(tt.id, tt.profName)
			if !r.IsFailure() {
				t.Fatalf("expected failure, got success with %+v", r.Value())
			}
			if r.Err().Code != tt.wantCode {
				t.Errorf("code = %q, want %q (message %q)", r.Err().Code, tt.wantCode, r.Err().Message)
			}
			if r.Err().Message == "" {
				t.Errorf("expected a message")
			}
		})
	}
}

func TestFromParameters_JoinsMessages(t *testing.T) {
	t.Parallel()

	r := FromParameters("", "")
	require.True(t, r.IsFailure())
	assert.Equal(t, CodeInvalidParameters, r.Err().Code)
	assert.Contains(t, r.Err().Message, "id is required")
	assert.Contains(t, r.Err().Message, "name is required")
}

func TestFromParameters_NameAtLimit(t *testing.T) {
	t.Parallel()

	r := FromParameters(uuid.NewString(), strings.Repeat("a", MaxNameLength))
	assert.True(t, r.IsSuccess())
}

func TestFromParameters_NameLimitFollowsConstant(t *testing.T) {
	t.Parallel()

	r := FromParameters(uuid.NewString(), strings.Repeat("é", MaxNameLength))
	assert.True(t, r.IsSuccess(), "limit counts characters, not bytes: %v", r.Err())

	r = FromParameters(uuid.NewString(), strings.Repeat("é", MaxNameLength+1))
	require.True(t, r.IsFailure())
	assert.Equal(t, CodeInvalidName, r.Err().Code)
	assert.Contains(t, r.Err().Message, strconv.Itoa(MaxNameLength))
}
