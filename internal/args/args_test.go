package args

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_MessageParts(t *testing.T) {
	t.Parallel()

	msg, kvs := Split([]any{"user", 42, "logged in", true, nil, 1.5})
	assert.Equal(t, "user 42 logged in true <nil> 1.5", msg)
	assert.Empty(t, kvs)
}

func TestSplit_MetadataSortedAndMerged(t *testing.T) {
	t.Parallel()

	in := []any{
		"test message",
		map[string]any{"userId": "456", "requestId": "req-123"},
		map[string]any{"userId": "789"},
	}
	msg, kvs := Split(in)

	assert.Equal(t, "test message", msg)
	assert.Equal(t, []KV{
		{Key: "requestId", Value: "req-123"},
		{Key: "userId", Value: "789"},
	}, kvs)
	// Inputs untouched.
	assert.Equal(t, "456", in[1].(map[string]any)["userId"])
}

func TestSplit_Errors(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("first"), errors.New("second")
	var nilErr error
	msg, kvs := Split([]any{"failed", e1, e2, nilErr})

	assert.Equal(t, "failed <nil>", msg)
	assert.Equal(t, []KV{
		{Key: "error", Value: e1},
		{Key: "error_2", Value: e2},
	}, kvs)
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	msg, kvs := Split(nil)
	assert.Empty(t, msg)
	assert.Nil(t, kvs)
	assert.Nil(t, Flatten(kvs))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"a", 1, "b", "two"}, Flatten([]KV{{"a", 1}, {"b", "two"}}))
}
