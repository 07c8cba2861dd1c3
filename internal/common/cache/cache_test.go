package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func TestInMemoryClient(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[sample](time.Minute)

	_, err := c.Get(ctx, "cc-1")
	assert.ErrorIs(t, err, ErrNotExists)

	require.NoError(t, c.Set(ctx, "cc-1", sample{Code: "OPS", Name: "Operations"}, 0))
	got, err := c.Get(ctx, "cc-1")
	require.NoError(t, err)
	assert.Equal(t, "OPS", got.Code)

	require.NoError(t, c.Delete(ctx, "cc-1"))
	_, err = c.Get(ctx, "cc-1")
	assert.ErrorIs(t, err, ErrNotExists)
}

func TestInMemoryClient_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[sample](time.Minute)

	calls := 0
	cb := func() (sample, error) {
		calls++
		return sample{Code: "ADM"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet(ctx, GetOrSetOpts[sample]{Key: "cc-2", TTL: time.Minute, Callback: cb})
		require.NoError(t, err)
		assert.Equal(t, "ADM", got.Code)
	}
	assert.Equal(t, 1, calls)

	_, err := c.GetOrSet(ctx, GetOrSetOpts[sample]{Key: "cc-3"})
	assert.ErrorIs(t, err, ErrCallbackNotProvided)

	errCallback := errors.New("boom")
	_, err = c.GetOrSet(ctx, GetOrSetOpts[sample]{Key: "cc-3", Callback: func() (sample, error) {
		return sample{}, errCallback
	}})
	assert.ErrorIs(t, err, errCallback)
}

func TestRedisClient(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[sample](db, "report")

	mock.ExpectGet("report:k1").RedisNil()
	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrNotExists)

	mock.ExpectGet("report:k1").SetVal(`{"code":"OPS","name":"Operations"}`)
	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, sample{Code: "OPS", Name: "Operations"}, got)

	mock.ExpectSet("report:k1", []byte(`{"code":"OPS","name":""}`), time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, "k1", sample{Code: "OPS"}, time.Minute))

	mock.ExpectDel("report:k1").SetVal(1)
	require.NoError(t, c.Delete(ctx, "k1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
