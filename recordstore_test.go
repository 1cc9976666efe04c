/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/datastore/mock"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/observability"
	"github.com/suparena/recordstore/record"
)

func testConfig() config.Config {
	return config.Config{
		DefaultPageSize: 10,
		CheckInvariants: true,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("StartIDAndPageSizes", func(t *testing.T) {
		cfg := testConfig()
		cfg.StartID = 500
		cfg.DefaultPageSize = 2

		users, err := recordstore.Open(ctx, cfg)
		require.NoError(t, err)

		for _, name := range []string{"a", "b", "c"} {
			_, err := users.Add(ctx, record.Record{Name: name, Email: name + "@x"})
			require.NoError(t, err)
		}

		cur := users.Iterate(0)
		require.True(t, cur.Next(ctx))
		assert.Len(t, cur.Batch(), 2)
		assert.Equal(t, datastore.ID(500), cur.Batch()[0].ID)
	})

	t.Run("Seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`users:
  - name: Ann
    email: ann@example.com
  - name: Bob
    email: bob@example.com
`), 0o600))

		cfg := testConfig()
		cfg.SeedFile = path
		obs := observability.NewBasicObserver()

		users, err := recordstore.Open(ctx, cfg, obs)
		require.NoError(t, err)
		assert.Equal(t, 2, users.Size())
		assert.Equal(t, int64(2), obs.Count(observability.OpAdd, observability.OutcomeOK))

		got, err := users.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Value.Email)
	})

	t.Run("SeedConflict", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`users:
  - {name: Ann, email: ann@example.com}
  - {name: Annie, email: ann@example.com}
`), 0o600))

		cfg := testConfig()
		cfg.SeedFile = path

		_, err := recordstore.Open(ctx, cfg)
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
		assert.Contains(t, err.Error(), "seed record 1")
	})

	t.Run("MissingSeedFile", func(t *testing.T) {
		cfg := testConfig()
		cfg.SeedFile = filepath.Join(t.TempDir(), "nope.yaml")

		_, err := recordstore.Open(ctx, cfg)
		assert.Error(t, err)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := testConfig()
		cfg.DefaultPageSize = 0

		_, err := recordstore.Open(ctx, cfg)
		assert.Error(t, err)
	})
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	users, err := recordstore.Open(ctx, testConfig())
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := users.Add(ctx, record.Record{Name: name, Email: name + "@x"})
		require.NoError(t, err)
	}

	for _, pageSize := range []int{1, 2, 5, 0} {
		all, err := recordstore.Collect(ctx, users, pageSize)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i, s := range all {
			assert.Equal(t, datastore.ID(i), s.UserID)
		}
	}
}

func TestCollectError(t *testing.T) {
	iterErr := errors.NewValidationError("", "scan failed")
	users := mock.New[record.Record]().WithIterateError(iterErr)
	users.SetData(map[datastore.ID]record.Record{
		0: {Name: "a", Email: "a@x"},
		1: {Name: "b", Email: "b@x"},
	})

	_, err := recordstore.Collect(context.Background(), users, 1)
	assert.ErrorIs(t, err, iterErr)
}

// TestRequestFlow drives the gate the way a request layer would, through the
// JSON representations.
func TestRequestFlow(t *testing.T) {
	ctx := context.Background()
	users, err := recordstore.Open(ctx, testConfig())
	require.NoError(t, err)

	var body record.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","email":"a@x"}`), &body))
	id, err := users.Add(ctx, body)
	require.NoError(t, err)

	created, err := json.Marshal(record.Stored{UserID: id, Record: body})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","email":"a@x","id":0}`, string(created))

	var put record.Stored
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@x","id":0}`), &put))
	prev, err := users.Update(ctx, put.Entry())
	require.NoError(t, err)
	assert.Equal(t, "a", prev.Name)

	all, err := recordstore.Collect(ctx, users, 0)
	require.NoError(t, err)
	listed, err := json.Marshal(all)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"A","email":"a@x","id":0}]`, string(listed))

	_, err = users.Delete(ctx, id)
	require.NoError(t, err)
	_, err = users.Get(ctx, id)
	assert.True(t, errors.IsNotFound(err))
}
