package core

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializer_RunsOnce(t *testing.T) {
	var migrations, seeds atomic.Int32
	in := &Initializer{
		migrate: func(context.Context) error { migrations.Add(1); return nil },
		seed:    func(context.Context) error { seeds.Add(1); return nil },
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, in.Run(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), migrations.Load())
	assert.Equal(t, int32(1), seeds.Load())
}

func TestInitializer_SkipsSeedWhenDisabled(t *testing.T) {
	var migrated bool
	in := &Initializer{
		migrate: func(context.Context) error { migrated = true; return nil },
	}

	require.NoError(t, in.Run(context.Background()))
	assert.True(t, migrated)
}

func TestInitializer_MigrationErrorIsStickyAndSkipsSeed(t *testing.T) {
	boom := errors.New("boom")
	var seeded bool
	in := &Initializer{
		migrate: func(context.Context) error { return boom },
		seed:    func(context.Context) error { seeded = true; return nil },
	}

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "migrate")
	assert.False(t, seeded)

	assert.ErrorIs(t, in.Run(context.Background()), boom)
}

func TestInitializer_SeedError(t *testing.T) {
	boom := errors.New("seed failed")
	in := &Initializer{
		migrate: func(context.Context) error { return nil },
		seed:    func(context.Context) error { return boom },
	}

	err := in.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seed")
}
