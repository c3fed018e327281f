package servicecheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFunc(t *testing.T) {
	assert := assert.New(t)
	expectedErr := errors.New("expected")

	var check Check = CheckFunc(func(context.Context) error {
		return expectedErr
	})

	assert.Equal(expectedErr, check.Check(context.Background()))
}

func TestAlwaysHealthy(t *testing.T) {
	assert := assert.New(t)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	var testData = []context.Context{
		context.Background(),
		context.TODO(),
		canceled,
	}

	for _, ctx := range testData {
		assert.NoError(AlwaysHealthy.Check(ctx))
	}
}
