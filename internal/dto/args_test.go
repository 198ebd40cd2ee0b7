package dto_test

import (
	"testing"

	"github.com/Rangchakdv/MazeSolver/internal/dto"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_JSONNumbers(t *testing.T) {
	var args dto.CellArgs
	require.NoError(t, dto.Decode(map[string]any{
		"session_id": "m1",
		"mode":       "goal",
		"row":        float64(2),
		"col":        "3",
	}, &args))
	assert.Equal(t, dto.CellArgs{SessionID: "m1", Mode: "goal", Row: 2, Col: 3}, args)
}

func TestDecode_OptionalFields(t *testing.T) {
	var size dto.SizeArgs
	require.NoError(t, dto.Decode(map[string]any{"width": float64(9)}, &size))
	require.NotNil(t, size.Width)
	assert.Equal(t, 9, *size.Width)
	assert.Nil(t, size.Height)

	var rnd dto.RandomizeArgs
	require.NoError(t, dto.Decode(map[string]any{"session_id": "m1", "seed": float64(42)}, &rnd))
	require.NotNil(t, rnd.Seed)
	assert.Equal(t, uint64(42), *rnd.Seed)

	require.NoError(t, dto.Decode(nil, &rnd))
}

func TestDecode_Invalid(t *testing.T) {
	var args dto.CellArgs
	err := dto.Decode(map[string]any{"row": "north"}, &args)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
