package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/team-matcher/internal/types"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *string:
			*ptr = r.values[i].(string)
		case *[]byte:
			if r.values[i] != nil {
				*ptr = r.values[i].([]byte)
			}
		case *float64:
			*ptr = r.values[i].(float64)
		}
	}
	return nil
}

func TestScanProfile(t *testing.T) {
	row := fakeRow{values: []any{
		"user_001", "Alex", "Engineer", "Builds things",
		[]byte(`["Go","PostgreSQL"]`), []byte(`["Build a startup"]`), []byte(`"Remote"`),
		5.0, "Full-time",
	}}

	p, err := scanProfile(row)
	require.NoError(t, err)
	assert.Equal(t, "user_001", p.ID)
	assert.Equal(t, "Alex", p.Name)
	assert.Equal(t, types.Tags{"Go", "PostgreSQL"}, p.Skills)
	assert.Equal(t, types.Tags{"Build a startup"}, p.Goals)
	assert.Equal(t, types.Tags{"Remote"}, p.WorkStyle)
	assert.Equal(t, 5.0, p.Experience)
	assert.Equal(t, "Full-time", p.Availability)
}

func TestScanProfile_NullTags(t *testing.T) {
	row := fakeRow{values: []any{"user_002", "", "", "", nil, nil, nil, 0.0, ""}}

	p, err := scanProfile(row)
	require.NoError(t, err)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Goals)
	assert.Empty(t, p.WorkStyle)
}

func TestScanProfile_BadJSON(t *testing.T) {
	row := fakeRow{values: []any{"user_003", "", "", "", []byte(`{`), nil, nil, 0.0, ""}}

	_, err := scanProfile(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills")
	assert.Contains(t, err.Error(), "user_003")
}

func TestScanProfile_ScanError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := scanProfile(fakeRow{err: sentinel})
	assert.ErrorIs(t, err, sentinel)
}

func TestEncodeTags(t *testing.T) {
	raw, err := encodeTags(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	raw, err = encodeTags(types.Tags{"Go"})
	require.NoError(t, err)
	assert.JSONEq(t, `["Go"]`, string(raw))
}

func TestSchemaStatements(t *testing.T) {
	require.Len(t, schemaStatements, 2)
	assert.True(t, strings.Contains(schemaStatements[0], "CREATE TABLE IF NOT EXISTS profiles"))
	assert.True(t, strings.Contains(schemaStatements[1], "ON DELETE CASCADE"))
}
