//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestProfileRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request ProfileRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: ProfileRequest{
				Name:       "Sarah Chen",
				Skills:     Tags{"Figma", "Prototyping"},
				WorkStyle:  Tags{"Remote"},
				Experience: floatPtr(5),
			},
		},
		{
			name:    "missing name",
			request: ProfileRequest{Experience: floatPtr(1)},
			wantErr: true,
			errMsg:  "Name",
		},
		{
			name:    "missing experience",
			request: ProfileRequest{Name: "Sarah"},
			wantErr: true,
			errMsg:  "Experience",
		},
		{
			name:    "negative experience",
			request: ProfileRequest{Name: "Sarah", Experience: floatPtr(-2)},
			wantErr: true,
			errMsg:  "gte",
		},
		{
			name:    "blank skill",
			request: ProfileRequest{Name: "Sarah", Skills: Tags{"Go", ""}, Experience: floatPtr(1)},
			wantErr: true,
			errMsg:  "Skills[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileRequest_ToProfile(t *testing.T) {
	req := ProfileRequest{
		Name:       "Marcus Williams",
		Title:      "Product Manager",
		Skills:     Tags{"Strategy"},
		Goals:      Tags{"Lead a team"},
		WorkStyle:  Tags{"Hybrid"},
		Experience: floatPtr(7),
	}

	p := req.ToProfile("user_002")
	assert.Equal(t, "user_002", p.ID)
	assert.Equal(t, "Marcus Williams", p.Name)
	assert.Equal(t, 7.0, p.Experience)
	assert.Equal(t, Tags{"Strategy"}, p.Skills)

	p.Skills[0] = "Changed"
	assert.Equal(t, "Strategy", req.Skills[0])
}

func TestScoreRequest_ValidatesNestedProfiles(t *testing.T) {
	req := ScoreRequest{
		A: Profile{ID: "a", Experience: 1},
		B: Profile{ID: "", Experience: 1},
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID")

	req.B.ID = "b"
	assert.NoError(t, req.Validate())
}
