package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RefineRequest
		wantErr bool
	}{
		{
			name: "valid with inline job description",
			request: RefineRequest{
				JobDescription: "Backend Engineer, Go and PostgreSQL",
				TargetSection:  "experience",
			},
			wantErr: false,
		},
		{
			name: "valid with job URL",
			request: RefineRequest{
				JobURL:        "https://jobs.example.com/backend-123",
				TargetSection: "experience",
			},
			wantErr: false,
		},
		{
			name: "valid full document target",
			request: RefineRequest{
				JobDescription:       "any",
				TargetSection:        "full",
				GenerateIntroduction: true,
			},
			wantErr: false,
		},
		{
			name: "missing both job description and URL",
			request: RefineRequest{
				TargetSection: "experience",
			},
			wantErr: true,
		},
		{
			name: "malformed job URL",
			request: RefineRequest{
				JobURL:        "not a url",
				TargetSection: "experience",
			},
			wantErr: true,
		},
		{
			name: "missing target section",
			request: RefineRequest{
				JobDescription: "any",
			},
			wantErr: true,
		},
		{
			name: "unknown target section",
			request: RefineRequest{
				JobDescription: "any",
				TargetSection:  "hobbies",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateResumeRequest_Validation(t *testing.T) {
	valid := CreateResumeRequest{Name: "main", Content: "# Personal\n## Contact Information\nName: A\n"}
	assert.NoError(t, valid.Validate())

	missingName := CreateResumeRequest{Content: "x"}
	assert.Error(t, missingName.Validate())

	missingContent := CreateResumeRequest{Name: "main"}
	assert.Error(t, missingContent.Validate())
}

func TestUpdateResumeRequest_Validation(t *testing.T) {
	assert.NoError(t, (&UpdateResumeRequest{Content: "x"}).Validate())
	assert.Error(t, (&UpdateResumeRequest{}).Validate())
}

func TestAcceptRequest_Validation(t *testing.T) {
	valid := AcceptRequest{TargetSection: "experience", RefinedContent: "# Experience"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&AcceptRequest{TargetSection: "experience"}).Validate())
	assert.Error(t, (&AcceptRequest{TargetSection: "bogus", RefinedContent: "x"}).Validate())
}

func TestSaveAsNewRequest_Validation(t *testing.T) {
	valid := SaveAsNewRequest{Name: "copy", TargetSection: "experience", RefinedContent: "# Experience"}
	assert.NoError(t, valid.Validate())

	noName := SaveAsNewRequest{TargetSection: "experience", RefinedContent: "x"}
	assert.Error(t, noName.Validate())

	blankName := SaveAsNewRequest{Name: "   ", TargetSection: "experience", RefinedContent: "x"}
	assert.Error(t, blankName.Validate(), "whitespace-only names are not names")
}

func TestRenameResumeRequest_Validation(t *testing.T) {
	assert.NoError(t, (&RenameResumeRequest{Name: "updated"}).Validate())
	assert.Error(t, (&RenameResumeRequest{}).Validate())
	assert.Error(t, (&RenameResumeRequest{Name: " \t "}).Validate())
}

func TestRefineRequest_JSONRoundTrip(t *testing.T) {
	data := []byte(`{"job_description":"Go role","target_section":"experience","generate_introduction":true}`)

	var req RefineRequest
	require.NoError(t, json.Unmarshal(data, &req))
	assert.Equal(t, "Go role", req.JobDescription)
	assert.Equal(t, "experience", req.TargetSection)
	assert.True(t, req.GenerateIntroduction)
}

func TestRefineResponse_OmitsAbsentIntroduction(t *testing.T) {
	data, err := json.Marshal(RefineResponse{RefinedContent: "# Experience"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "introduction")
}
