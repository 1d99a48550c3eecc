package refine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/jonathan/resume-refiner/internal/llm"
	"github.com/jonathan/resume-refiner/internal/resume"
)

const testResume = `# Personal
## Contact Information
Name: Test Person
Email: test@example.com

# Experience
## Roles
### Role
#### Basics
Company: Acme
Title: Engineer
Start date: 01/2020
End date: 01/2023
#### Summary
Built backend services.
#### Responsibilities
* Designed APIs
#### Skills
* Go
`

// fakeClient records calls and returns a canned response.
type fakeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                       { return nil }

func TestRefine_Success(t *testing.T) {
	client := &fakeClient{
		response: `{"refined_markdown": "# Experience\n## Roles\n### Role\n#### Basics\nCompany: Acme\nTitle: Backend Engineer\nStart date: 01/2020\nEnd date: 01/2023\n#### Skills\n* Go"}`,
	}

	result, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "Backend Engineer role using Go",
		Section:        resume.SectionExperience,
	})
	require.NoError(t, err)
	assert.Contains(t, result.RefinedMarkdown, "Backend Engineer")
	assert.Equal(t, 1, client.calls)
}

func TestRefine_PromptCarriesSectionAndJob(t *testing.T) {
	client := &fakeClient{response: `{"refined_markdown": "# Experience"}`}

	_, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "Kubernetes platform team",
		Section:        resume.SectionExperience,
	})
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)

	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Kubernetes platform team")
	assert.Contains(t, prompt, "Company: Acme")
	assert.NotContains(t, prompt, "Name: Test Person")
	assert.Contains(t, prompt, "Never invent facts")
	assert.Contains(t, prompt, "Duties not relevant to this job application")
}

func TestRefine_NonExperienceOmitsExperienceGuidance(t *testing.T) {
	client := &fakeClient{response: `{"refined_markdown": "# Personal"}`}

	_, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionPersonal,
	})
	require.NoError(t, err)
	assert.NotContains(t, client.prompts[0], "Duties not relevant")
}

func TestRefine_EmptySectionSkipsModel(t *testing.T) {
	client := &fakeClient{response: `{"refined_markdown": "should not be used"}`}

	result, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionEducation,
	})
	require.NoError(t, err)
	assert.Equal(t, &RefinedResult{}, result)
	assert.Equal(t, 0, client.calls, "empty section must not reach the model")
}

func TestRefine_InvalidSectionRejectedBeforeModel(t *testing.T) {
	client := &fakeClient{}

	_, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionKind("hobbies"),
	})
	require.Error(t, err)

	var ise *resume.InvalidSectionError
	assert.ErrorAs(t, err, &ise)
	assert.Equal(t, 0, client.calls)
}

func TestRefine_AuthFailureClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "unauthorized status",
			err:  &googleapi.Error{Code: 401, Message: "Request had invalid authentication credentials"},
		},
		{
			name: "invalid api key message",
			err:  errors.New("API key not valid. Please pass a valid API key."),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}

			_, err := Refine(context.Background(), client, Input{
				ResumeText:     testResume,
				JobDescription: "any",
				Section:        resume.SectionExperience,
			})
			require.Error(t, err)

			var te *TransportError
			require.ErrorAs(t, err, &te)
			assert.True(t, te.Authentication, "credential failures must be flagged for the caller")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRefine_TransportError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	_, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionExperience,
	})
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.False(t, te.Authentication)
}

func TestRefine_MalformedResponse(t *testing.T) {
	client := &fakeClient{response: "I refined the resume for you, hope you like it!"}

	_, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionExperience,
	})
	require.Error(t, err)

	var rfe *ResponseFormatError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, "The AI service returned an unexpected response", rfe.Error())
}

func TestRefine_JSONEmbeddedInProse(t *testing.T) {
	client := &fakeClient{
		response: "Here is the rewrite:\n```json\n{\"refined_markdown\": \"# Experience\"}\n```\nLet me know if you need more.",
	}

	result, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionExperience,
	})
	require.NoError(t, err)
	assert.Equal(t, "# Experience", result.RefinedMarkdown)
}

func TestRefine_IntroductionOnlyWhenRequested(t *testing.T) {
	client := &fakeClient{
		response: `{"refined_markdown": "# Experience", "introduction": "I sharpened the bullets."}`,
	}

	result, err := Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionExperience,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Introduction, "introduction must be dropped when not requested")

	result, err = Refine(context.Background(), client, Input{
		ResumeText:     testResume,
		JobDescription: "any",
		Section:        resume.SectionExperience,
		GenerateIntro:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "I sharpened the bullets.", result.Introduction)
}

func TestService_Refine(t *testing.T) {
	client := &fakeClient{response: `{"refined_markdown": "# Experience"}`}
	svc := &Service{Client: client}

	result, err := svc.Refine(context.Background(), testResume, "any", resume.SectionExperience, false)
	require.NoError(t, err)
	assert.Equal(t, "# Experience", result.RefinedMarkdown)
}
