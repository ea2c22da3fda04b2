package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the analysis prompt for a resume and job
// posting pair. The model is instructed to answer with a single JSON object.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobPosting string) string {
	return fmt.Sprintf(`You are an AI resume analysis assistant. Analyze the following job description and candidate resume.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Tasks:
1. Compute a relevancy score (0-100) with breakdown:
- Skill Match %%
- Experience Match %%
- Education Match %%
2. Assess reliability and learning potential:
- Is the candidate consistent in skill acquisition and career progression?
- Does their history suggest they are a fast learner?
- Return a score (0-100).
3. Identify suspicious or potentially false information:
- List any red flags (exaggerated claims, missing details, vague buzzwords).
- Return a binary value: Suspicious (Yes/No).
4. Extract the candidate's key achievements:
- Which ones align directly with this job?
- Which ones are transferable to other roles?

Return result strictly in JSON:
{
"relevancy_score": { "overall": X, "skills": X, "experience": X, "education": X },
"reliability_score": X,
"learning_potential": X,
"suspicious": "Yes/No",
"red_flags": [ ... ],
"key_achievements": {
    "directly_relevant": [ ... ],
    "transferable": [ ... ]
}
}`, jobPosting, resumeText)
}
