package models

import "encoding/json"

type AnalysisRequest struct {
	ResumeText string `json:"resume_text"`
	JobPosting string `json:"job_posting"`
	ModelID    string `json:"model_id,omitempty"`
}

// AnalysisResult wraps the LLM's parsed analysis. Fields carries whatever
// keys the model produced (relevancy_score, red_flags, ...) without schema
// validation; ModelUsed and RawResponse are filled in by the server.
type AnalysisResult struct {
	ModelUsed   string
	RawResponse string
	Fields      map[string]any
}

// MarshalJSON flattens the untyped payload to the top level alongside
// model_used and raw_llm_response, so clients see a single object.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["model_used"] = r.ModelUsed
	out["raw_llm_response"] = r.RawResponse
	return json.Marshal(out)
}

// ErrorResponse is the payload returned when the upstream analysis fails.
// SuggestModelChange hints that retrying with a different model may help.
type ErrorResponse struct {
	Message            string `json:"message"`
	SuggestModelChange bool   `json:"suggest_model_change"`
	Raw                string `json:"raw,omitempty"`
}
