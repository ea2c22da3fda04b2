package models

// ModelPricing holds the per-dimension prices OpenRouter reports for a model.
// Prices come over the wire as decimal strings; a nil field means the
// dimension is unpriced.
type ModelPricing struct {
	Prompt            *string `json:"prompt"`
	Completion        *string `json:"completion"`
	Request           *string `json:"request"`
	Image             *string `json:"image"`
	WebSearch         *string `json:"web_search"`
	InternalReasoning *string `json:"internal_reasoning"`
	InputCacheRead    *string `json:"input_cache_read"`
	InputCacheWrite   *string `json:"input_cache_write"`
}

// IsFree reports whether every pricing dimension is absent or zero. Only the
// literal strings "0" and "0.0" count as zero, matching what OpenRouter
// actually sends; any other value (including "0.00") marks the model as paid.
func (p ModelPricing) IsFree() bool {
	for _, field := range []*string{
		p.Prompt,
		p.Completion,
		p.Request,
		p.Image,
		p.WebSearch,
		p.InternalReasoning,
		p.InputCacheRead,
		p.InputCacheWrite,
	} {
		if field == nil {
			continue
		}
		if *field != "0" && *field != "0.0" {
			return false
		}
	}
	return true
}

// ModelInfo is one entry of the model catalog returned to clients.
type ModelInfo struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	ContextLength int          `json:"context_length"`
	Pricing       ModelPricing `json:"pricing"`
	IsFree        bool         `json:"is_free"`
}

// ModelListResponse is the envelope OpenRouter wraps its model list in.
type ModelListResponse struct {
	Data []ModelInfo `json:"data"`
}
